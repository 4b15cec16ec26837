package domain

import (
	"fmt"
	"time"
)

// DocumentStatus is the moderation state of a driver's document set.
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusRejected DocumentStatus = "rejected"
	DocumentStatusRevision DocumentStatus = "revision"
)

// Label returns the human-readable form shown in the panel.
func (s DocumentStatus) Label() string {
	switch s {
	case DocumentStatusPending:
		return "Pending review"
	case DocumentStatusApproved:
		return "Approved"
	case DocumentStatusRejected:
		return "Rejected"
	case DocumentStatusRevision:
		return "Needs revision"
	default:
		return string(s)
	}
}

// DriverDocument is a driver's verification bundle: vehicle descriptors plus
// up to six document/photo URLs. RejectionReason is meaningful only when
// Status is rejected.
type DriverDocument struct {
	ID                   uint
	User                 *User
	CarBrand             string
	CarModel             string
	CarYear              string
	CarColor             string
	CarNumber            string
	DriverLicenseFront   string
	DriverLicenseBack    string
	CarRegistrationFront string
	CarRegistrationBack  string
	CarPhotoFront        string
	CarPhotoSide         string
	CarPhotoInterior     string
	Status               DocumentStatus
	RejectionReason      string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// DriverName returns the owner's display name.
func (d *DriverDocument) DriverName() string {
	if d.User == nil {
		return ""
	}
	return d.User.FullName()
}

// CarInfo is the one-line vehicle summary used in list columns.
func (d *DriverDocument) CarInfo() string {
	return fmt.Sprintf("%s %s (%s, %s, %s)",
		d.CarBrand, d.CarModel, d.CarYear, d.CarColor, d.CarNumber)
}
