package domain

import (
	"fmt"
	"time"
)

// RideStatus is the lifecycle state of a ride.
type RideStatus string

const (
	RideStatusActive    RideStatus = "active"
	RideStatusStarted   RideStatus = "started"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
)

// Label returns the human-readable form shown in the panel.
func (s RideStatus) Label() string {
	switch s {
	case RideStatusActive:
		return "Active"
	case RideStatusStarted:
		return "Started"
	case RideStatusCompleted:
		return "Completed"
	case RideStatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// Ride is a published trip offer. Driver is always expected; Passenger may
// be nil. BookedSeats <= SeatsCount is upheld by the remote system, not
// re-checked here.
type Ride struct {
	ID                 uint
	Driver             *User
	Passenger          *User
	FromAddress        string
	ToAddress          string
	FromLocation       string
	ToLocation         string
	Status             RideStatus
	Price              float64
	SeatsCount         int
	BookedSeats        int
	DepartureDate      time.Time
	Comment            string
	FrontSeatPrice     float64
	BackSeatPrice      float64
	CancellationReason string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DriverName returns the driver's display name.
func (r *Ride) DriverName() string {
	if r.Driver == nil {
		return ""
	}
	return r.Driver.FullName()
}

// Route is the "from → to" summary used in list columns.
func (r *Ride) Route() string {
	return fmt.Sprintf("%s → %s", r.FromAddress, r.ToAddress)
}

// SeatsInfo renders booked/total seats.
func (r *Ride) SeatsInfo() string {
	return fmt.Sprintf("%d/%d", r.BookedSeats, r.SeatsCount)
}
