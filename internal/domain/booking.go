package domain

import (
	"fmt"
	"time"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusStarted   BookingStatus = "started"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Label returns the human-readable form shown in the panel.
func (s BookingStatus) Label() string {
	switch s {
	case BookingStatusPending:
		return "Awaiting approval"
	case BookingStatusApproved:
		return "Approved"
	case BookingStatusStarted:
		return "Started"
	case BookingStatusRejected:
		return "Rejected"
	case BookingStatusCancelled:
		return "Cancelled"
	case BookingStatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// BookingType distinguishes regular seats from seat-tier bookings.
type BookingType string

const (
	BookingTypeRegular   BookingType = "regular"
	BookingTypeFrontSeat BookingType = "front_seat"
	BookingTypeBackSeat  BookingType = "back_seat"
)

// Label returns the human-readable form shown in the panel.
func (t BookingType) Label() string {
	switch t {
	case BookingTypeRegular:
		return "Regular"
	case BookingTypeFrontSeat:
		return "Front seat"
	case BookingTypeBackSeat:
		return "Back seat"
	default:
		return string(t)
	}
}

// Booking is a passenger's reservation on a ride. RejectReason is meaningful
// only when Status is rejected.
type Booking struct {
	ID              uint
	Ride            *Ride
	Passenger       *User
	PickupAddress   string
	DropoffAddress  string
	PickupLocation  string
	DropoffLocation string
	SeatsCount      int
	Status          BookingStatus
	Type            BookingType
	Price           float64
	Comment         string
	RejectReason    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PassengerName returns the passenger's display name.
func (b *Booking) PassengerName() string {
	if b.Passenger == nil {
		return ""
	}
	return b.Passenger.FullName()
}

// RideInfo summarizes the booked ride for list columns.
func (b *Booking) RideInfo() string {
	if b.Ride == nil {
		return ""
	}
	return fmt.Sprintf("%s (%s)", b.Ride.Route(), b.Ride.DepartureDate.Format("02.01.2006 15:04"))
}
