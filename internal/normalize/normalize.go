// Package normalize converts raw API payloads into typed entities. Builders
// are tolerant by contract: missing or oddly named fields get safe defaults,
// timestamps that will not parse degrade to the current time, and the only
// way to get nil back is input that cannot identify a record at all. Nothing
// in this package returns an error.
package normalize

import (
	"fmt"

	"taxiadmin/internal/domain"
)

// NewUser builds a User from a raw payload. Returns nil for an empty map or
// a record without an id, except admin profiles, which the API serves
// without one and get the synthetic id 0.
func NewUser(data map[string]any) *domain.User {
	if len(data) == 0 {
		return nil
	}

	var id uint
	if _, ok := lookup(data, "id"); ok {
		id = uintField(data, "id")
	} else if str(data, "role") != domain.RoleAdmin {
		return nil
	}

	return &domain.User{
		ID:        id,
		Email:     str(data, "email"),
		FirstName: str(data, "first_name"),
		LastName:  str(data, "last_name"),
		Phone:     str(data, "phone"),
		PhotoURL:  str(data, "photo_url"),
		Role:      str(data, "role"),
		FCMToken:  str(data, "fcm_token"),
		CreatedAt: timeField(data, "created_at"),
		UpdatedAt: timeField(data, "updated_at"),
	}
}

// NewDriverDocument builds a DriverDocument from a raw payload. The owning
// user is always non-nil: a nested user object is normalized recursively, a
// bare user_id yields a minimal driver record named after the id, and a
// payload with neither yields an id-0 "unknown driver" placeholder. This
// differs from NewRide/NewBooking, which leave missing nested users nil:
// document rows always render an owner column, so a placeholder beats a nil
// check in every renderer.
func NewDriverDocument(data map[string]any) *domain.DriverDocument {
	if len(data) == 0 {
		return nil
	}

	var user *domain.User
	if nested := object(data, "user"); nested != nil {
		user = NewUser(nested)
	}
	if user == nil {
		if uid := uintField(data, "user_id"); uid != 0 {
			user = &domain.User{
				ID:        uid,
				FirstName: "Driver",
				LastName:  fmt.Sprintf("#%d", uid),
				Role:      domain.RoleDriver,
			}
		} else {
			user = &domain.User{
				FirstName: "Unknown",
				LastName:  "driver",
				Role:      domain.RoleDriver,
			}
		}
	}

	return &domain.DriverDocument{
		ID:                   uintField(data, "id"),
		User:                 user,
		CarBrand:             str(data, "car_brand"),
		CarModel:             str(data, "car_model"),
		CarYear:              str(data, "car_year"),
		CarColor:             str(data, "car_color"),
		CarNumber:            str(data, "car_number"),
		DriverLicenseFront:   str(data, "driver_license_front"),
		DriverLicenseBack:    str(data, "driver_license_back"),
		CarRegistrationFront: str(data, "car_registration_front"),
		CarRegistrationBack:  str(data, "car_registration_back"),
		CarPhotoFront:        str(data, "car_photo_front"),
		CarPhotoSide:         str(data, "car_photo_side"),
		CarPhotoInterior:     str(data, "car_photo_interior"),
		Status:               domain.DocumentStatus(strOr(data, "status", string(domain.DocumentStatusPending))),
		RejectionReason:      str(data, "rejection_reason"),
		CreatedAt:            timeField(data, "created_at"),
		UpdatedAt:            timeField(data, "updated_at"),
	}
}

// NewRide builds a Ride from a raw payload. Driver and Passenger are
// normalized recursively and stay nil when the nested object is absent (see
// NewDriverDocument for the contrasting placeholder policy).
func NewRide(data map[string]any) *domain.Ride {
	if len(data) == 0 {
		return nil
	}

	return &domain.Ride{
		ID:                 uintField(data, "id"),
		Driver:             NewUser(object(data, "driver")),
		Passenger:          NewUser(object(data, "passenger")),
		FromAddress:        str(data, "from_address"),
		ToAddress:          str(data, "to_address"),
		FromLocation:       str(data, "from_location"),
		ToLocation:         str(data, "to_location"),
		Status:             domain.RideStatus(strOr(data, "status", string(domain.RideStatusActive))),
		Price:              floatField(data, "price"),
		SeatsCount:         intField(data, "seats_count"),
		BookedSeats:        intField(data, "booked_seats"),
		DepartureDate:      timeField(data, "departure_date"),
		Comment:            str(data, "comment"),
		FrontSeatPrice:     floatField(data, "front_seat_price"),
		BackSeatPrice:      floatField(data, "back_seat_price"),
		CancellationReason: str(data, "cancellation_reason"),
		CreatedAt:          timeField(data, "created_at"),
		UpdatedAt:          timeField(data, "updated_at"),
	}
}

// NewBooking builds a Booking from a raw payload. Ride and Passenger follow
// the same nil-when-absent policy as NewRide.
func NewBooking(data map[string]any) *domain.Booking {
	if len(data) == 0 {
		return nil
	}

	return &domain.Booking{
		ID:              uintField(data, "id"),
		Ride:            NewRide(object(data, "ride")),
		Passenger:       NewUser(object(data, "passenger")),
		PickupAddress:   str(data, "pickup_address"),
		DropoffAddress:  str(data, "dropoff_address"),
		PickupLocation:  str(data, "pickup_location"),
		DropoffLocation: str(data, "dropoff_location"),
		SeatsCount:      intField(data, "seats_count"),
		Status:          domain.BookingStatus(strOr(data, "status", string(domain.BookingStatusPending))),
		Type:            domain.BookingType(strOr(data, "booking_type", string(domain.BookingTypeRegular))),
		Price:           floatField(data, "price"),
		Comment:         str(data, "comment"),
		RejectReason:    str(data, "reject_reason"),
		CreatedAt:       timeField(data, "created_at"),
		UpdatedAt:       timeField(data, "updated_at"),
	}
}
