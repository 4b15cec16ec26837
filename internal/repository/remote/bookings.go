package remote

import (
	"context"
	"fmt"
	"net/url"

	"taxiadmin/internal/domain"
	"taxiadmin/internal/gateway"
	"taxiadmin/internal/normalize"
)

// BookingRepository fetches bookings from the platform API and forwards
// updates.
type BookingRepository struct {
	api *gateway.Client
}

// NewBookingRepository creates a BookingRepository.
func NewBookingRepository(api *gateway.Client) *BookingRepository {
	return &BookingRepository{api: api}
}

// List fetches bookings, passing params through to the API.
func (r *BookingRepository) List(ctx context.Context, params url.Values) []*domain.Booking {
	payload := r.api.Get(ctx, "/bookings", params)
	bookings := make([]*domain.Booking, 0)
	for _, obj := range payload.Objects() {
		if b := normalize.NewBooking(obj); b != nil {
			bookings = append(bookings, b)
		}
	}
	return bookings
}

// Get fetches one booking by id, or nil.
func (r *BookingRepository) Get(ctx context.Context, id uint) *domain.Booking {
	payload := r.api.Get(ctx, fmt.Sprintf("/bookings/%d", id), nil)
	obj, ok := payload.Object()
	if !ok {
		return nil
	}
	return normalize.NewBooking(obj)
}

// Update forwards changed booking fields. An empty answer counts as failure.
func (r *BookingRepository) Update(ctx context.Context, id uint, fields map[string]any) bool {
	payload := r.api.Put(ctx, fmt.Sprintf("/bookings/%d", id), fields)
	return !payload.IsEmpty()
}
