package remote

import (
	"context"
	"fmt"
	"net/url"

	"taxiadmin/internal/domain"
	"taxiadmin/internal/gateway"
	"taxiadmin/internal/normalize"
)

// RideRepository fetches rides from the platform API and forwards updates.
type RideRepository struct {
	api *gateway.Client
}

// NewRideRepository creates a RideRepository.
func NewRideRepository(api *gateway.Client) *RideRepository {
	return &RideRepository{api: api}
}

// List fetches rides, passing params through to the API.
func (r *RideRepository) List(ctx context.Context, params url.Values) []*domain.Ride {
	payload := r.api.Get(ctx, "/rides", params)
	rides := make([]*domain.Ride, 0)
	for _, obj := range payload.Objects() {
		if ride := normalize.NewRide(obj); ride != nil {
			rides = append(rides, ride)
		}
	}
	return rides
}

// Get fetches one ride by id, or nil.
func (r *RideRepository) Get(ctx context.Context, id uint) *domain.Ride {
	payload := r.api.Get(ctx, fmt.Sprintf("/rides/%d", id), nil)
	obj, ok := payload.Object()
	if !ok {
		return nil
	}
	return normalize.NewRide(obj)
}

// Update forwards changed ride fields. An empty answer counts as failure.
func (r *RideRepository) Update(ctx context.Context, id uint, fields map[string]any) bool {
	payload := r.api.Put(ctx, fmt.Sprintf("/rides/%d", id), fields)
	return !payload.IsEmpty()
}
