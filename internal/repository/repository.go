// Package repository defines the data-access contracts of the panel. There
// is no database behind them: implementations fetch from the remote platform
// API on every call and forward writes to it. Reads follow the panel's
// fail-soft contract: a degraded backend call yields an empty slice or nil,
// never an error, so callers only ever check for emptiness. Writes report a
// bool: an empty response from the API counts as failure even though no
// error occurred.
package repository

import (
	"context"
	"net/url"

	"taxiadmin/internal/domain"
)

// UserRepository reads platform accounts.
type UserRepository interface {
	// List fetches all users visible to the admin token.
	List(ctx context.Context) []*domain.User

	// Get fetches one user, or nil.
	Get(ctx context.Context, id uint) *domain.User
}

// DocumentRepository reads driver verification documents and forwards
// moderation decisions.
type DocumentRepository interface {
	// List fetches driver documents; params (e.g. status=pending) are passed
	// through to the API.
	List(ctx context.Context, params url.Values) []*domain.DriverDocument

	// Get fetches one document, or nil.
	Get(ctx context.Context, id uint) *domain.DriverDocument

	// UpdateStatus forwards a moderation decision. The reason accompanies
	// rejections and is ignored by the API otherwise.
	UpdateStatus(ctx context.Context, id uint, status domain.DocumentStatus, reason string) bool
}

// RideRepository reads rides and forwards updates.
type RideRepository interface {
	// List fetches rides; params (e.g. status=active) are passed through.
	List(ctx context.Context, params url.Values) []*domain.Ride

	// Get fetches one ride, or nil.
	Get(ctx context.Context, id uint) *domain.Ride

	// Update forwards changed fields, keyed the way the API expects them.
	Update(ctx context.Context, id uint, fields map[string]any) bool
}

// BookingRepository reads bookings and forwards updates.
type BookingRepository interface {
	// List fetches bookings; params (status=, booking_type=) are passed
	// through.
	List(ctx context.Context, params url.Values) []*domain.Booking

	// Get fetches one booking, or nil.
	Get(ctx context.Context, id uint) *domain.Booking

	// Update forwards changed fields, keyed the way the API expects them.
	Update(ctx context.Context, id uint, fields map[string]any) bool
}
