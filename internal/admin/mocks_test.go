package admin

import (
	"context"
	"net/url"

	"taxiadmin/internal/domain"
	"taxiadmin/internal/flash"
)

// mockFlash records messages instead of touching Redis.
type mockFlash struct {
	added []flash.Message
}

func (m *mockFlash) Add(_ context.Context, _ string, level, text string) {
	m.added = append(m.added, flash.Message{Level: level, Text: text})
}

func (m *mockFlash) Pop(_ context.Context, _ string) []flash.Message {
	popped := m.added
	m.added = nil
	return popped
}

func (m *mockFlash) lastLevel() string {
	if len(m.added) == 0 {
		return ""
	}
	return m.added[len(m.added)-1].Level
}

// mockDocuments implements repository.DocumentRepository.
type mockDocuments struct {
	docs []*domain.DriverDocument

	updateOK     bool
	updateCalls  int
	updateID     uint
	updateStatus domain.DocumentStatus
	updateReason string
}

func (m *mockDocuments) List(_ context.Context, _ url.Values) []*domain.DriverDocument {
	return m.docs
}

func (m *mockDocuments) Get(_ context.Context, id uint) *domain.DriverDocument {
	for _, d := range m.docs {
		if d.ID == id {
			return d
		}
	}
	return nil
}

func (m *mockDocuments) UpdateStatus(_ context.Context, id uint, status domain.DocumentStatus, reason string) bool {
	m.updateCalls++
	m.updateID = id
	m.updateStatus = status
	m.updateReason = reason
	return m.updateOK
}

// mockRides implements repository.RideRepository.
type mockRides struct {
	rides []*domain.Ride

	updateOK     bool
	updateCalls  int
	updateID     uint
	updateFields map[string]any
}

func (m *mockRides) List(_ context.Context, _ url.Values) []*domain.Ride {
	return m.rides
}

func (m *mockRides) Get(_ context.Context, id uint) *domain.Ride {
	for _, r := range m.rides {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (m *mockRides) Update(_ context.Context, id uint, fields map[string]any) bool {
	m.updateCalls++
	m.updateID = id
	m.updateFields = fields
	return m.updateOK
}

// mockBookings implements repository.BookingRepository.
type mockBookings struct {
	bookings []*domain.Booking

	updateOK     bool
	updateCalls  int
	updateID     uint
	updateFields map[string]any
}

func (m *mockBookings) List(_ context.Context, _ url.Values) []*domain.Booking {
	return m.bookings
}

func (m *mockBookings) Get(_ context.Context, id uint) *domain.Booking {
	for _, b := range m.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (m *mockBookings) Update(_ context.Context, id uint, fields map[string]any) bool {
	m.updateCalls++
	m.updateID = id
	m.updateFields = fields
	return m.updateOK
}
