package domain

import (
	"strings"
	"time"
)

// Known role values. The set is open on the API side: unknown roles are kept
// verbatim and rendered as-is.
const (
	RoleAdmin  = "admin"
	RoleDriver = "driver"
	RoleUser   = "user"
)

// User is a platform account as the remote API reports it. Instances are
// rebuilt from the API response on every request and are never persisted
// locally; the remote API remains the only writer.
type User struct {
	ID        uint
	Email     string
	FirstName string
	LastName  string
	Phone     string
	PhotoURL  string
	Role      string
	FCMToken  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName is the display name used by change-list columns.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
