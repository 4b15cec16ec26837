// Package remote implements the repository interfaces on top of the API
// gateway client. Every call re-fetches from the platform API; nothing is
// cached between requests, so each page render sees the API's current state.
package remote

import (
	"context"
	"fmt"

	"taxiadmin/internal/domain"
	"taxiadmin/internal/gateway"
	"taxiadmin/internal/normalize"
)

// UserRepository fetches users from the platform API.
type UserRepository struct {
	api *gateway.Client
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(api *gateway.Client) *UserRepository {
	return &UserRepository{api: api}
}

// List fetches all users. The endpoint answers with either a single profile
// object or an array; both shapes normalize the same way.
func (r *UserRepository) List(ctx context.Context) []*domain.User {
	payload := r.api.Get(ctx, "/profile", nil)
	users := make([]*domain.User, 0)
	for _, obj := range payload.Objects() {
		if u := normalize.NewUser(obj); u != nil {
			users = append(users, u)
		}
	}
	return users
}

// Get fetches one user by id, or nil.
func (r *UserRepository) Get(ctx context.Context, id uint) *domain.User {
	payload := r.api.Get(ctx, fmt.Sprintf("/profile/%d", id), nil)
	obj, ok := payload.Object()
	if !ok {
		return nil
	}
	return normalize.NewUser(obj)
}
