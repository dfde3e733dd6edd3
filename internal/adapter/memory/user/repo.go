// Package user implements the User repository on the in-memory store.
// Users are seed data: there is no update or delete path.
package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/brainboard/internal/adapter/memory"
	"github.com/heartmarshall/brainboard/internal/domain"
)

// Repo provides user access backed by the in-memory store.
type Repo struct {
	db *memory.DB
}

// New creates a new user repository.
func New(db *memory.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a seeded user. The user keeps its own ID.
func (r *Repo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if err := r.db.Users.Insert(u.ID, *u); err != nil {
		return nil, fmt.Errorf("user %s: %w", u.ID, err)
	}
	out := u.Clone()
	return &out, nil
}

// GetByID returns a user by ID.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.db.Users.Get(id)
	if !ok {
		return nil, memory.NotFound("user", id)
	}
	return &u, nil
}

// List returns all users in seed order.
func (r *Repo) List(_ context.Context) ([]domain.User, error) {
	return r.db.Users.Select(nil), nil
}

// Count returns the number of users.
func (r *Repo) Count(_ context.Context) (int, error) {
	return r.db.Users.Len(), nil
}
