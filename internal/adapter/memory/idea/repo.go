// Package idea implements the Idea repository on the in-memory store.
package idea

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/brainboard/internal/adapter/memory"
	"github.com/heartmarshall/brainboard/internal/domain"
)

// Repo provides idea persistence backed by the in-memory store.
type Repo struct {
	db *memory.DB
}

// New creates a new idea repository.
func New(db *memory.DB) *Repo {
	return &Repo{db: db}
}

// Create stores a new idea. A blank ID is replaced with a generated one.
func (r *Repo) Create(_ context.Context, i *domain.Idea) (*domain.Idea, error) {
	row := i.Clone()
	if row.ID == "" {
		row.ID = memory.NewID()
	}
	if row.Votes == nil {
		row.Votes = []string{}
	}
	if err := r.db.Ideas.Insert(row.ID, row); err != nil {
		return nil, fmt.Errorf("idea %s: %w", row.ID, err)
	}
	return &row, nil
}

// GetByID returns an idea by ID.
// Returns domain.ErrNotFound if the idea does not exist.
func (r *Repo) GetByID(_ context.Context, id string) (*domain.Idea, error) {
	i, ok := r.db.Ideas.Get(id)
	if !ok {
		return nil, memory.NotFound("idea", id)
	}
	return &i, nil
}

// ListByTopic returns the topic's ideas in insertion order.
func (r *Repo) ListByTopic(_ context.Context, topicID string) ([]domain.Idea, error) {
	return r.db.Ideas.Select(func(i *domain.Idea) bool { return i.TopicID == topicID }), nil
}

// List returns every idea in insertion order.
func (r *Repo) List(_ context.Context) ([]domain.Idea, error) {
	return r.db.Ideas.Select(nil), nil
}

// ToggleVote flips userID's vote on the idea and stamps UpdatedAt.
// voted reports whether the call cast (true) or retracted (false) the vote.
// Returns domain.ErrNotFound if the idea does not exist.
func (r *Repo) ToggleVote(_ context.Context, ideaID, userID string, now time.Time) (idea *domain.Idea, voted bool, err error) {
	updated, found, err := r.db.Ideas.Update(ideaID, func(i *domain.Idea) error {
		voted = i.ToggleVote(userID, now)
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("idea %s: %w", ideaID, err)
	}
	if !found {
		return nil, false, memory.NotFound("idea", ideaID)
	}
	return &updated, voted, nil
}
