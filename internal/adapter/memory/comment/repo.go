// Package comment implements the Comment repository on the in-memory store.
// Comments are append-only.
package comment

import (
	"context"
	"fmt"

	"github.com/heartmarshall/brainboard/internal/adapter/memory"
	"github.com/heartmarshall/brainboard/internal/domain"
)

// Repo provides comment persistence backed by the in-memory store.
type Repo struct {
	db *memory.DB
}

// New creates a new comment repository.
func New(db *memory.DB) *Repo {
	return &Repo{db: db}
}

// Create stores a new comment. A blank ID is replaced with a generated one.
func (r *Repo) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	row := c.Clone()
	if row.ID == "" {
		row.ID = memory.NewID()
	}
	if err := r.db.Comments.Insert(row.ID, row); err != nil {
		return nil, fmt.Errorf("comment %s: %w", row.ID, err)
	}
	return &row, nil
}

// GetByID returns a comment by ID.
// Returns domain.ErrNotFound if the comment does not exist.
func (r *Repo) GetByID(_ context.Context, id string) (*domain.Comment, error) {
	c, ok := r.db.Comments.Get(id)
	if !ok {
		return nil, memory.NotFound("comment", id)
	}
	return &c, nil
}

// ListByIdea returns the idea's comments in insertion order.
func (r *Repo) ListByIdea(_ context.Context, ideaID string) ([]domain.Comment, error) {
	return r.db.Comments.Select(func(c *domain.Comment) bool { return c.IdeaID == ideaID }), nil
}

// List returns every comment in insertion order.
func (r *Repo) List(_ context.Context) ([]domain.Comment, error) {
	return r.db.Comments.Select(nil), nil
}

// CountByIdeaIDs returns the number of comments per idea. Every requested id
// is present in the result, with zero when it has no comments.
func (r *Repo) CountByIdeaIDs(_ context.Context, ideaIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(ideaIDs))
	for _, id := range ideaIDs {
		counts[id] = 0
	}
	r.db.Comments.Select(func(c *domain.Comment) bool {
		if _, ok := counts[c.IdeaID]; ok {
			counts[c.IdeaID]++
		}
		return false
	})
	return counts, nil
}
