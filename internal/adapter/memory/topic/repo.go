// Package topic implements the Topic repository on the in-memory store.
package topic

import (
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/brainboard/internal/adapter/memory"
	"github.com/heartmarshall/brainboard/internal/domain"
)

// Repo provides topic persistence backed by the in-memory store.
type Repo struct {
	db *memory.DB
}

// New creates a new topic repository.
func New(db *memory.DB) *Repo {
	return &Repo{db: db}
}

// Create stores a new topic. A blank ID is replaced with a generated one.
func (r *Repo) Create(_ context.Context, t *domain.Topic) (*domain.Topic, error) {
	row := t.Clone()
	if row.ID == "" {
		row.ID = memory.NewID()
	}
	if err := r.db.Topics.Insert(row.ID, row); err != nil {
		return nil, fmt.Errorf("topic %s: %w", row.ID, err)
	}
	return &row, nil
}

// GetByID returns a topic by ID.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) GetByID(_ context.Context, id string) (*domain.Topic, error) {
	t, ok := r.db.Topics.Get(id)
	if !ok {
		return nil, memory.NotFound("topic", id)
	}
	return &t, nil
}

// Update applies params to the topic as one replace-whole-row step.
func (r *Repo) Update(_ context.Context, id string, params domain.TopicUpdateParams) (*domain.Topic, error) {
	updated, found, err := r.db.Topics.Update(id, func(t *domain.Topic) error {
		params.Apply(t)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("topic %s: %w", id, err)
	}
	if !found {
		return nil, memory.NotFound("topic", id)
	}
	return &updated, nil
}

// List returns all topics, newest first. Topics created at the same instant
// list the later insertion first.
// Returns an empty slice (not nil) when there are no topics.
func (r *Repo) List(_ context.Context) ([]domain.Topic, error) {
	return newestFirst(r.db.Topics.Select(nil)), nil
}

// ListByParticipant returns the topics userID participates in, newest first.
func (r *Repo) ListByParticipant(_ context.Context, userID string) ([]domain.Topic, error) {
	topics := r.db.Topics.Select(func(t *domain.Topic) bool {
		_, ok := t.Participant(userID)
		return ok
	})
	return newestFirst(topics), nil
}

func newestFirst(topics []domain.Topic) []domain.Topic {
	slices.Reverse(topics)
	slices.SortStableFunc(topics, func(a, b domain.Topic) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return topics
}
