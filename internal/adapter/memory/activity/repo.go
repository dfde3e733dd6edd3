// Package activity implements the append-only activity feed on the
// in-memory store.
package activity

import (
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/brainboard/internal/adapter/memory"
	"github.com/heartmarshall/brainboard/internal/domain"
)

// Repo provides activity record persistence backed by the in-memory store.
type Repo struct {
	db *memory.DB
}

// New creates a new activity repository.
func New(db *memory.DB) *Repo {
	return &Repo{db: db}
}

// Log appends an activity record. A blank ID is replaced with a generated one.
func (r *Repo) Log(_ context.Context, record domain.ActivityRecord) error {
	if record.ID == "" {
		record.ID = memory.NewID()
	}
	if err := r.db.Activity.Insert(record.ID, record); err != nil {
		return fmt.Errorf("activity %s: %w", record.ID, err)
	}
	return nil
}

// ListRecent returns up to limit records, newest first. limit <= 0 means all.
func (r *Repo) ListRecent(_ context.Context, limit int) ([]domain.ActivityRecord, error) {
	return newestFirst(r.db.Activity.Select(nil), limit), nil
}

// ListByTopic returns up to limit records for a topic, newest first.
func (r *Repo) ListByTopic(_ context.Context, topicID string, limit int) ([]domain.ActivityRecord, error) {
	records := r.db.Activity.Select(func(a *domain.ActivityRecord) bool { return a.TopicID == topicID })
	return newestFirst(records, limit), nil
}

func newestFirst(records []domain.ActivityRecord, limit int) []domain.ActivityRecord {
	slices.Reverse(records)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}
