package domain

import (
	"maps"
	"time"
)

// ActivityRecord logs a mutation for the team activity feed.
type ActivityRecord struct {
	ID         string
	UserID     string
	TopicID    string
	EntityType EntityType
	EntityID   string
	Action     ActivityAction
	Summary    string
	Changes    map[string]any
	CreatedAt  time.Time
}

// Clone returns a copy of r with its own Changes map.
func (r ActivityRecord) Clone() ActivityRecord {
	r.Changes = maps.Clone(r.Changes)
	return r
}
