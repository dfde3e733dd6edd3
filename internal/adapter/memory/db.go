// Package memory is the in-process entity store. It holds the session's
// users, topics, ideas, comments and activity records; the repositories in
// its subpackages are the only writers.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/brainboard/internal/domain"
)

// DB owns every table of the store.
type DB struct {
	mu sync.RWMutex

	Users    *Table[domain.User]
	Topics   *Table[domain.Topic]
	Ideas    *Table[domain.Idea]
	Comments *Table[domain.Comment]
	Activity *Table[domain.ActivityRecord]
}

// New creates an empty store.
func New() *DB {
	db := &DB{}
	db.Users = newTable(&db.mu, domain.User.Clone)
	db.Topics = newTable(&db.mu, domain.Topic.Clone)
	db.Ideas = newTable(&db.mu, domain.Idea.Clone)
	db.Comments = newTable(&db.mu, domain.Comment.Clone)
	db.Activity = newTable(&db.mu, domain.ActivityRecord.Clone)
	return db
}

// Ping reports store health. The in-memory store is always available.
func (db *DB) Ping() error { return nil }

type dbState struct {
	users    tableState[domain.User]
	topics   tableState[domain.Topic]
	ideas    tableState[domain.Idea]
	comments tableState[domain.Comment]
	activity tableState[domain.ActivityRecord]
}

func (db *DB) snapshot() dbState {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return dbState{
		users:    db.Users.snapshot(),
		topics:   db.Topics.snapshot(),
		ideas:    db.Ideas.snapshot(),
		comments: db.Comments.snapshot(),
		activity: db.Activity.snapshot(),
	}
}

func (db *DB) restore(s dbState) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.Users.restore(s.users)
	db.Topics.restore(s.topics)
	db.Ideas.restore(s.ideas)
	db.Comments.restore(s.comments)
	db.Activity.restore(s.activity)
}

// NewID returns a fresh time-ordered identifier (UUIDv7).
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
