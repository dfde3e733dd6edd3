// Package seeder loads a board's initial contents from a YAML fixture into
// the entity store.
package seeder

import (
	"context"

	"github.com/heartmarshall/brainboard/internal/domain"
)

// UserRepo, TopicRepo, IdeaRepo and CommentRepo are the insert contracts the
// pipeline consumes. Implemented by the memory adapter repos.
type (
	UserRepo interface {
		Create(ctx context.Context, u *domain.User) (*domain.User, error)
	}
	TopicRepo interface {
		Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	}
	IdeaRepo interface {
		Create(ctx context.Context, i *domain.Idea) (*domain.Idea, error)
	}
	CommentRepo interface {
		Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	}
)

// Repos groups the repositories the pipeline writes to.
type Repos struct {
	Users    UserRepo
	Topics   TopicRepo
	Ideas    IdeaRepo
	Comments CommentRepo
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
