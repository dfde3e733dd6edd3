package board

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/brainboard/internal/domain"
)

type topicRepo interface {
	GetByID(ctx context.Context, topicID string) (*domain.Topic, error)
}

type ideaRepo interface {
	ListByTopic(ctx context.Context, topicID string) ([]domain.Idea, error)
}

type userRepo interface {
	List(ctx context.Context) ([]domain.User, error)
}

type activityRepo interface {
	ListRecent(ctx context.Context, limit int) ([]domain.ActivityRecord, error)
	ListByTopic(ctx context.Context, topicID string, limit int) ([]domain.ActivityRecord, error)
}

// Config sizes the board views.
type Config struct {
	TopIdeasLimit int
	ActivityLimit int
}

// Service computes read-only board views.
type Service struct {
	topics   topicRepo
	ideas    ideaRepo
	users    userRepo
	activity activityRepo
	cfg      Config
	log      *slog.Logger
}

// NewService creates a new Board service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	ideas ideaRepo,
	users userRepo,
	activity activityRepo,
	cfg Config,
) *Service {
	return &Service{
		topics:   topics,
		ideas:    ideas,
		users:    users,
		activity: activity,
		cfg:      cfg,
		log:      log.With("service", "board"),
	}
}
