package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/brainboard/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// topicRepo defines the topic lookups needed by user service.
type topicRepo interface {
	ListByParticipant(ctx context.Context, userID string) ([]domain.Topic, error)
}

// Service implements read access to board members.
type Service struct {
	log    *slog.Logger
	users  userRepo
	topics topicRepo
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	topics topicRepo,
) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		topics: topics,
	}
}
