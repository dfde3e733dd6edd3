package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/brainboard/internal/domain"
	"github.com/heartmarshall/brainboard/pkg/ctxutil"
)

// CurrentUser returns the session's active user.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) CurrentUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.CurrentUser: %w", err)
	}

	return user, nil
}

// GetUser returns a user by ID.
func (s *Service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetUser: %w", err)
	}

	return user, nil
}

// MyTopics returns the topics the session's user participates in, newest
// first.
func (s *Service) MyTopics(ctx context.Context) ([]domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	topics, err := s.topics.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.MyTopics: %w", err)
	}

	return topics, nil
}
