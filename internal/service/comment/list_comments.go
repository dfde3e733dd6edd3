package comment

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/brainboard/internal/derive"
	"github.com/heartmarshall/brainboard/internal/domain"
)

// ListComments returns an idea's comments in the order they were posted.
func (s *Service) ListComments(ctx context.Context, ideaID string) ([]domain.Comment, error) {
	if err := s.requireIdea(ctx, ideaID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByIdea(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Thread returns an idea's comments grouped into reply threads using the
// configured thread policy.
func (s *Service) Thread(ctx context.Context, ideaID string) ([]derive.Thread, error) {
	comments, err := s.ListComments(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	return derive.ThreadComments(comments, ideaID, s.cfg.ThreadPolicy), nil
}

func (s *Service) requireIdea(ctx context.Context, ideaID string) error {
	if strings.TrimSpace(ideaID) == "" {
		return domain.NewValidationError("idea_id", "required")
	}
	if _, err := s.ideas.GetByID(ctx, ideaID); err != nil {
		return fmt.Errorf("get idea: %w", err)
	}
	return nil
}
