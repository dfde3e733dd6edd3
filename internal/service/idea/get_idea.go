package idea

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/brainboard/internal/domain"
)

// GetIdea returns a single idea by ID.
func (s *Service) GetIdea(ctx context.Context, ideaID string) (*domain.Idea, error) {
	if strings.TrimSpace(ideaID) == "" {
		return nil, domain.NewValidationError("idea_id", "required")
	}

	idea, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("get idea: %w", err)
	}

	return idea, nil
}
