package topic

import (
	"context"
	"fmt"

	"github.com/heartmarshall/brainboard/internal/domain"
)

// ListTopics returns all topics, newest first.
func (s *Service) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	topics, err := s.topics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return topics, nil
}

// ListTemplates returns the board templates available to CreateTopicFromTemplate.
func (s *Service) ListTemplates() []domain.BoardTemplate {
	return domain.BoardTemplates()
}
