package topic

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/brainboard/internal/domain"
)

// GetTopic returns a single topic by ID.
func (s *Service) GetTopic(ctx context.Context, topicID string) (*domain.Topic, error) {
	if strings.TrimSpace(topicID) == "" {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	return topic, nil
}
