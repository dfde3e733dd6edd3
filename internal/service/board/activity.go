package board

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/brainboard/internal/domain"
)

// RecentActivity returns the newest activity records, limited to one topic
// when topicID is set. limit <= 0 uses the configured feed size.
func (s *Service) RecentActivity(ctx context.Context, topicID string, limit int) ([]domain.ActivityRecord, error) {
	if limit <= 0 {
		limit = s.cfg.ActivityLimit
	}

	topicID = strings.TrimSpace(topicID)
	if topicID == "" {
		records, err := s.activity.ListRecent(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("list activity: %w", err)
		}
		return records, nil
	}

	if _, err := s.topics.GetByID(ctx, topicID); err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	records, err := s.activity.ListByTopic(ctx, topicID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return records, nil
}
