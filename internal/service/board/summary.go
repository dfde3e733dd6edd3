package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/brainboard/internal/derive"
	"github.com/heartmarshall/brainboard/internal/domain"
)

// Summary aggregates a topic's ideas and votes: per-category counts, the
// top ideas by votes, unique voters and the participation rate across all
// users.
func (s *Service) Summary(ctx context.Context, topicID string) (*derive.Summary, error) {
	if strings.TrimSpace(topicID) == "" {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	ideas, err := s.ideas.ListByTopic(ctx, topic.ID)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	summary := derive.Summarize(ideas, topic.Categories, users, s.cfg.TopIdeasLimit)

	s.log.DebugContext(ctx, "board summarized",
		slog.String("topic_id", topic.ID),
		slog.Int("ideas", summary.TotalIdeas),
		slog.Int("votes", summary.TotalVotes),
	)

	return &summary, nil
}
