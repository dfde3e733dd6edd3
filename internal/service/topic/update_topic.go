package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/brainboard/internal/domain"
	"github.com/heartmarshall/brainboard/pkg/ctxutil"
)

// UpdateTopic applies a partial update to a topic and refreshes UpdatedAt.
func (s *Service) UpdateTopic(ctx context.Context, input UpdateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.TopicUpdateParams{
		ScheduledDate: input.ScheduledDate,
		UpdatedAt:     s.clock.Now(),
	}
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		params.Title = &trimmed
	}
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		params.Description = &trimmed
	}
	if input.AccessCode != nil {
		trimmed := strings.TrimSpace(*input.AccessCode)
		params.AccessCode = &trimmed // "" clears
	}
	if input.Layout != nil {
		trimmed := strings.TrimSpace(*input.Layout)
		params.Layout = &trimmed // "" clears
	}

	var updated *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireUser(txCtx, userID); err != nil {
			return err
		}

		// Fetch old state inside transaction for accurate activity diff.
		old, getErr := s.topics.GetByID(txCtx, input.TopicID)
		if getErr != nil {
			return fmt.Errorf("get topic: %w", getErr)
		}

		var updateErr error
		updated, updateErr = s.topics.Update(txCtx, input.TopicID, params)
		if updateErr != nil {
			return fmt.Errorf("update topic: %w", updateErr)
		}

		// Skip activity if nothing actually changed.
		changes := buildTopicChanges(old, updated)
		if len(changes) > 0 {
			if auditErr := s.audit.Log(txCtx, domain.ActivityRecord{
				UserID:     userID,
				TopicID:    updated.ID,
				EntityType: domain.EntityTypeTopic,
				EntityID:   updated.ID,
				Action:     domain.ActivityActionUpdate,
				Summary:    fmt.Sprintf("updated board %q", updated.Title),
				Changes:    changes,
				CreatedAt:  params.UpdatedAt,
			}); auditErr != nil {
				return fmt.Errorf("audit log: %w", auditErr)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic updated",
		slog.String("user_id", userID),
		slog.String("topic_id", input.TopicID),
	)

	return updated, nil
}

// buildTopicChanges returns only changed fields for the activity record.
func buildTopicChanges(old, updated *domain.Topic) map[string]any {
	changes := make(map[string]any)
	if old.Title != updated.Title {
		changes["title"] = map[string]any{"old": old.Title, "new": updated.Title}
	}
	if old.Description != updated.Description {
		changes["description"] = map[string]any{"old": old.Description, "new": updated.Description}
	}
	if deref(old.AccessCode) != deref(updated.AccessCode) {
		changes["access_code"] = map[string]any{"old": old.AccessCode, "new": updated.AccessCode}
	}
	if deref(old.Layout) != deref(updated.Layout) {
		changes["layout"] = map[string]any{"old": old.Layout, "new": updated.Layout}
	}
	switch {
	case old.ScheduledDate == nil && updated.ScheduledDate == nil:
	case old.ScheduledDate == nil, updated.ScheduledDate == nil, !old.ScheduledDate.Equal(*updated.ScheduledDate):
		changes["scheduled_date"] = map[string]any{"old": old.ScheduledDate, "new": updated.ScheduledDate}
	}
	return changes
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
