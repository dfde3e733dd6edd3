package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/brainboard/internal/domain"
	"github.com/heartmarshall/brainboard/pkg/ctxutil"
)

// AdvanceStage moves a topic to the next workflow stage. stageEnd sets the
// deadline of the new stage; nil leaves it open. A topic in finalization
// cannot advance (domain.ErrConflict).
func (s *Service) AdvanceStage(ctx context.Context, topicID string, stageEnd *time.Time) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if strings.TrimSpace(topicID) == "" {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	now := s.clock.Now()
	if stageEnd != nil && !stageEnd.After(now) {
		return nil, domain.NewValidationError("stage_end_date", "must be in the future")
	}

	var (
		updated *domain.Topic
		from    domain.WorkflowStage
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireUser(txCtx, userID); err != nil {
			return err
		}

		topic, getErr := s.topics.GetByID(txCtx, topicID)
		if getErr != nil {
			return fmt.Errorf("get topic: %w", getErr)
		}

		from = topic.Workflow.CurrentStage
		next, ok := from.Next()
		if !ok {
			return fmt.Errorf("advance from %s: %w", from, domain.ErrConflict)
		}

		var updateErr error
		updated, updateErr = s.topics.Update(txCtx, topicID, domain.TopicUpdateParams{
			Workflow:  &domain.Workflow{CurrentStage: next, StageEndDate: stageEnd},
			UpdatedAt: now,
		})
		if updateErr != nil {
			return fmt.Errorf("update topic: %w", updateErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.ActivityRecord{
			UserID:     userID,
			TopicID:    topicID,
			EntityType: domain.EntityTypeTopic,
			EntityID:   topicID,
			Action:     domain.ActivityActionAdvance,
			Summary:    fmt.Sprintf("moved %q to %s", updated.Title, next.Label()),
			Changes: map[string]any{
				"stage": map[string]any{"old": string(from), "new": string(next)},
			},
			CreatedAt: now,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic stage advanced",
		slog.String("user_id", userID),
		slog.String("topic_id", topicID),
		slog.String("from", string(from)),
		slog.String("to", string(updated.Workflow.CurrentStage)),
	)

	return updated, nil
}
