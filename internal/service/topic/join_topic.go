package topic

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/brainboard/internal/domain"
	"github.com/heartmarshall/brainboard/pkg/ctxutil"
)

// JoinTopic adds the authenticated user to a topic as a participant. When
// the topic has an access code the input must match it. Joining a topic the
// user already participates in returns the topic unchanged.
func (s *Service) JoinTopic(ctx context.Context, input JoinTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		result *domain.Topic
		joined bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireUser(txCtx, userID); err != nil {
			return err
		}

		topic, getErr := s.topics.GetByID(txCtx, input.TopicID)
		if getErr != nil {
			return fmt.Errorf("get topic: %w", getErr)
		}

		if _, member := topic.Participant(userID); member {
			result = topic
			return nil
		}
		if topic.AccessCode != nil && strings.TrimSpace(input.AccessCode) != *topic.AccessCode {
			return domain.NewValidationError("access_code", "does not match")
		}

		now := s.clock.Now()
		participants := append(slices.Clone(topic.Participants), domain.Participant{
			UserID: userID,
			Role:   domain.UserRoleParticipant,
		})
		var updateErr error
		result, updateErr = s.topics.Update(txCtx, input.TopicID, domain.TopicUpdateParams{
			Participants: participants,
			UpdatedAt:    now,
		})
		if updateErr != nil {
			return fmt.Errorf("update topic: %w", updateErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.ActivityRecord{
			UserID:     userID,
			TopicID:    input.TopicID,
			EntityType: domain.EntityTypeTopic,
			EntityID:   input.TopicID,
			Action:     domain.ActivityActionJoin,
			Summary:    fmt.Sprintf("joined %q", result.Title),
			CreatedAt:  now,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		joined = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if joined {
		s.log.InfoContext(ctx, "topic joined",
			slog.String("user_id", userID),
			slog.String("topic_id", input.TopicID),
		)
	}

	return result, nil
}
