package idea

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/brainboard/internal/domain"
	"github.com/heartmarshall/brainboard/pkg/ctxutil"
)

// CreateIdea submits a new idea to a topic on behalf of the authenticated
// user. The category must belong to the topic.
func (s *Service) CreateIdea(ctx context.Context, input CreateIdeaInput) (*domain.Idea, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var idea *domain.Idea
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireUser(txCtx, userID); err != nil {
			return err
		}

		topic, getErr := s.topics.GetByID(txCtx, input.TopicID)
		if getErr != nil {
			if errors.Is(getErr, domain.ErrNotFound) {
				return domain.NewReferenceError(domain.EntityTypeTopic, "topic_id", input.TopicID)
			}
			return fmt.Errorf("get topic: %w", getErr)
		}
		if !topic.HasCategory(input.CategoryID) {
			return domain.NewReferenceError(domain.EntityTypeCategory, "category_id", input.CategoryID)
		}

		now := s.clock.Now()
		var createErr error
		idea, createErr = s.ideas.Create(txCtx, &domain.Idea{
			TopicID:    topic.ID,
			Title:      strings.TrimSpace(input.Title),
			Content:    strings.TrimSpace(input.Content),
			AuthorID:   userID,
			CategoryID: input.CategoryID,
			CustomTags: domain.NormalizeTags(input.CustomTags),
			Votes:      []string{},
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if createErr != nil {
			return fmt.Errorf("create idea: %w", createErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.ActivityRecord{
			UserID:     userID,
			TopicID:    topic.ID,
			EntityType: domain.EntityTypeIdea,
			EntityID:   idea.ID,
			Action:     domain.ActivityActionCreate,
			Summary:    fmt.Sprintf("added a new idea to %q", topic.Title),
			Changes: map[string]any{
				"title": map[string]any{"new": idea.Title},
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

	s.log.InfoContext(ctx, "idea created",
		slog.String("user_id", userID),
		slog.String("topic_id", idea.TopicID),
		slog.String("idea_id", idea.ID),
	)

	return idea, nil
}
