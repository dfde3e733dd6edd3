package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/brainboard/internal/domain"
	"github.com/heartmarshall/brainboard/pkg/ctxutil"
)

// CreateComment adds a comment to an idea on behalf of the authenticated
// user. A reply's parent must be a comment on the same idea.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(input.Content)

	var comment *domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireUser(txCtx, userID); err != nil {
			return err
		}

		idea, getErr := s.ideas.GetByID(txCtx, input.IdeaID)
		if getErr != nil {
			if errors.Is(getErr, domain.ErrNotFound) {
				return domain.NewReferenceError(domain.EntityTypeIdea, "idea_id", input.IdeaID)
			}
			return fmt.Errorf("get idea: %w", getErr)
		}

		var parentID *string
		if input.ParentID != nil {
			parent, parentErr := s.comments.GetByID(txCtx, *input.ParentID)
			if parentErr != nil && !errors.Is(parentErr, domain.ErrNotFound) {
				return fmt.Errorf("get parent comment: %w", parentErr)
			}
			if parent == nil || parent.IdeaID != idea.ID {
				return domain.NewReferenceError(domain.EntityTypeComment, "parent_id", *input.ParentID)
			}
			parentID = &parent.ID
		}

		now := s.clock.Now()
		var createErr error
		comment, createErr = s.comments.Create(txCtx, &domain.Comment{
			IdeaID:    idea.ID,
			AuthorID:  userID,
			Content:   content,
			ParentID:  parentID,
			CreatedAt: now,
		})
		if createErr != nil {
			return fmt.Errorf("create comment: %w", createErr)
		}

		summary := fmt.Sprintf("commented on %q", idea.Title)
		if parentID != nil {
			summary = fmt.Sprintf("replied to a comment on %q", idea.Title)
		}
		if auditErr := s.audit.Log(txCtx, domain.ActivityRecord{
			UserID:     userID,
			TopicID:    idea.TopicID,
			EntityType: domain.EntityTypeComment,
			EntityID:   comment.ID,
			Action:     domain.ActivityActionCreate,
			Summary:    summary,
			Changes: map[string]any{
				"idea_id": map[string]any{"new": idea.ID},
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

	s.log.InfoContext(ctx, "comment created",
		slog.String("user_id", userID),
		slog.String("idea_id", comment.IdeaID),
		slog.String("comment_id", comment.ID),
		slog.String("content", preview(content)),
	)

	return comment, nil
}
