package idea

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/brainboard/internal/domain"
	"github.com/heartmarshall/brainboard/pkg/ctxutil"
)

// VoteResult is the outcome of a vote toggle.
type VoteResult struct {
	Idea *domain.Idea
	// Voted is true when the toggle cast a vote and false when it retracted one.
	Voted bool
}

// ToggleVote flips the authenticated user's vote on an idea: an existing vote
// is retracted, otherwise one is cast. Calling it twice restores the original
// vote set.
func (s *Service) ToggleVote(ctx context.Context, ideaID string) (*VoteResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if strings.TrimSpace(ideaID) == "" {
		return nil, domain.NewValidationError("idea_id", "required")
	}

	var result VoteResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireUser(txCtx, userID); err != nil {
			return err
		}

		now := s.clock.Now()
		idea, voted, toggleErr := s.ideas.ToggleVote(txCtx, ideaID, userID, now)
		if toggleErr != nil {
			return fmt.Errorf("toggle vote: %w", toggleErr)
		}
		result = VoteResult{Idea: idea, Voted: voted}

		action, summary := domain.ActivityActionVote, "voted on %q"
		if !voted {
			action, summary = domain.ActivityActionUnvote, "withdrew a vote on %q"
		}
		if auditErr := s.audit.Log(txCtx, domain.ActivityRecord{
			UserID:     userID,
			TopicID:    idea.TopicID,
			EntityType: domain.EntityTypeIdea,
			EntityID:   idea.ID,
			Action:     action,
			Summary:    fmt.Sprintf(summary, idea.Title),
			Changes: map[string]any{
				"votes": map[string]any{"new": idea.VoteCount()},
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

	s.log.InfoContext(ctx, "vote toggled",
		slog.String("user_id", userID),
		slog.String("idea_id", ideaID),
		slog.Bool("voted", result.Voted),
		slog.Int("votes", result.Idea.VoteCount()),
	)

	return &result, nil
}
