package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/brainboard/internal/domain"
	"github.com/heartmarshall/brainboard/pkg/ctxutil"
)

// CreateTopic creates a new topic owned by the authenticated user. The owner
// becomes the only participant and, unless Admins is given, the only admin.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	workflow := domain.Workflow{CurrentStage: domain.StageIntroduction}
	if input.Workflow != nil {
		workflow = input.Workflow.Clone()
	}
	admins := []string{userID}
	if input.Admins != nil {
		admins = make([]string, 0, len(input.Admins))
		for _, id := range input.Admins {
			admins = append(admins, strings.TrimSpace(id))
		}
	}

	now := s.clock.Now()
	return s.create(ctx, userID, &domain.Topic{
		Title:         strings.TrimSpace(input.Title),
		Description:   derefTrim(input.Description),
		OwnerID:       userID,
		AccessCode:    trimOrNil(input.AccessCode),
		ScheduledDate: input.ScheduledDate,
		Categories:    input.categories(),
		Admins:        admins,
		Participants:  []domain.Participant{{UserID: userID, Role: domain.UserRoleOwner}},
		InvitedEmails: normalizeEmails(input.InvitedEmails),
		Workflow:      workflow,
		Layout:        trimOrNil(input.Layout),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, "")
}

// CreateTopicFromTemplate creates a topic with a template's categories and
// layout. The topic starts in the submission stage, which ends after
// TemplateStageDuration.
func (s *Service) CreateTopicFromTemplate(ctx context.Context, input CreateFromTemplateInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	tpl, _ := domain.FindBoardTemplate(input.TemplateID)
	now := s.clock.Now()
	stageEnd := now.Add(TemplateStageDuration)

	return s.create(ctx, userID, &domain.Topic{
		Title:         strings.TrimSpace(input.Title),
		Description:   derefTrim(input.Description),
		OwnerID:       userID,
		AccessCode:    trimOrNil(input.AccessCode),
		ScheduledDate: input.ScheduledDate,
		Categories:    tpl.Categories,
		Admins:        []string{userID},
		Participants:  []domain.Participant{{UserID: userID, Role: domain.UserRoleOwner}},
		InvitedEmails: normalizeEmails(input.InvitedEmails),
		Workflow: domain.Workflow{
			CurrentStage: domain.StageSubmission,
			StageEndDate: &stageEnd,
		},
		Layout:    ptr(tpl.Layout),
		CreatedAt: now,
		UpdatedAt: now,
	}, tpl.ID)
}

func (s *Service) create(ctx context.Context, userID string, draft *domain.Topic, templateID string) (*domain.Topic, error) {
	var topic *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireUser(txCtx, userID); err != nil {
			return err
		}
		for n, id := range draft.Admins {
			if _, err := s.users.GetByID(txCtx, id); err != nil {
				if isNotFound(err) {
					return domain.NewReferenceError(domain.EntityTypeUser, fmt.Sprintf("admins[%d]", n), id)
				}
				return fmt.Errorf("get admin: %w", err)
			}
		}

		var createErr error
		topic, createErr = s.topics.Create(txCtx, draft)
		if createErr != nil {
			return fmt.Errorf("create topic: %w", createErr)
		}

		changes := map[string]any{
			"title": map[string]any{"new": topic.Title},
		}
		if templateID != "" {
			changes["template"] = map[string]any{"new": templateID}
		}
		auditErr := s.audit.Log(txCtx, domain.ActivityRecord{
			UserID:     userID,
			TopicID:    topic.ID,
			EntityType: domain.EntityTypeTopic,
			EntityID:   topic.ID,
			Action:     domain.ActivityActionCreate,
			Summary:    fmt.Sprintf("created a new board %q", topic.Title),
			Changes:    changes,
			CreatedAt:  topic.CreatedAt,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("user_id", userID),
		slog.String("topic_id", topic.ID),
		slog.String("title", topic.Title),
	)

	return topic, nil
}

func derefTrim(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
