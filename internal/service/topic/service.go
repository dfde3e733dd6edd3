package topic

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/brainboard/internal/domain"
)

type topicRepo interface {
	Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	GetByID(ctx context.Context, topicID string) (*domain.Topic, error)
	Update(ctx context.Context, topicID string, params domain.TopicUpdateParams) (*domain.Topic, error)
	List(ctx context.Context) ([]domain.Topic, error)
}

type userRepo interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.ActivityRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MaxCategories        = 20

	// TemplateStageDuration is how long the submission stage of a
	// template-created topic lasts.
	TemplateStageDuration = 7 * 24 * time.Hour
)

// Service provides topic management operations.
type Service struct {
	topics topicRepo
	users  userRepo
	audit  auditLogger
	tx     txManager
	clock  clock
	log    *slog.Logger
}

// NewService creates a new Topic service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	users userRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		topics: topics,
		users:  users,
		audit:  audit,
		tx:     tx,
		clock:  realClock{},
		log:    log.With("service", "topic"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ptr returns a pointer to the given string.
func ptr(s string) *string {
	return &s
}

// requireUser resolves the acting user. An id that does not name a known user
// is a reference error.
func (s *Service) requireUser(ctx context.Context, userID string) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if isNotFound(err) {
			return domain.NewReferenceError(domain.EntityTypeUser, "user_id", userID)
		}
		return err
	}
	return nil
}
