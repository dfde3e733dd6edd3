package idea

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/brainboard/internal/domain"
)

type ideaRepo interface {
	Create(ctx context.Context, idea *domain.Idea) (*domain.Idea, error)
	GetByID(ctx context.Context, ideaID string) (*domain.Idea, error)
	ListByTopic(ctx context.Context, topicID string) ([]domain.Idea, error)
	ToggleVote(ctx context.Context, ideaID, userID string, now time.Time) (*domain.Idea, bool, error)
}

type topicRepo interface {
	GetByID(ctx context.Context, topicID string) (*domain.Topic, error)
}

type userRepo interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type commentCounter interface {
	CountByIdeaIDs(ctx context.Context, ideaIDs []string) (map[string]int, error)
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
	MaxTitleLength   = 50
	MaxContentLength = 250
	MaxTags          = 10
	MaxTagLength     = 30
)

// Config holds idea listing defaults.
type Config struct {
	DefaultSort domain.IdeaSortKey
}

// Service provides idea operations.
type Service struct {
	ideas    ideaRepo
	topics   topicRepo
	users    userRepo
	comments commentCounter
	audit    auditLogger
	tx       txManager
	clock    clock
	cfg      Config
	log      *slog.Logger
}

// NewService creates a new Idea service.
func NewService(
	log *slog.Logger,
	ideas ideaRepo,
	topics topicRepo,
	users userRepo,
	comments commentCounter,
	audit auditLogger,
	tx txManager,
	cfg Config,
) *Service {
	if !cfg.DefaultSort.IsValid() {
		cfg.DefaultSort = domain.IdeaSortNewest
	}
	return &Service{
		ideas:    ideas,
		topics:   topics,
		users:    users,
		comments: comments,
		audit:    audit,
		tx:       tx,
		clock:    realClock{},
		cfg:      cfg,
		log:      log.With("service", "idea"),
	}
}

// requireUser resolves the acting user. An id that does not name a known user
// is a reference error.
func (s *Service) requireUser(ctx context.Context, userID string) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewReferenceError(domain.EntityTypeUser, "user_id", userID)
		}
		return err
	}
	return nil
}
