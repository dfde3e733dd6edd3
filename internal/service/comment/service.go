package comment

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/brainboard/internal/domain"
)

const (
	MaxContentLength = 1000
	previewLength    = 50
)

type commentRepo interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	GetByID(ctx context.Context, commentID string) (*domain.Comment, error)
	ListByIdea(ctx context.Context, ideaID string) ([]domain.Comment, error)
}

type ideaRepo interface {
	GetByID(ctx context.Context, ideaID string) (*domain.Idea, error)
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

// Config controls how comment threads are rendered.
type Config struct {
	ThreadPolicy domain.ThreadPolicy
}

// Service provides comment operations.
type Service struct {
	comments commentRepo
	ideas    ideaRepo
	users    userRepo
	audit    auditLogger
	tx       txManager
	clock    clock
	cfg      Config
	log      *slog.Logger
}

// NewService creates a new Comment service.
func NewService(
	log *slog.Logger,
	comments commentRepo,
	ideas ideaRepo,
	users userRepo,
	audit auditLogger,
	tx txManager,
	cfg Config,
) *Service {
	if !cfg.ThreadPolicy.IsValid() {
		cfg.ThreadPolicy = domain.ThreadPolicyOneLevel
	}
	return &Service{
		comments: comments,
		ideas:    ideas,
		users:    users,
		audit:    audit,
		tx:       tx,
		clock:    realClock{},
		cfg:      cfg,
		log:      log.With("service", "comment"),
	}
}

func (s *Service) requireUser(ctx context.Context, userID string) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewReferenceError(domain.EntityTypeUser, "user_id", userID)
		}
		return err
	}
	return nil
}

// preview shortens text for log lines without splitting a rune.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength])
}
