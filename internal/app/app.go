package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/brainboard/internal/adapter/memory"
	activityrepo "github.com/heartmarshall/brainboard/internal/adapter/memory/activity"
	commentrepo "github.com/heartmarshall/brainboard/internal/adapter/memory/comment"
	idearepo "github.com/heartmarshall/brainboard/internal/adapter/memory/idea"
	topicrepo "github.com/heartmarshall/brainboard/internal/adapter/memory/topic"
	userrepo "github.com/heartmarshall/brainboard/internal/adapter/memory/user"
	"github.com/heartmarshall/brainboard/internal/config"
	"github.com/heartmarshall/brainboard/internal/seeder"
	boardsvc "github.com/heartmarshall/brainboard/internal/service/board"
	commentsvc "github.com/heartmarshall/brainboard/internal/service/comment"
	ideasvc "github.com/heartmarshall/brainboard/internal/service/idea"
	topicsvc "github.com/heartmarshall/brainboard/internal/service/topic"
	usersvc "github.com/heartmarshall/brainboard/internal/service/user"
	"github.com/heartmarshall/brainboard/pkg/ctxutil"
)

// App is a fully wired board: one in-memory store, its repositories and the
// services on top of them.
type App struct {
	DB *memory.DB

	Topics   *topicsvc.Service
	Ideas    *ideasvc.Service
	Comments *commentsvc.Service
	Board    *boardsvc.Service
	Users    *usersvc.Service

	cfg *config.Config
	log *slog.Logger
}

// New builds the store, seeds it unless seeding is disabled, and wires the
// services.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db := memory.New()
	tx := memory.NewTxManager(db)

	users := userrepo.New(db)
	topics := topicrepo.New(db)
	ideas := idearepo.New(db)
	comments := commentrepo.New(db)
	activity := activityrepo.New(db)

	if !cfg.Seed.Disabled {
		fx, err := seeder.LoadFixture(cfg.Seed.Path)
		if err != nil {
			return nil, fmt.Errorf("app: load fixture: %w", err)
		}

		pipeline := seeder.NewPipeline(logger, seeder.Repos{
			Users:    users,
			Topics:   topics,
			Ideas:    ideas,
			Comments: comments,
		}, tx)
		if err := pipeline.Run(ctx, fx); err != nil {
			return nil, fmt.Errorf("app: seed: %w", err)
		}
	}

	ideaCfg := ideasvc.Config{DefaultSort: cfg.Board.Sort()}
	commentCfg := commentsvc.Config{ThreadPolicy: cfg.Board.Policy()}
	boardCfg := boardsvc.Config{
		TopIdeasLimit: cfg.Board.TopIdeasLimit,
		ActivityLimit: cfg.Board.ActivityLimit,
	}

	a := &App{
		DB:       db,
		Topics:   topicsvc.NewService(logger, topics, users, activity, tx),
		Ideas:    ideasvc.NewService(logger, ideas, topics, users, comments, activity, tx, ideaCfg),
		Comments: commentsvc.NewService(logger, comments, ideas, users, activity, tx, commentCfg),
		Board:    boardsvc.NewService(logger, topics, ideas, users, activity, boardCfg),
		Users:    usersvc.NewService(logger, users, topics),
		cfg:      cfg,
		log:      logger,
	}

	logger.DebugContext(ctx, "app ready",
		slog.String("version", Version),
		slog.Int("users", db.Users.Len()),
		slog.Int("topics", db.Topics.Len()),
		slog.Int("ideas", db.Ideas.Len()),
		slog.Int("comments", db.Comments.Len()),
	)

	return a, nil
}

// Session returns ctx carrying the configured current user and a fresh
// request id. With no current user configured the context is anonymous.
func (a *App) Session(ctx context.Context) context.Context {
	return a.As(ctx, a.cfg.Session.CurrentUserID)
}

// As returns ctx acting as userID. An empty userID yields an anonymous
// context.
func (a *App) As(ctx context.Context, userID string) context.Context {
	ctx = ctxutil.WithRequestID(ctx, memory.NewID())
	if userID == "" {
		return ctx
	}
	return ctxutil.WithUserID(ctx, userID)
}
