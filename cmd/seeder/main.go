// Command seeder loads a board fixture into a fresh in-memory store and
// reports what each phase inserted. Use it to check a fixture before
// pointing SEED_PATH at it.
//
// Flags:
//
//	--fixture  path to a YAML fixture (default: the embedded fixture)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/brainboard/internal/adapter/memory"
	commentrepo "github.com/heartmarshall/brainboard/internal/adapter/memory/comment"
	idearepo "github.com/heartmarshall/brainboard/internal/adapter/memory/idea"
	topicrepo "github.com/heartmarshall/brainboard/internal/adapter/memory/topic"
	userrepo "github.com/heartmarshall/brainboard/internal/adapter/memory/user"
	"github.com/heartmarshall/brainboard/internal/app"
	"github.com/heartmarshall/brainboard/internal/config"
	"github.com/heartmarshall/brainboard/internal/seeder"
)

// Compile-time interface assertions.
var (
	_ seeder.UserRepo    = (*userrepo.Repo)(nil)
	_ seeder.TopicRepo   = (*topicrepo.Repo)(nil)
	_ seeder.IdeaRepo    = (*idearepo.Repo)(nil)
	_ seeder.CommentRepo = (*commentrepo.Repo)(nil)
)

func main() {
	fixtureFlag := flag.String("fixture", "", "path to a YAML fixture (default: embedded)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	fx, err := seeder.LoadFixture(*fixtureFlag)
	if err != nil {
		logger.Error("load fixture", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db := memory.New()
	users := userrepo.New(db)
	topics := topicrepo.New(db)
	ideas := idearepo.New(db)
	comments := commentrepo.New(db)

	pipeline := seeder.NewPipeline(logger, seeder.Repos{
		Users:    users,
		Topics:   topics,
		Ideas:    ideas,
		Comments: comments,
	}, memory.NewTxManager(db))

	if err := pipeline.Run(ctx, fx); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for phase, res := range pipeline.Results() {
		logger.Info("phase done",
			slog.String("phase", phase),
			slog.Int("inserted", res.Inserted),
			slog.Duration("duration", res.Duration),
		)
	}

	if err := reportTotals(ctx, logger, users, topics, ideas, comments); err != nil {
		logger.Error("count entities", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("fixture loaded successfully")
}

func reportTotals(
	ctx context.Context,
	logger *slog.Logger,
	users *userrepo.Repo,
	topics *topicrepo.Repo,
	ideas *idearepo.Repo,
	comments *commentrepo.Repo,
) error {
	nUsers, err := users.Count(ctx)
	if err != nil {
		return err
	}
	allTopics, err := topics.List(ctx)
	if err != nil {
		return err
	}
	allIdeas, err := ideas.List(ctx)
	if err != nil {
		return err
	}
	allComments, err := comments.List(ctx)
	if err != nil {
		return err
	}

	votes := 0
	for _, i := range allIdeas {
		votes += i.VoteCount()
	}

	logger.Info("store totals",
		slog.Int("users", nUsers),
		slog.Int("topics", len(allTopics)),
		slog.Int("ideas", len(allIdeas)),
		slog.Int("votes", votes),
		slog.Int("comments", len(allComments)),
	)
	return nil
}
