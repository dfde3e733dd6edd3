package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// allPhases defines the canonical execution order. Each phase only
// references entities inserted by earlier ones.
var allPhases = []string{"users", "topics", "ideas", "comments"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Duration time.Duration
	Err      error
}

// Pipeline inserts a fixture into the store, one phase per entity kind.
type Pipeline struct {
	log     *slog.Logger
	repos   Repos
	tx      txManager
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repos Repos, tx txManager) *Pipeline {
	return &Pipeline{
		log:     log.With("component", "seeder"),
		repos:   repos,
		tx:      tx,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Run inserts every entity of fx in a single transaction. The first failing
// phase aborts the run and nothing is kept.
func (p *Pipeline) Run(ctx context.Context, fx *Fixture) error {
	if err := fx.Validate(); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, phase := range allPhases {
			start := time.Now()
			p.log.DebugContext(ctx, "starting phase", slog.String("phase", phase))

			var result PhaseResult
			switch phase {
			case "users":
				result = p.runUsers(ctx, fx.Users)
			case "topics":
				result = p.runTopics(ctx, fx.Topics)
			case "ideas":
				result = p.runIdeas(ctx, fx.Ideas)
			case "comments":
				result = p.runComments(ctx, fx.Comments)
			}
			result.Duration = time.Since(start)
			p.results[phase] = result

			if result.Err != nil {
				p.log.WarnContext(ctx, "phase failed",
					slog.String("phase", phase),
					slog.String("error", result.Err.Error()),
				)
				return fmt.Errorf("%s: %w", phase, result.Err)
			}
			p.log.DebugContext(ctx, "phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Duration("duration", result.Duration),
			)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	p.log.InfoContext(ctx, "seed completed",
		slog.Int("users", len(fx.Users)),
		slog.Int("topics", len(fx.Topics)),
		slog.Int("ideas", len(fx.Ideas)),
		slog.Int("comments", len(fx.Comments)),
	)
	return nil
}

func (p *Pipeline) runUsers(ctx context.Context, records []UserRecord) PhaseResult {
	var result PhaseResult
	for _, r := range records {
		u := r.ToDomain()
		if _, err := p.repos.Users.Create(ctx, &u); err != nil {
			result.Err = err
			return result
		}
		result.Inserted++
	}
	return result
}

func (p *Pipeline) runTopics(ctx context.Context, records []TopicRecord) PhaseResult {
	var result PhaseResult
	for _, r := range records {
		t := r.ToDomain()
		if _, err := p.repos.Topics.Create(ctx, &t); err != nil {
			result.Err = err
			return result
		}
		result.Inserted++
	}
	return result
}

func (p *Pipeline) runIdeas(ctx context.Context, records []IdeaRecord) PhaseResult {
	var result PhaseResult
	for _, r := range records {
		i := r.ToDomain()
		if _, err := p.repos.Ideas.Create(ctx, &i); err != nil {
			result.Err = err
			return result
		}
		result.Inserted++
	}
	return result
}

func (p *Pipeline) runComments(ctx context.Context, records []CommentRecord) PhaseResult {
	var result PhaseResult
	for _, r := range records {
		c := r.ToDomain()
		if _, err := p.repos.Comments.Create(ctx, &c); err != nil {
			result.Err = err
			return result
		}
		result.Inserted++
	}
	return result
}
