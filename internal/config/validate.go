package config

import (
	"fmt"
	"strings"
)

// MaxTopIdeas bounds the top-ideas list of the board summary.
const MaxTopIdeas = 50

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Board.validate(); err != nil {
		return fmt.Errorf("board: %w", err)
	}

	c.Session.CurrentUserID = strings.TrimSpace(c.Session.CurrentUserID)
	c.Seed.Path = strings.TrimSpace(c.Seed.Path)

	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (b *BoardConfig) validate() error {
	if !b.Policy().IsValid() {
		return fmt.Errorf("thread_policy must be one-level or nested (got %q)", b.ThreadPolicy)
	}
	if !b.Sort().IsValid() {
		return fmt.Errorf("default_sort %q is not a known sort key", b.DefaultSort)
	}
	if b.TopIdeasLimit <= 0 || b.TopIdeasLimit > MaxTopIdeas {
		return fmt.Errorf("top_ideas must be in 1..%d (got %d)", MaxTopIdeas, b.TopIdeasLimit)
	}
	if b.ActivityLimit <= 0 {
		return fmt.Errorf("activity_limit must be > 0 (got %d)", b.ActivityLimit)
	}
	return nil
}
