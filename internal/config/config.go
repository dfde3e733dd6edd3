package config

import "github.com/heartmarshall/brainboard/internal/domain"

// Config is the root application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Seed    SeedConfig    `yaml:"seed"`
	Session SessionConfig `yaml:"session"`
	Board   BoardConfig   `yaml:"board"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// SeedConfig controls the data the store starts with.
type SeedConfig struct {
	// Disabled starts the store empty.
	Disabled bool `yaml:"disabled" env:"SEED_DISABLED"`
	// Path to a YAML fixture. Empty selects the embedded fixture.
	Path string `yaml:"path" env:"SEED_PATH"`
}

// SessionConfig holds the identity of the active user.
type SessionConfig struct {
	// CurrentUserID is the acting user. Empty means anonymous: reads work,
	// mutations fail with ErrUnauthorized.
	CurrentUserID string `yaml:"current_user_id" env:"SESSION_USER_ID" env-default:"1"`
}

// BoardConfig holds board view settings.
type BoardConfig struct {
	ThreadPolicy  string `yaml:"thread_policy"  env:"BOARD_THREAD_POLICY"  env-default:"one-level"`
	DefaultSort   string `yaml:"default_sort"   env:"BOARD_DEFAULT_SORT"   env-default:"newest"`
	TopIdeasLimit int    `yaml:"top_ideas"      env:"BOARD_TOP_IDEAS"      env-default:"5"`
	ActivityLimit int    `yaml:"activity_limit" env:"BOARD_ACTIVITY_LIMIT" env-default:"20"`
}

// Policy returns the thread policy as a domain value.
func (c BoardConfig) Policy() domain.ThreadPolicy {
	return domain.ThreadPolicy(c.ThreadPolicy)
}

// Sort returns the default idea sort as a domain value.
func (c BoardConfig) Sort() domain.IdeaSortKey {
	return domain.IdeaSortKey(c.DefaultSort)
}
