package testsupport

import (
	"path/filepath"
	"testing"

	"aniweek/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.Socket = filepath.Join(base, "aniweek.sock")
	cfg.Paths.ShellSocket = ""

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithAniListBaseURL points the metadata client at a test server.
func WithAniListBaseURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.AniList.BaseURL = url
	}
}

// WithShellSocket sets the desktop-shell notification socket.
func WithShellSocket(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.ShellSocket = path
	}
}

// WithDefaultTheme overrides the configured default theme id.
func WithDefaultTheme(id string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Theme.Default = id
	}
}
