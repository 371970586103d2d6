package theme

import (
	"context"
	"log/slog"

	"aniweek/internal/config"
	"aniweek/internal/logging"
	"aniweek/internal/shellnotify"
	"aniweek/internal/store"
)

// Service resolves and persists the active theme. Selection survives
// restarts; the desktop shell is told about changes so its tray icon can
// follow the palette.
type Service struct {
	store    *store.Store
	notifier shellnotify.Notifier
	logger   *slog.Logger
	fallback string
}

// NewService builds a theme service. The configured default theme is
// validated against the catalog here; an unknown id is reported once at
// startup instead of failing every lookup.
func NewService(cfg *config.Config, st *store.Store, notifier shellnotify.Notifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.String(logging.FieldComponent, "theme"))
	fallback := DefaultID
	if cfg != nil && cfg.Theme.Default != "" {
		if _, err := Lookup(cfg.Theme.Default); err != nil {
			logger.Warn("configured default theme unknown, using built-in default",
				logging.String("theme", cfg.Theme.Default))
		} else {
			fallback = cfg.Theme.Default
		}
	}
	return &Service{
		store:    st,
		notifier: notifier,
		logger:   logger,
		fallback: fallback,
	}
}

// Current returns the active theme. A missing or unrecognized saved id
// falls back to the configured default so stale preferences never break
// startup.
func (s *Service) Current(ctx context.Context) Theme {
	id := s.store.ThemeID(ctx)
	if id == "" {
		id = s.fallback
	}
	t, err := Lookup(id)
	if err != nil {
		s.logger.Warn("saved theme unknown, using default", logging.String("theme", id))
		t, _ = Lookup(s.fallback)
	}
	return t
}

// Set validates and persists a theme selection, then notifies the shell.
// The shell notification is best effort and never blocks the change.
func (s *Service) Set(ctx context.Context, id string) (Theme, error) {
	t, err := Lookup(id)
	if err != nil {
		return Theme{}, err
	}
	if !s.store.SetThemeID(ctx, t.ID) {
		return Theme{}, ErrSaveFailed
	}
	s.logger.Info("theme changed", logging.String("theme", t.ID))
	s.notifier.ChangeIcon(t.ID)
	return t, nil
}
