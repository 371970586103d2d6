package store

import (
	"context"

	"aniweek/internal/logging"
)

// ThemeID returns the saved theme preference, or "" when none is saved.
func (s *Store) ThemeID(ctx context.Context) string {
	value, found, err := s.getDocument(ensureContext(ctx), themeKey)
	if err != nil {
		s.logger.Warn("theme read failed", logging.Error(err))
		return ""
	}
	if !found {
		return ""
	}
	return value
}

// SetThemeID persists the theme preference. Failure is logged only.
func (s *Store) SetThemeID(ctx context.Context, id string) bool {
	if err := s.putDocument(ensureContext(ctx), themeKey, id); err != nil {
		s.logger.Error("theme write failed", logging.Error(err))
		return false
	}
	return true
}
