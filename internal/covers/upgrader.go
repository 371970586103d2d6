// Package covers upgrades stored cover images to the best art the
// metadata service offers.
package covers

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"aniweek/internal/anilist"
	"aniweek/internal/anime"
	"aniweek/internal/collection"
	"aniweek/internal/logging"
)

const defaultPause = 500 * time.Millisecond

// Fetcher is the title lookup the upgrader drives, satisfied by
// anilist.Client.
type Fetcher interface {
	Search(ctx context.Context, query string) []anilist.Media
}

// Result summarizes one upgrade run.
type Result struct {
	Upgraded int
	Skipped  int
	Failed   int
}

// Option adjusts upgrader behavior.
type Option func(*Upgrader)

// WithPause overrides the delay between lookups.
func WithPause(pause time.Duration) Option {
	return func(u *Upgrader) {
		u.pause = pause
	}
}

// Upgrader walks the collection one entry at a time, pausing between
// lookups to stay under the metadata service's rate limit.
type Upgrader struct {
	fetcher Fetcher
	logger  *slog.Logger
	pause   time.Duration
}

// NewUpgrader builds an upgrader.
func NewUpgrader(fetcher Fetcher, logger *slog.Logger, opts ...Option) *Upgrader {
	if logger == nil {
		logger = logging.NewNop()
	}
	u := &Upgrader{
		fetcher: fetcher,
		logger:  logger.With(logging.String(logging.FieldComponent, "covers")),
		pause:   defaultPause,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Run upgrades covers for every active entry. Entries without a match or
// already carrying the best cover are skipped; a failed write skips the
// entry and the run continues. The run stops early only on context
// cancellation, returning the partial result.
func (u *Upgrader) Run(ctx context.Context, mgr *collection.Manager) (Result, error) {
	var res Result
	entries := mgr.Snapshot().Entries()
	for i, entry := range entries {
		if entry.Status != anime.StatusActive {
			continue
		}
		if i > 0 && u.pause > 0 {
			select {
			case <-time.After(u.pause):
			case <-ctx.Done():
				return res, ctx.Err()
			}
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		cover := u.bestCover(ctx, entry.Title)
		if cover == "" || cover == entry.CoverImage {
			res.Skipped++
			continue
		}
		if err := mgr.SetCover(ctx, entry.ID, cover); err != nil {
			u.logger.Warn("cover update failed",
				logging.String("title", entry.Title),
				logging.Error(err))
			res.Failed++
			continue
		}
		u.logger.Info("cover upgraded", logging.String("title", entry.Title))
		res.Upgraded++
	}
	return res, nil
}

// bestCover looks the title up and returns the highest quality cover of
// the matching result, preferring an exact title match over the first hit.
func (u *Upgrader) bestCover(ctx context.Context, title string) string {
	results := u.fetcher.Search(ctx, title)
	if len(results) == 0 {
		return ""
	}
	match := results[0]
	for _, media := range results {
		if strings.EqualFold(anilist.PreferredTitle(media), title) {
			match = media
			break
		}
	}
	return anilist.PreferredCover(match)
}
