// Package daemon wires the storage and metadata services together and
// enforces single-instance execution through a file lock.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"aniweek/internal/anilist"
	"aniweek/internal/anime"
	"aniweek/internal/collection"
	"aniweek/internal/config"
	"aniweek/internal/covers"
	"aniweek/internal/logging"
	"aniweek/internal/reconcile"
	"aniweek/internal/shellnotify"
	"aniweek/internal/store"
	"aniweek/internal/theme"
)

var nowFunc = time.Now

// Daemon owns the collection services exposed over IPC.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *store.Store

	collection *collection.Manager
	anilist    *anilist.Client
	themes     *theme.Service
	covers     *covers.Upgrader

	lockPath string
	lock     *flock.Flock

	shutdown context.CancelFunc
	running  atomic.Bool
	locked   atomic.Bool
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	DatabasePath string
	LockPath     string
	PID          int
	Entries      int
}

// New constructs a daemon with initialized dependencies.
func New(ctx context.Context, cfg *config.Config, st *store.Store, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || st == nil {
		return nil, errors.New("daemon requires config and store")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	client, err := anilist.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("metadata client: %w", err)
	}
	notifier := shellnotify.New(cfg, logger)
	lockPath := cfg.LockPath()
	return &Daemon{
		cfg:        cfg,
		logger:     logger,
		store:      st,
		collection: collection.NewManager(ctx, st, logger),
		anilist:    client,
		themes:     theme.NewService(cfg, st, notifier, logger),
		covers:     covers.NewUpgrader(client, logger),
		lockPath:   lockPath,
		lock:       flock.New(lockPath),
	}, nil
}

// OnShutdown registers the function invoked when a stop is requested,
// typically the root context cancel of the hosting process.
func (d *Daemon) OnShutdown(fn context.CancelFunc) {
	d.shutdown = fn
}

// Start acquires the single-instance lock and marks the daemon running.
func (d *Daemon) Start(context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another aniweek daemon instance is already running")
	}

	d.locked.Store(true)
	d.running.Store(true)
	d.logger.Info("aniweek daemon started", logging.String("lock", d.lockPath))
	return nil
}

// Stop marks the daemon stopped, refuses further mutations, and asks the
// hosting process to shut down. The instance lock stays held until Close
// so a replacement daemon cannot start writing while this process is
// still draining its connections.
func (d *Daemon) Stop() {
	if !d.running.CompareAndSwap(true, false) {
		return
	}
	d.collection.Close()
	d.logger.Info("aniweek daemon stopping")
	if d.shutdown != nil {
		d.shutdown()
	}
}

// Close stops the daemon, releases the instance lock, and closes the
// store. It runs on process exit, after the IPC server has drained.
func (d *Daemon) Close() error {
	d.Stop()
	if d.locked.CompareAndSwap(true, false) {
		if err := d.lock.Unlock(); err != nil {
			d.logger.Warn("failed to release daemon lock", logging.Error(err))
		}
	}
	if d.store != nil {
		return d.store.Close()
	}
	return nil
}

// Status reports runtime information for the status command.
func (d *Daemon) Status(ctx context.Context) Status {
	return Status{
		Running:      d.running.Load(),
		DatabasePath: d.cfg.DatabasePath(),
		LockPath:     d.lockPath,
		PID:          os.Getpid(),
		Entries:      d.collection.Snapshot().Len(),
	}
}

// Collection exposes the single-writer collection manager.
func (d *Daemon) Collection() *collection.Manager {
	return d.collection
}

// Metadata exposes the metadata client for search endpoints.
func (d *Daemon) Metadata() *anilist.Client {
	return d.anilist
}

// Themes exposes the theme service.
func (d *Daemon) Themes() *theme.Service {
	return d.themes
}

// Store exposes the persistence layer for stats and transfer endpoints.
func (d *Daemon) Store() *store.Store {
	return d.store
}

// SeasonPreview fetches the current season and reconciles it against the
// collection, returning the entries an import would add.
func (d *Daemon) SeasonPreview(ctx context.Context) (anilist.Season, int, []anime.Entry) {
	season, year := anilist.CurrentSeason(nowFunc())
	media := d.anilist.FetchSeason(ctx, season, year)
	merged := reconcile.Merge(media, d.collection.Snapshot().Entries())
	return season, year, merged
}

// SeasonImport fetches, reconciles, and stores the current season's shows.
func (d *Daemon) SeasonImport(ctx context.Context) (anilist.Season, int, []anime.Entry, error) {
	season, year, merged := d.SeasonPreview(ctx)
	if len(merged) == 0 {
		return season, year, nil, nil
	}
	if err := d.collection.AddAll(ctx, merged); err != nil {
		return season, year, nil, err
	}
	d.logger.Info("seasonal import finished",
		logging.String("season", string(season)),
		logging.Int("year", year),
		logging.Int("added", len(merged)))
	return season, year, merged, nil
}

// UpgradeCovers runs the sequential cover upgrade over the collection.
func (d *Daemon) UpgradeCovers(ctx context.Context) (covers.Result, error) {
	return d.covers.Run(ctx, d.collection)
}
