package collection

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"aniweek/internal/anime"
	"aniweek/internal/logging"
	"aniweek/internal/store"
)

// ErrSaveFailed reports that a mutation could not be persisted. The
// in-memory state is rolled back so callers never observe unsaved changes.
var ErrSaveFailed = errors.New("collection save failed")

// ErrClosed reports a mutation attempted after the manager was closed.
var ErrClosed = errors.New("collection manager is closed")

// Manager is the single writer over the collection. Every mutation is
// applied to the current value, persisted, and then backed up. A failed
// backup is logged but does not fail the mutation; the backup simply
// stays one generation behind.
type Manager struct {
	mu      sync.Mutex
	store   *store.Store
	logger  *slog.Logger
	current Collection
	closed  bool
}

// NewManager loads the persisted collection and wraps it in a manager.
func NewManager(ctx context.Context, st *store.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.String(logging.FieldComponent, "collection"))
	return &Manager{
		store:   st,
		logger:  logger,
		current: New(st.Load(ctx)),
	}
}

// Snapshot returns the current collection value.
func (m *Manager) Snapshot() Collection {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Mutate applies fn to the current collection and persists the result.
// When fn or the save fails the previous state is kept.
func (m *Manager) Mutate(ctx context.Context, fn func(Collection) (Collection, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	next, err := fn(m.current)
	if err != nil {
		return err
	}
	entries := next.Entries()
	if !m.store.Save(ctx, entries) {
		return ErrSaveFailed
	}
	if !m.store.Backup(ctx, entries) {
		m.logger.Warn("backup write failed, backup is stale")
	}
	m.current = next
	return nil
}

// Add inserts a new entry and returns it as stored.
func (m *Manager) Add(ctx context.Context, entry anime.Entry) (anime.Entry, error) {
	if entry.ID == "" {
		entry.ID = anime.NewEntryID()
	}
	entry = entry.Normalize()
	err := m.Mutate(ctx, func(c Collection) (Collection, error) {
		return c.Add(entry)
	})
	return entry, err
}

// ToggleFavorite flips the favorite flag of one entry.
func (m *Manager) ToggleFavorite(ctx context.Context, id string) error {
	return m.Mutate(ctx, func(c Collection) (Collection, error) {
		return c.ToggleFavorite(id)
	})
}

// Archive hides an entry from the calendar without deleting it.
func (m *Manager) Archive(ctx context.Context, id string) error {
	return m.Mutate(ctx, func(c Collection) (Collection, error) {
		return c.Archive(id)
	})
}

// Restore returns an archived entry to active.
func (m *Manager) Restore(ctx context.Context, id string) error {
	return m.Mutate(ctx, func(c Collection) (Collection, error) {
		return c.Restore(id)
	})
}

// Update replaces the editable fields of one entry.
func (m *Manager) Update(ctx context.Context, id string, replacement anime.Entry) error {
	return m.Mutate(ctx, func(c Collection) (Collection, error) {
		return c.Update(id, replacement)
	})
}

// SetCover replaces the cover image of one entry.
func (m *Manager) SetCover(ctx context.Context, id, cover string) error {
	return m.Mutate(ctx, func(c Collection) (Collection, error) {
		return c.SetCover(id, cover)
	})
}

// Delete removes an entry permanently.
func (m *Manager) Delete(ctx context.Context, id string) error {
	return m.Mutate(ctx, func(c Collection) (Collection, error) {
		return c.Delete(id)
	})
}

// Import replaces the whole collection with entries from a transfer document.
func (m *Manager) Import(ctx context.Context, entries []anime.Entry) error {
	return m.Mutate(ctx, func(c Collection) (Collection, error) {
		return c.Replace(entries), nil
	})
}

// AddAll inserts reconciled seasonal entries in one transaction-like step.
func (m *Manager) AddAll(ctx context.Context, entries []anime.Entry) error {
	return m.Mutate(ctx, func(c Collection) (Collection, error) {
		return c.AddAll(entries)
	})
}

// RestoreFromBackup replaces the collection with the backup copy when one
// exists. It reports whether a backup was found.
func (m *Manager) RestoreFromBackup(ctx context.Context) (bool, error) {
	entries, ok := m.store.RestoreFromBackup(ctx)
	if !ok {
		return false, nil
	}
	err := m.Mutate(ctx, func(c Collection) (Collection, error) {
		return c.Replace(entries), nil
	})
	if err != nil {
		return true, err
	}
	return true, nil
}

// Clear empties the collection. The backup is left in place so the wipe
// stays recoverable.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if !m.store.Clear(ctx) {
		return ErrSaveFailed
	}
	m.current = New(nil)
	return nil
}

// Close stops accepting mutations. Snapshots keep working so status and
// listing endpoints stay readable while the daemon drains.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}
