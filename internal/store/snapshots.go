package store

import (
	"context"
	"encoding/json"
	"time"

	"aniweek/internal/anime"
	"aniweek/internal/logging"
)

// Load reads the primary snapshot. Absent or corrupt data yields an empty
// collection; failures are logged, never returned.
func (s *Store) Load(ctx context.Context) []anime.Entry {
	return s.loadKey(ctx, primaryKey)
}

// Save wraps entries in a freshly stamped envelope and writes it to the
// primary key. It reports success; callers must check the result and follow
// a successful save with Backup.
func (s *Store) Save(ctx context.Context, entries []anime.Entry) bool {
	return s.saveKey(ctx, primaryKey, entries)
}

// Backup writes the same envelope shape to the backup key. The backup is
// overwritten unconditionally; it is independent of Save and must be invoked
// by the caller after every successful mutation.
func (s *Store) Backup(ctx context.Context, entries []anime.Entry) bool {
	return s.saveKey(ctx, backupKey, entries)
}

// RestoreFromBackup reads the backup snapshot. The second return value is
// false when the backup is missing or corrupt.
func (s *Store) RestoreFromBackup(ctx context.Context) ([]anime.Entry, bool) {
	raw, found, err := s.getDocument(ensureContext(ctx), backupKey)
	if err != nil {
		s.logger.Warn("backup read failed", logging.Error(err))
		return nil, false
	}
	if !found {
		return nil, false
	}
	var snapshot anime.Snapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		s.logger.Warn("backup snapshot corrupt", logging.Error(err))
		return nil, false
	}
	if snapshot.AnimeList == nil {
		return nil, false
	}
	return snapshot.AnimeList, true
}

// Clear deletes the primary snapshot only; the backup is untouched.
func (s *Store) Clear(ctx context.Context) bool {
	if err := s.deleteDocument(ensureContext(ctx), primaryKey); err != nil {
		s.logger.Error("clear primary snapshot failed", logging.Error(err))
		return false
	}
	return true
}

// Stats summarizes the current primary snapshot.
type Stats struct {
	Total     int
	Favorites int
	ByDay     map[string]int
}

// Stats derives read-only aggregates from the primary snapshot. It counts
// only entries that exist; nothing is inferred.
func (s *Store) Stats(ctx context.Context) Stats {
	entries := s.Load(ctx)
	stats := Stats{Total: len(entries), ByDay: make(map[string]int)}
	for _, entry := range entries {
		if entry.Favorite {
			stats.Favorites++
		}
		stats.ByDay[entry.Day]++
	}
	return stats
}

func (s *Store) loadKey(ctx context.Context, key string) []anime.Entry {
	raw, found, err := s.getDocument(ensureContext(ctx), key)
	if err != nil {
		s.logger.Warn("snapshot read failed", logging.String("key", key), logging.Error(err))
		return []anime.Entry{}
	}
	if !found {
		return []anime.Entry{}
	}
	var snapshot anime.Snapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		s.logger.Warn("snapshot corrupt, returning empty collection",
			logging.String("key", key), logging.Error(err))
		return []anime.Entry{}
	}
	if snapshot.AnimeList == nil {
		return []anime.Entry{}
	}
	return snapshot.AnimeList
}

func (s *Store) saveKey(ctx context.Context, key string, entries []anime.Entry) bool {
	snapshot := anime.NewSnapshot(entries, time.Now())
	payload, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Error("marshal snapshot failed", logging.String("key", key), logging.Error(err))
		return false
	}
	if err := s.putDocument(ensureContext(ctx), key, string(payload)); err != nil {
		s.logger.Error("write snapshot failed", logging.String("key", key), logging.Error(err))
		return false
	}
	s.logger.Debug("snapshot written",
		logging.String("key", key), logging.Int("entries", len(entries)))
	return true
}
