package anime

import "time"

// SnapshotVersion tags every persisted or exported snapshot envelope.
const SnapshotVersion = "1.0.0"

// Snapshot is the envelope written to storage keys and export files.
// The whole collection is rewritten on every mutation; there are no
// partial or delta writes.
type Snapshot struct {
	AnimeList   []Entry `json:"animeList"`
	LastUpdated string  `json:"lastUpdated"`
	Version     string  `json:"version"`
}

// NewSnapshot wraps entries in an envelope stamped with now.
func NewSnapshot(entries []Entry, now time.Time) Snapshot {
	if entries == nil {
		entries = []Entry{}
	}
	return Snapshot{
		AnimeList:   entries,
		LastUpdated: now.UTC().Format(time.RFC3339),
		Version:     SnapshotVersion,
	}
}
