package ipc

import (
	"aniweek/internal/anilist"
	"aniweek/internal/anime"
	"aniweek/internal/theme"
)

// StopRequest stops the daemon.
type StopRequest struct{}

// StopResponse indicates stop result.
type StopResponse struct {
	Stopped bool `json:"stopped"`
}

// StatusRequest fetches daemon status.
type StatusRequest struct{}

// StatusResponse represents daemon runtime information.
type StatusResponse struct {
	Running      bool   `json:"running"`
	DatabasePath string `json:"database_path"`
	LockPath     string `json:"lock_path"`
	PID          int    `json:"pid"`
	Entries      int    `json:"entries"`
}

// ListRequest filters the collection listing. An empty request returns
// every entry, archived ones included.
type ListRequest struct {
	Day       string `json:"day"`
	Favorites bool   `json:"favorites"`
	Archived  bool   `json:"archived"`
}

// ListResponse contains collection entries.
type ListResponse struct {
	Entries []anime.Entry `json:"entries"`
}

// AddRequest inserts a new entry. The id is assigned by the daemon.
type AddRequest struct {
	Entry anime.Entry `json:"entry"`
}

// AddResponse returns the entry as stored.
type AddResponse struct {
	Entry anime.Entry `json:"entry"`
}

// EntryRequest targets a single entry by id.
type EntryRequest struct {
	ID string `json:"id"`
}

// EntryResponse returns the entry after mutation. Empty for deletes.
type EntryResponse struct {
	Entry anime.Entry `json:"entry"`
}

// UpdateRequest replaces the editable fields of one entry.
type UpdateRequest struct {
	ID    string      `json:"id"`
	Entry anime.Entry `json:"entry"`
}

// SetCoverRequest replaces an entry's cover image.
type SetCoverRequest struct {
	ID    string `json:"id"`
	Cover string `json:"cover"`
}

// StatsRequest fetches collection aggregates.
type StatsRequest struct{}

// StatsResponse summarizes the collection.
type StatsResponse struct {
	Total     int            `json:"total"`
	Favorites int            `json:"favorites"`
	ByDay     map[string]int `json:"by_day"`
}

// SearchRequest queries the metadata service by title.
type SearchRequest struct {
	Query string `json:"query"`
}

// SearchResponse contains metadata matches.
type SearchResponse struct {
	Results []anilist.Media `json:"results"`
}

// SeasonRequest previews or imports the current broadcast season.
type SeasonRequest struct{}

// SeasonResponse reports the resolved season window and the entries that
// were (or would be) added.
type SeasonResponse struct {
	Season  string        `json:"season"`
	Year    int           `json:"year"`
	Entries []anime.Entry `json:"entries"`
}

// UpgradeCoversRequest runs the bulk cover upgrade.
type UpgradeCoversRequest struct{}

// UpgradeCoversResponse summarizes the upgrade run.
type UpgradeCoversResponse struct {
	Upgraded int `json:"upgraded"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// ExportRequest produces a portable collection document.
type ExportRequest struct{}

// ExportResponse carries the document and its suggested filename.
type ExportResponse struct {
	Document string `json:"document"`
	Filename string `json:"filename"`
}

// ImportRequest replaces the collection with a previously exported document.
type ImportRequest struct {
	Document string `json:"document"`
}

// ImportResponse reports the number of imported entries.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// RestoreBackupRequest replaces the collection with the backup snapshot.
type RestoreBackupRequest struct{}

// RestoreBackupResponse reports whether a backup existed.
type RestoreBackupResponse struct {
	Restored int  `json:"restored"`
	Found    bool `json:"found"`
}

// ClearRequest empties the collection, keeping the backup.
type ClearRequest struct{}

// ClearResponse indicates the wipe completed.
type ClearResponse struct {
	Cleared bool `json:"cleared"`
}

// ThemesRequest lists the theme catalog.
type ThemesRequest struct{}

// ThemesResponse contains the catalog and the active selection.
type ThemesResponse struct {
	Themes []theme.Theme `json:"themes"`
	Active string        `json:"active"`
}

// SetThemeRequest changes the active theme.
type SetThemeRequest struct {
	ID string `json:"id"`
}

// SetThemeResponse returns the applied theme.
type SetThemeResponse struct {
	Theme theme.Theme `json:"theme"`
}
