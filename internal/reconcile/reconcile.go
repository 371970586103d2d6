// Package reconcile merges seasonal metadata records into the existing
// collection: records whose preferred title already exists are skipped, and
// survivors become new entries with day and time derived from their next
// airing timestamp.
package reconcile

import (
	"strings"
	"time"

	"aniweek/internal/anilist"
	"aniweek/internal/anime"
)

const (
	fallbackDay  = "Monday"
	fallbackTime = "00:00"

	// maxImportTags caps how many genres become entry tags.
	maxImportTags = 3
)

// Merge builds new entries for the selected records, deduplicating against
// existing entries by case-insensitive title. Airing timestamps are
// interpreted in the local time zone.
func Merge(records []anilist.Media, existing []anime.Entry) []anime.Entry {
	return MergeIn(records, existing, time.Local)
}

// MergeIn is Merge with an explicit location, the seam used by tests.
// The operation is pure apart from entry ID generation.
func MergeIn(records []anilist.Media, existing []anime.Entry, loc *time.Location) []anime.Entry {
	existingTitles := make(map[string]struct{}, len(existing))
	for _, entry := range existing {
		existingTitles[strings.ToLower(entry.Title)] = struct{}{}
	}

	imported := make([]anime.Entry, 0, len(records))
	for _, record := range records {
		title := anilist.PreferredTitle(record)
		if title == "" {
			continue
		}
		if _, dup := existingTitles[strings.ToLower(title)]; dup {
			// Already tracked; skip silently.
			continue
		}

		day, clock := fallbackDay, fallbackTime
		if record.NextAiringEpisode != nil {
			airing := time.Unix(record.NextAiringEpisode.AiringAt, 0).In(loc)
			day = airing.Weekday().String()
			clock = airing.Format("15:04")
		}

		tags := record.Genres
		if len(tags) > maxImportTags {
			tags = tags[:maxImportTags]
		}

		imported = append(imported, anime.Entry{
			ID:         anime.NewEntryID(),
			Title:      title,
			Day:        day,
			Time:       clock,
			Tags:       append([]string(nil), tags...),
			CoverImage: anilist.PreferredCover(record),
			Favorite:   false,
			Status:     anime.StatusActive,
		})
	}
	return imported
}
