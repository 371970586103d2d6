// Package transfer serializes the collection to portable JSON documents and
// parses uploaded documents back. The codec never merges: an imported
// document is a full replacement candidate, and the caller is responsible
// for confirming destructive replacement with the user.
package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"aniweek/internal/anime"
)

// ErrInvalidFormat reports a document that is not a valid collection export.
// Malformed JSON and structurally wrong documents (missing or non-array
// animeList) are deliberately indistinguishable to the caller.
var ErrInvalidFormat = errors.New("invalid backup format")

// ExportDocument produces the pretty-printed snapshot envelope for download.
func ExportDocument(entries []anime.Entry) ([]byte, error) {
	snapshot := anime.NewSnapshot(entries, time.Now())
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return append(data, '\n'), nil
}

// ExportFilename returns the dated download name for an export produced at t.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("animeweek_backup_%s.json", t.Format("2006-01-02"))
}

// ImportDocument parses an uploaded export. The document must carry an
// array-typed animeList field; anything else fails with ErrInvalidFormat.
// There is no partial recovery.
func ImportDocument(data []byte) ([]anime.Entry, error) {
	var envelope struct {
		AnimeList json.RawMessage `json:"animeList"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	raw := bytes.TrimSpace(envelope.AnimeList)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w: animeList is missing or not a list", ErrInvalidFormat)
	}

	var entries []anime.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if entries == nil {
		entries = []anime.Entry{}
	}
	return entries, nil
}
