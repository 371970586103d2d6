// Package collection holds the in-memory anime collection and orchestrates
// its persistence. Collection is an immutable value: every mutation returns
// a new value, keeping state changes explicit and testable. Manager is the
// single writer that applies mutations and chains the save/backup contract.
package collection

import (
	"errors"
	"fmt"

	"aniweek/internal/anime"
)

// ErrNotFound reports a mutation against an entry id that does not exist.
var ErrNotFound = errors.New("entry not found")

// ErrDuplicateID reports an insert whose id is already taken.
var ErrDuplicateID = errors.New("duplicate entry id")

// Collection is the full set of tracked entries, in insertion order.
type Collection struct {
	entries []anime.Entry
}

// New builds a collection from entries.
func New(entries []anime.Entry) Collection {
	return Collection{entries: append([]anime.Entry(nil), entries...)}
}

// Entries returns a copy of all entries in order.
func (c Collection) Entries() []anime.Entry {
	return append([]anime.Entry(nil), c.entries...)
}

// Len reports the number of entries, archived included.
func (c Collection) Len() int {
	return len(c.entries)
}

// Find returns the entry with the given id.
func (c Collection) Find(id string) (anime.Entry, bool) {
	for _, entry := range c.entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return anime.Entry{}, false
}

// Add validates and appends a new entry.
func (c Collection) Add(entry anime.Entry) (Collection, error) {
	entry = entry.Normalize()
	if err := entry.Validate(); err != nil {
		return c, err
	}
	if entry.ID == "" {
		return c, fmt.Errorf("%w: empty id", anime.ErrValidation)
	}
	if _, exists := c.Find(entry.ID); exists {
		return c, fmt.Errorf("%w: %s", ErrDuplicateID, entry.ID)
	}
	next := c.Entries()
	return Collection{entries: append(next, entry)}, nil
}

// AddAll appends every entry, used by seasonal import after reconciliation.
func (c Collection) AddAll(entries []anime.Entry) (Collection, error) {
	next := c
	var err error
	for _, entry := range entries {
		next, err = next.Add(entry)
		if err != nil {
			return c, err
		}
	}
	return next, nil
}

// ToggleFavorite flips the favorite flag on one entry.
func (c Collection) ToggleFavorite(id string) (Collection, error) {
	return c.update(id, func(entry anime.Entry) anime.Entry {
		entry.Favorite = !entry.Favorite
		return entry
	})
}

// Archive moves an active entry out of the calendar and favorites views.
func (c Collection) Archive(id string) (Collection, error) {
	return c.update(id, func(entry anime.Entry) anime.Entry {
		entry.Status = anime.StatusArchived
		return entry
	})
}

// Restore returns an archived entry to active.
func (c Collection) Restore(id string) (Collection, error) {
	return c.update(id, func(entry anime.Entry) anime.Entry {
		entry.Status = anime.StatusActive
		return entry
	})
}

// Update replaces the editable fields of one entry. The id, status, and
// favorite flag are kept; everything else comes from the replacement.
func (c Collection) Update(id string, replacement anime.Entry) (Collection, error) {
	replacement = replacement.Normalize()
	if err := replacement.Validate(); err != nil {
		return c, err
	}
	return c.update(id, func(entry anime.Entry) anime.Entry {
		entry.Title = replacement.Title
		entry.Day = replacement.Day
		entry.Time = replacement.Time
		entry.Tags = replacement.Tags
		entry.CoverImage = replacement.CoverImage
		return entry
	})
}

// SetCover replaces the cover image of one entry.
func (c Collection) SetCover(id, cover string) (Collection, error) {
	return c.update(id, func(entry anime.Entry) anime.Entry {
		entry.CoverImage = cover
		return entry
	})
}

// Delete removes an entry entirely. This is the only hard removal.
func (c Collection) Delete(id string) (Collection, error) {
	for i, entry := range c.entries {
		if entry.ID != id {
			continue
		}
		next := make([]anime.Entry, 0, len(c.entries)-1)
		next = append(next, c.entries[:i]...)
		next = append(next, c.entries[i+1:]...)
		return Collection{entries: next}, nil
	}
	return c, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Replace swaps the whole collection, used by import and backup restore.
func (c Collection) Replace(entries []anime.Entry) Collection {
	return New(entries)
}

// ByDay lists active entries scheduled on the given weekday.
func (c Collection) ByDay(day string) []anime.Entry {
	var out []anime.Entry
	for _, entry := range c.entries {
		if entry.Status == anime.StatusActive && entry.Day == day {
			out = append(out, entry)
		}
	}
	return out
}

// Favorites lists active favorite entries.
func (c Collection) Favorites() []anime.Entry {
	var out []anime.Entry
	for _, entry := range c.entries {
		if entry.Status == anime.StatusActive && entry.Favorite {
			out = append(out, entry)
		}
	}
	return out
}

// Archived lists archived entries, retained for restore.
func (c Collection) Archived() []anime.Entry {
	var out []anime.Entry
	for _, entry := range c.entries {
		if entry.Status == anime.StatusArchived {
			out = append(out, entry)
		}
	}
	return out
}

func (c Collection) update(id string, fn func(anime.Entry) anime.Entry) (Collection, error) {
	for i, entry := range c.entries {
		if entry.ID != id {
			continue
		}
		next := c.Entries()
		next[i] = fn(entry)
		return Collection{entries: next}, nil
	}
	return c, fmt.Errorf("%w: %s", ErrNotFound, id)
}
