package anime

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle of a tracked entry.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// PlaceholderCover is used when an entry has no cover image of its own.
const PlaceholderCover = "https://placehold.co/230x345?text=No+Cover"

// Weekdays lists the canonical weekday names in calendar order.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

var weekdaySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Weekdays))
	for _, day := range Weekdays {
		set[day] = struct{}{}
	}
	return set
}()

// ValidDay reports whether day is one of the seven canonical weekday names.
func ValidDay(day string) bool {
	_, ok := weekdaySet[day]
	return ok
}

// Entry is one tracked show. The ID is assigned at creation and never changes.
type Entry struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Day        string   `json:"day"`
	Time       string   `json:"time"`
	Tags       []string `json:"tags"`
	CoverImage string   `json:"coverImage"`
	Favorite   bool     `json:"isFavorite"`
	Status     Status   `json:"status"`
}

// NewEntryID produces an opaque unique entry identifier.
func NewEntryID() string {
	fragment := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("anime_%d_%s", time.Now().UnixNano(), fragment)
}

// ErrValidation wraps all entry validation failures so callers can surface
// them as correctable user input rather than environmental faults.
var ErrValidation = errors.New("invalid entry")

// Validate checks the fields required before an entry may be persisted.
// It never mutates the entry.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if e.Day == "" {
		return fmt.Errorf("%w: day is required", ErrValidation)
	}
	if !ValidDay(e.Day) {
		return fmt.Errorf("%w: unknown day %q", ErrValidation, e.Day)
	}
	if e.Time != "" {
		if _, err := time.Parse("15:04", e.Time); err != nil {
			return fmt.Errorf("%w: time %q is not HH:MM", ErrValidation, e.Time)
		}
	}
	switch e.Status {
	case StatusActive, StatusArchived:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrValidation, e.Status)
	}
	return nil
}

// Cover returns the entry cover image, falling back to the placeholder.
func (e Entry) Cover() string {
	if strings.TrimSpace(e.CoverImage) == "" {
		return PlaceholderCover
	}
	return e.CoverImage
}

// Normalize trims title whitespace, deduplicates tags preserving insertion
// order, and defaults the status to active. It returns a new entry.
func (e Entry) Normalize() Entry {
	e.Title = strings.TrimSpace(e.Title)
	if e.Status == "" {
		e.Status = StatusActive
	}
	if len(e.Tags) > 0 {
		seen := make(map[string]struct{}, len(e.Tags))
		tags := make([]string, 0, len(e.Tags))
		for _, tag := range e.Tags {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
		e.Tags = tags
	}
	return e
}
