// Package search coalesces rapid keystrokes into a single metadata lookup.
package search

import (
	"context"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"aniweek/internal/anilist"
	"aniweek/internal/config"
	"aniweek/internal/logging"
)

const minQueryLength = 2

// Searcher is the lookup the debouncer drives, satisfied by anilist.Client.
type Searcher interface {
	Search(ctx context.Context, query string) []anilist.Media
}

// DeliverFunc receives the results for the query that survived debouncing.
type DeliverFunc func(query string, results []anilist.Media)

// Debouncer delays lookups until typing pauses. Each Query call restarts
// the timer and advances a generation counter; results from a superseded
// lookup are discarded so the delivered results always match the latest
// query.
type Debouncer struct {
	mu         sync.Mutex
	searcher   Searcher
	deliver    DeliverFunc
	logger     *slog.Logger
	delay      time.Duration
	timer      *time.Timer
	generation uint64
	pending    *pendingLookup
	closed     bool
	wg         sync.WaitGroup

	// deliverMu serializes deliveries and is held across the staleness
	// check, so a newer query's clear can never be overtaken by an older
	// lookup's results.
	deliverMu sync.Mutex
}

type pendingLookup struct {
	ctx   context.Context
	gen   uint64
	query string
}

// NewDebouncer builds a debouncer with the configured delay.
func NewDebouncer(cfg *config.Config, searcher Searcher, deliver DeliverFunc, logger *slog.Logger) *Debouncer {
	if logger == nil {
		logger = logging.NewNop()
	}
	delay := 500 * time.Millisecond
	if cfg != nil && cfg.Search.DebounceMS > 0 {
		delay = time.Duration(cfg.Search.DebounceMS) * time.Millisecond
	}
	return &Debouncer{
		searcher: searcher,
		deliver:  deliver,
		logger:   logger.With(logging.String(logging.FieldComponent, "search")),
		delay:    delay,
	}
}

// Query schedules a lookup for the given text, superseding any pending one.
// Queries shorter than two characters clear the results immediately and
// never hit the network.
func (d *Debouncer) Query(ctx context.Context, query string) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.generation++
	gen := d.generation
	d.cancelScheduledLocked()

	if utf8.RuneCountInString(query) < minQueryLength {
		d.mu.Unlock()
		d.deliverMu.Lock()
		d.deliver(query, nil)
		d.deliverMu.Unlock()
		return
	}

	p := &pendingLookup{ctx: ctx, gen: gen, query: query}
	d.pending = p
	d.timer = time.AfterFunc(d.delay, func() {
		d.run(p)
	})
	d.wg.Add(1)
	d.mu.Unlock()
}

// cancelScheduledLocked stops a not-yet-fired lookup. Stop returning true
// means the callback will never run, so its pending Done falls to us.
func (d *Debouncer) cancelScheduledLocked() {
	if d.timer == nil {
		return
	}
	if d.timer.Stop() {
		d.wg.Done()
	}
	d.timer = nil
	d.pending = nil
}

func (d *Debouncer) run(p *pendingLookup) {
	defer d.wg.Done()

	d.mu.Lock()
	if d.pending == p {
		d.pending = nil
		d.timer = nil
	}
	stale := d.closed || p.gen != d.generation
	d.mu.Unlock()
	if stale {
		return
	}

	results := d.searcher.Search(p.ctx, p.query)

	d.deliverMu.Lock()
	defer d.deliverMu.Unlock()
	d.mu.Lock()
	stale = d.closed || p.gen != d.generation
	d.mu.Unlock()
	if stale {
		d.logger.Debug("discarding stale search results", logging.String("query", p.query))
		return
	}
	d.deliver(p.query, results)
}

// Flush fires any scheduled lookup immediately and waits for deliveries
// to finish. Interactive sessions call it on end of input so the last
// typed query still resolves.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	p := d.pending
	fire := d.timer != nil && d.timer.Stop()
	d.timer = nil
	d.pending = nil
	d.mu.Unlock()

	if fire && p != nil {
		// The callback will never run for a stopped timer, so its Done
		// is balanced by running the lookup here.
		d.run(p)
	}
	d.wg.Wait()
}

// Close cancels any pending lookup and waits for in-flight ones to settle.
func (d *Debouncer) Close() {
	d.mu.Lock()
	d.closed = true
	d.cancelScheduledLocked()
	d.mu.Unlock()
	d.wg.Wait()
}
