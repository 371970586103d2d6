package covers

import (
	"context"
	"sync"
	"testing"

	"aniweek/internal/anilist"
	"aniweek/internal/anime"
	"aniweek/internal/collection"
	"aniweek/internal/logging"
	"aniweek/internal/testsupport"
)

type fakeFetcher struct {
	mu      sync.Mutex
	queries []string
	results map[string][]anilist.Media
}

func (f *fakeFetcher) Search(_ context.Context, query string) []anilist.Media {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	return f.results[query]
}

func media(romaji, large, extraLarge string) anilist.Media {
	return anilist.Media{
		Title:      anilist.Title{Romaji: romaji},
		CoverImage: anilist.CoverImage{Large: large, ExtraLarge: extraLarge},
	}
}

func newManager(t *testing.T, entries ...anime.Entry) *collection.Manager {
	t.Helper()
	ctx := context.Background()
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	mgr := collection.NewManager(ctx, st, logging.NewNop())
	for _, entry := range entries {
		if _, err := mgr.Add(ctx, entry); err != nil {
			t.Fatalf("seed entry: %v", err)
		}
	}
	return mgr
}

func TestUpgraderReplacesCovers(t *testing.T) {
	mgr := newManager(t,
		anime.Entry{ID: "a", Title: "Frieren", Day: "Friday", Time: "23:00", CoverImage: "old.jpg"},
	)
	fetcher := &fakeFetcher{results: map[string][]anilist.Media{
		"Frieren": {media("Frieren", "large.jpg", "xl.jpg")},
	}}

	res, err := NewUpgrader(fetcher, logging.NewNop(), WithPause(0)).Run(context.Background(), mgr)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Upgraded != 1 || res.Skipped != 0 || res.Failed != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	got, _ := mgr.Snapshot().Find("a")
	if got.CoverImage != "xl.jpg" {
		t.Fatalf("cover not upgraded: %q", got.CoverImage)
	}
}

func TestUpgraderPrefersExactTitleMatch(t *testing.T) {
	mgr := newManager(t,
		anime.Entry{ID: "a", Title: "Frieren", Day: "Friday", Time: "23:00"},
	)
	fetcher := &fakeFetcher{results: map[string][]anilist.Media{
		"Frieren": {
			media("Frieren Special", "wrong-large.jpg", "wrong.jpg"),
			media("frieren", "large.jpg", "right.jpg"),
		},
	}}

	if _, err := NewUpgrader(fetcher, logging.NewNop(), WithPause(0)).Run(context.Background(), mgr); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	got, _ := mgr.Snapshot().Find("a")
	if got.CoverImage != "right.jpg" {
		t.Fatalf("expected exact match cover, got %q", got.CoverImage)
	}
}

func TestUpgraderSkipsMissingAndCurrent(t *testing.T) {
	mgr := newManager(t,
		anime.Entry{ID: "a", Title: "Unknown Show", Day: "Monday", Time: "09:00"},
		anime.Entry{ID: "b", Title: "Frieren", Day: "Friday", Time: "23:00", CoverImage: "xl.jpg"},
	)
	fetcher := &fakeFetcher{results: map[string][]anilist.Media{
		"Frieren": {media("Frieren", "large.jpg", "xl.jpg")},
	}}

	res, err := NewUpgrader(fetcher, logging.NewNop(), WithPause(0)).Run(context.Background(), mgr)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Upgraded != 0 || res.Skipped != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestUpgraderIgnoresArchivedEntries(t *testing.T) {
	ctx := context.Background()
	mgr := newManager(t,
		anime.Entry{ID: "a", Title: "Frieren", Day: "Friday", Time: "23:00"},
	)
	if err := mgr.Archive(ctx, "a"); err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	fetcher := &fakeFetcher{results: map[string][]anilist.Media{
		"Frieren": {media("Frieren", "large.jpg", "xl.jpg")},
	}}

	res, err := NewUpgrader(fetcher, logging.NewNop(), WithPause(0)).Run(ctx, mgr)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(fetcher.queries) != 0 {
		t.Fatalf("archived entry was looked up: %v", fetcher.queries)
	}
	if res.Upgraded != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestUpgraderStopsOnCancel(t *testing.T) {
	mgr := newManager(t,
		anime.Entry{ID: "a", Title: "Frieren", Day: "Friday", Time: "23:00"},
		anime.Entry{ID: "b", Title: "Dandadan", Day: "Thursday", Time: "23:00"},
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := &fakeFetcher{}
	_, err := NewUpgrader(fetcher, logging.NewNop(), WithPause(0)).Run(ctx, mgr)
	if err == nil {
		t.Fatal("expected context error")
	}
	if len(fetcher.queries) != 0 {
		t.Fatalf("cancelled run still searched: %v", fetcher.queries)
	}
}
