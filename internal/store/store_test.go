package store_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	_ "modernc.org/sqlite"

	"aniweek/internal/anime"
	"aniweek/internal/config"
	"aniweek/internal/testsupport"
)

func sampleEntries() []anime.Entry {
	return []anime.Entry{
		{ID: "anime_1", Title: "Frieren", Day: "Friday", Time: "23:00", Tags: []string{"Adventure", "Fantasy"}, Favorite: true, Status: anime.StatusActive},
		{ID: "anime_2", Title: "Dungeon Meshi", Day: "Thursday", Time: "22:30", Status: anime.StatusActive},
		{ID: "anime_3", Title: "Mushishi", Day: "Friday", Status: anime.StatusArchived},
	}
}

// writeRaw replaces a stored document with arbitrary bytes, bypassing the
// store, to simulate corruption.
func writeRaw(t *testing.T, cfg *config.Config, key, value string) {
	t.Helper()
	db, err := sql.Open("sqlite", cfg.DatabasePath())
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	defer db.Close()
	_, err = db.Exec(
		`INSERT INTO documents (key, value) VALUES (?, ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		t.Fatalf("write raw document: %v", err)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	entries := sampleEntries()
	if !st.Save(ctx, entries) {
		t.Fatal("Save reported failure")
	}

	loaded := st.Load(ctx)
	if len(loaded) != len(entries) {
		t.Fatalf("loaded %d entries, want %d", len(loaded), len(entries))
	}
	for i := range entries {
		if loaded[i].ID != entries[i].ID || loaded[i].Title != entries[i].Title {
			t.Fatalf("entry %d = %+v, want %+v", i, loaded[i], entries[i])
		}
	}
}

func TestLoadEmptyDatabaseReturnsEmpty(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	entries := st.Load(context.Background())
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", entries)
	}
}

func TestLoadCorruptPrimaryReturnsEmpty(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if !st.Save(ctx, sampleEntries()) {
		t.Fatal("Save reported failure")
	}
	writeRaw(t, cfg, "animeweek_data", "definitely{not json")

	entries := st.Load(ctx)
	if len(entries) != 0 {
		t.Fatalf("expected empty collection from corrupt primary, got %d entries", len(entries))
	}
}

func TestIdempotentSaveKeepsAnimeListEqual(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	entries := sampleEntries()
	if !st.Save(ctx, entries) || !st.Save(ctx, entries) {
		t.Fatal("Save reported failure")
	}

	first, _ := json.Marshal(st.Load(ctx))
	if !st.Save(ctx, entries) {
		t.Fatal("Save reported failure")
	}
	second, _ := json.Marshal(st.Load(ctx))
	if string(first) != string(second) {
		t.Fatalf("animeList changed across identical saves:\n%s\n%s", first, second)
	}
}

func TestBackupSurvivesPrimaryCorruption(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	entries := sampleEntries()
	if !st.Save(ctx, entries) {
		t.Fatal("Save reported failure")
	}
	if !st.Backup(ctx, entries) {
		t.Fatal("Backup reported failure")
	}

	writeRaw(t, cfg, "animeweek_data", "garbage")

	restored, ok := st.RestoreFromBackup(ctx)
	if !ok {
		t.Fatal("RestoreFromBackup reported absent backup")
	}
	if len(restored) != len(entries) {
		t.Fatalf("restored %d entries, want %d", len(restored), len(entries))
	}
	if restored[0].Title != "Frieren" {
		t.Fatalf("restored[0] = %+v", restored[0])
	}
}

func TestRestoreFromBackupAbsent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	if _, ok := st.RestoreFromBackup(context.Background()); ok {
		t.Fatal("expected absent backup")
	}
}

func TestRestoreFromBackupCorrupt(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if !st.Backup(ctx, sampleEntries()) {
		t.Fatal("Backup reported failure")
	}
	writeRaw(t, cfg, "animeweek_backup", "{\"animeList\": 12}")

	if _, ok := st.RestoreFromBackup(ctx); ok {
		t.Fatal("expected corrupt backup to report absent")
	}
}

func TestClearRemovesPrimaryOnly(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	entries := sampleEntries()
	st.Save(ctx, entries)
	st.Backup(ctx, entries)

	if !st.Clear(ctx) {
		t.Fatal("Clear reported failure")
	}
	if got := st.Load(ctx); len(got) != 0 {
		t.Fatalf("primary not cleared: %d entries remain", len(got))
	}
	if _, ok := st.RestoreFromBackup(ctx); !ok {
		t.Fatal("backup should be untouched by Clear")
	}
}

func TestStatsCountsExistingEntries(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	st.Save(ctx, sampleEntries())

	stats := st.Stats(ctx)
	if stats.Total != 3 {
		t.Fatalf("total = %d", stats.Total)
	}
	if stats.Favorites != 1 {
		t.Fatalf("favorites = %d", stats.Favorites)
	}
	if stats.ByDay["Friday"] != 2 || stats.ByDay["Thursday"] != 1 {
		t.Fatalf("byDay = %v", stats.ByDay)
	}
}

func TestThemePreferenceRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if got := st.ThemeID(ctx); got != "" {
		t.Fatalf("expected no saved theme, got %q", got)
	}
	if !st.SetThemeID(ctx, "ocean-blue") {
		t.Fatal("SetThemeID reported failure")
	}
	if got := st.ThemeID(ctx); got != "ocean-blue" {
		t.Fatalf("theme = %q", got)
	}
}
