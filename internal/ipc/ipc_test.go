package ipc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"aniweek/internal/anime"
	"aniweek/internal/daemon"
	"aniweek/internal/logging"
	"aniweek/internal/testsupport"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"Page":{"pageInfo":{"hasNextPage":false},"media":[]}}}`))
	}))
	t.Cleanup(server.Close)

	cfg := testsupport.NewConfig(t, testsupport.WithAniListBaseURL(server.URL))
	st := testsupport.MustOpenStore(t, cfg)
	d, err := daemon.New(ctx, cfg, st, logging.NewNop())
	if err != nil {
		t.Fatalf("daemon.New failed: %v", err)
	}
	if err := d.Start(ctx); err != nil {
		t.Fatalf("daemon.Start failed: %v", err)
	}
	t.Cleanup(d.Stop)

	socket := filepath.Join(t.TempDir(), "aniweek.sock")
	srv, err := NewServer(ctx, socket, d, logging.NewNop())
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	srv.Serve()
	t.Cleanup(srv.Close)

	client, err := Dial(socket)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestStatusOverSocket(t *testing.T) {
	client := newTestClient(t)
	status, err := client.Status()
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if !status.Running {
		t.Fatal("expected running daemon")
	}
	if status.PID == 0 || status.DatabasePath == "" {
		t.Fatalf("incomplete status: %+v", status)
	}
}

func TestEntryLifecycleOverSocket(t *testing.T) {
	client := newTestClient(t)

	added, err := client.Add(AddRequest{Entry: anime.Entry{Title: "Frieren", Day: "Friday", Time: "23:00"}})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if added.Entry.ID == "" {
		t.Fatal("expected assigned id")
	}

	fav, err := client.ToggleFavorite(added.Entry.ID)
	if err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}
	if !fav.Entry.Favorite {
		t.Fatal("favorite flag not set")
	}

	if _, err := client.Archive(added.Entry.ID); err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	archived, err := client.List(ListRequest{Archived: true})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(archived.Entries) != 1 {
		t.Fatalf("expected 1 archived entry, got %d", len(archived.Entries))
	}

	if _, err := client.Restore(added.Entry.ID); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	byDay, err := client.List(ListRequest{Day: "Friday"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(byDay.Entries) != 1 {
		t.Fatalf("expected 1 Friday entry, got %d", len(byDay.Entries))
	}

	if err := client.Delete(added.Entry.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	all, err := client.List(ListRequest{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all.Entries) != 0 {
		t.Fatalf("expected empty collection, got %d", len(all.Entries))
	}
}

func TestMutationErrorsCrossTheSocket(t *testing.T) {
	client := newTestClient(t)
	if _, err := client.ToggleFavorite("missing"); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestExportImportOverSocket(t *testing.T) {
	client := newTestClient(t)

	if _, err := client.Add(AddRequest{Entry: anime.Entry{Title: "Frieren", Day: "Friday", Time: "23:00"}}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	export, err := client.Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.HasPrefix(export.Filename, "animeweek_backup_") {
		t.Fatalf("unexpected filename: %q", export.Filename)
	}

	if _, err := client.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	imported, err := client.Import(export.Document)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if imported.Imported != 1 {
		t.Fatalf("expected 1 imported entry, got %d", imported.Imported)
	}

	if _, err := client.Import("{not json"); err == nil {
		t.Fatal("expected invalid document error")
	}
}

func TestThemesOverSocket(t *testing.T) {
	client := newTestClient(t)

	themes, err := client.Themes()
	if err != nil {
		t.Fatalf("Themes failed: %v", err)
	}
	if len(themes.Themes) != 6 || themes.Active != "orange-flame" {
		t.Fatalf("unexpected catalog: %d themes, active %q", len(themes.Themes), themes.Active)
	}

	set, err := client.SetTheme("royal-purple")
	if err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if set.Theme.ID != "royal-purple" {
		t.Fatalf("unexpected theme applied: %+v", set.Theme)
	}
	if _, err := client.SetTheme("neon-void"); err == nil {
		t.Fatal("expected unknown theme error")
	}
}

func TestSeasonPreviewOverSocket(t *testing.T) {
	client := newTestClient(t)
	preview, err := client.SeasonPreview()
	if err != nil {
		t.Fatalf("SeasonPreview failed: %v", err)
	}
	if preview.Season == "" || preview.Year == 0 {
		t.Fatalf("incomplete preview: %+v", preview)
	}
}
