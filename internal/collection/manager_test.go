package collection

import (
	"context"
	"errors"
	"testing"

	"aniweek/internal/anime"
	"aniweek/internal/logging"
	"aniweek/internal/testsupport"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	return NewManager(context.Background(), st, logging.NewNop())
}

func TestManagerAddPersists(t *testing.T) {
	ctx := context.Background()
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	mgr := NewManager(ctx, st, logging.NewNop())

	added, err := mgr.Add(ctx, anime.Entry{Title: "Frieren", Day: "Friday", Time: "23:00"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if added.ID == "" {
		t.Fatal("expected generated id")
	}

	entries := st.Load(ctx)
	if len(entries) != 1 || entries[0].Title != "Frieren" {
		t.Fatalf("persisted state wrong: %v", entries)
	}
}

func TestManagerMutationRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	mgr := newManager(t)
	if _, err := mgr.Add(ctx, anime.Entry{Title: "Frieren", Day: "Friday", Time: "23:00"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	err := mgr.Mutate(ctx, func(c Collection) (Collection, error) {
		return c, errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected mutation error")
	}
	if mgr.Snapshot().Len() != 1 {
		t.Fatalf("state changed after failed mutation: %d", mgr.Snapshot().Len())
	}
}

func TestManagerImportReplacesAndBackup(t *testing.T) {
	ctx := context.Background()
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	mgr := NewManager(ctx, st, logging.NewNop())

	if _, err := mgr.Add(ctx, anime.Entry{Title: "Old", Day: "Monday", Time: "09:00"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	imported := []anime.Entry{{ID: "x", Title: "New", Day: "Tuesday", Time: "10:00", Status: anime.StatusActive}}
	if err := mgr.Import(ctx, imported); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	entries := st.Load(ctx)
	if len(entries) != 1 || entries[0].Title != "New" {
		t.Fatalf("import not persisted: %v", entries)
	}
	backup, ok := st.RestoreFromBackup(ctx)
	if !ok || len(backup) != 1 || backup[0].Title != "New" {
		t.Fatalf("backup not written: ok=%v entries=%v", ok, backup)
	}
}

func TestManagerRestoreFromBackup(t *testing.T) {
	ctx := context.Background()
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	mgr := NewManager(ctx, st, logging.NewNop())

	if _, err := mgr.Add(ctx, anime.Entry{Title: "Frieren", Day: "Friday", Time: "23:00"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := mgr.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if mgr.Snapshot().Len() != 0 {
		t.Fatal("clear left entries in memory")
	}

	ok, err := mgr.RestoreFromBackup(ctx)
	if err != nil {
		t.Fatalf("RestoreFromBackup failed: %v", err)
	}
	if !ok {
		t.Fatal("expected backup to exist")
	}
	if got := mgr.Snapshot().Len(); got != 1 {
		t.Fatalf("expected 1 restored entry, got %d", got)
	}
}

func TestManagerRestoreWithoutBackup(t *testing.T) {
	ctx := context.Background()
	mgr := newManager(t)
	ok, err := mgr.RestoreFromBackup(ctx)
	if err != nil {
		t.Fatalf("RestoreFromBackup failed: %v", err)
	}
	if ok {
		t.Fatal("expected no backup")
	}
}

func TestManagerReloadsPersistedState(t *testing.T) {
	ctx := context.Background()
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	mgr := NewManager(ctx, st, logging.NewNop())
	if _, err := mgr.Add(ctx, anime.Entry{Title: "Frieren", Day: "Friday", Time: "23:00"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	fresh := NewManager(ctx, st, logging.NewNop())
	if got := fresh.Snapshot().Len(); got != 1 {
		t.Fatalf("fresh manager did not load persisted state: %d", got)
	}
}

func TestManagerCloseRefusesMutations(t *testing.T) {
	ctx := context.Background()
	mgr := newManager(t)

	if _, err := mgr.Add(ctx, anime.Entry{Title: "Frieren", Day: "Friday"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	mgr.Close()

	if _, err := mgr.Add(ctx, anime.Entry{Title: "Dandadan", Day: "Thursday"}); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if err := mgr.Clear(ctx); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed from Clear, got %v", err)
	}
	// Reads stay available for status and listing while draining.
	if got := mgr.Snapshot().Len(); got != 1 {
		t.Fatalf("expected snapshot to survive close, got %d entries", got)
	}
}
