package theme

import (
	"context"
	"errors"
	"sync"
	"testing"

	"aniweek/internal/logging"
	"aniweek/internal/testsupport"
)

type recordingNotifier struct {
	mu     sync.Mutex
	themes []string
}

func (r *recordingNotifier) ChangeIcon(themeID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes = append(r.themes, themeID)
}

func (r *recordingNotifier) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.themes...)
}

func newService(t *testing.T, opts ...testsupport.ConfigOption) (*Service, *recordingNotifier) {
	t.Helper()
	cfg := testsupport.NewConfig(t, opts...)
	st := testsupport.MustOpenStore(t, cfg)
	notifier := &recordingNotifier{}
	return NewService(cfg, st, notifier, logging.NewNop()), notifier
}

func TestCurrentDefaultsToOrangeFlame(t *testing.T) {
	svc, _ := newService(t)
	if got := svc.Current(context.Background()); got.ID != DefaultID {
		t.Fatalf("expected default theme, got %q", got.ID)
	}
}

func TestCurrentUsesConfiguredDefault(t *testing.T) {
	svc, _ := newService(t, testsupport.WithDefaultTheme("ocean-blue"))
	if got := svc.Current(context.Background()); got.ID != "ocean-blue" {
		t.Fatalf("configured default ignored, got %q", got.ID)
	}
}

func TestCurrentRejectsUnknownConfiguredDefault(t *testing.T) {
	svc, _ := newService(t, testsupport.WithDefaultTheme("neon-void"))
	if got := svc.Current(context.Background()); got.ID != DefaultID {
		t.Fatalf("expected built-in default for unknown configured theme, got %q", got.ID)
	}
}

func TestSavedSelectionBeatsConfiguredDefault(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, testsupport.WithDefaultTheme("ocean-blue"))
	if _, err := svc.Set(ctx, "royal-purple"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := svc.Current(ctx); got.ID != "royal-purple" {
		t.Fatalf("saved selection lost, got %q", got.ID)
	}
}

func TestSetPersistsAndNotifies(t *testing.T) {
	ctx := context.Background()
	svc, notifier := newService(t)

	set, err := svc.Set(ctx, "ocean-blue")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if set.Name != "Ocean Blue" {
		t.Fatalf("unexpected theme: %+v", set)
	}
	if got := svc.Current(ctx); got.ID != "ocean-blue" {
		t.Fatalf("selection not persisted: %q", got.ID)
	}
	if got := notifier.seen(); len(got) != 1 || got[0] != "ocean-blue" {
		t.Fatalf("shell not notified: %v", got)
	}
}

func TestSetRejectsUnknownTheme(t *testing.T) {
	svc, notifier := newService(t)
	if _, err := svc.Set(context.Background(), "neon-void"); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
	if got := notifier.seen(); len(got) != 0 {
		t.Fatalf("rejected change notified the shell: %v", got)
	}
}

func TestAllListsCatalogInOrder(t *testing.T) {
	ids := []string{"orange-flame", "sakura-pink", "ocean-blue", "cream-elegance", "royal-purple", "sunset-gold"}
	all := All()
	if len(all) != len(ids) {
		t.Fatalf("expected %d themes, got %d", len(ids), len(all))
	}
	for i, want := range ids {
		if all[i].ID != want {
			t.Fatalf("theme %d: expected %q, got %q", i, want, all[i].ID)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("missing"); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
}
