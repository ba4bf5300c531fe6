package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/kemono/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "history.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.BeginSession("classic", "mika")
	if err != nil {
		t.Fatalf("BeginSession() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	rec, err := store.Session(id)
	if err != nil {
		t.Fatalf("Session() failed: %v", err)
	}
	if rec == nil || rec.PackID != "classic" || rec.Player != "mika" {
		t.Errorf("Session() = %+v", rec)
	}
}

func TestSessionLifecycle(t *testing.T) {
	store := openTestStore(t)

	id, err := store.BeginSession("classic", "")
	if err != nil {
		t.Fatalf("BeginSession() failed: %v", err)
	}
	if len(id) != 36 || strings.Count(id, "-") != 4 {
		t.Errorf("session id %q is not a uuid", id)
	}

	rec, err := store.Session(id)
	if err != nil {
		t.Fatalf("Session() failed: %v", err)
	}
	if rec.StartedAt.IsZero() {
		t.Error("StartedAt should be set")
	}
	if !rec.EndedAt.IsZero() {
		t.Error("EndedAt should be zero while the session runs")
	}

	state := core.GameState{Collected: 7, Evolved: 2, Active: 9, HiddenUnlocked: true}
	if err := store.EndSession(id, state); err != nil {
		t.Fatalf("EndSession() failed: %v", err)
	}

	rec, err = store.Session(id)
	if err != nil {
		t.Fatalf("Session() failed: %v", err)
	}
	if rec.Collected != 7 || rec.Evolved != 2 || !rec.Unlocked {
		t.Errorf("summary = %+v", rec)
	}
	if rec.EndedAt.IsZero() {
		t.Error("EndedAt should be set after EndSession")
	}
}

func TestSessionUnknown(t *testing.T) {
	store := openTestStore(t)

	rec, err := store.Session("missing")
	if err != nil {
		t.Fatalf("Session() failed: %v", err)
	}
	if rec != nil {
		t.Errorf("Session(missing) = %+v, want nil", rec)
	}

	if err := store.EndSession("missing", core.GameState{}); err == nil {
		t.Error("EndSession on an unknown id should fail")
	}
}

func TestRecentSessionsFilter(t *testing.T) {
	store := openTestStore(t)

	for _, pack := range []string{"classic", "starter", "classic"} {
		if _, err := store.BeginSession(pack, ""); err != nil {
			t.Fatalf("BeginSession() failed: %v", err)
		}
	}

	all, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d sessions, want 3", len(all))
	}

	classic, err := store.RecentSessions("classic", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(classic) != 2 {
		t.Errorf("got %d classic sessions, want 2", len(classic))
	}
	for _, rec := range classic {
		if rec.PackID != "classic" {
			t.Errorf("unexpected pack %q", rec.PackID)
		}
	}

	limited, err := store.RecentSessions("", 1)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limit ignored: got %d", len(limited))
	}
}

func TestMilestones(t *testing.T) {
	store := openTestStore(t)

	a, _ := store.BeginSession("classic", "")
	b, _ := store.BeginSession("starter", "")

	events := []struct {
		session string
		ev      core.Event
	}{
		{a, core.Event{Kind: core.EventCollected, Creature: "Cat"}},
		{a, core.Event{Kind: core.EventEvolved, Creature: "Cat", Form: "cat-universe"}},
		{a, core.Event{Kind: core.EventUnlocked}},
		{b, core.Event{Kind: core.EventEvolved, Creature: "Owl", Form: "owl-sage"}},
		{a, core.Event{Kind: core.EventEvolved, Creature: "Phoenix", Form: "phoenix-flame"}},
		{a, core.Event{Kind: core.EventEvolved, Creature: "Cat", Form: "cat-universe"}},
	}
	for _, e := range events {
		if err := store.RecordMilestone(e.session, e.ev); err != nil {
			t.Fatalf("RecordMilestone() failed: %v", err)
		}
	}

	recent, err := store.RecentMilestones("classic", 10)
	if err != nil {
		t.Fatalf("RecentMilestones() failed: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("got %d classic milestones, want 5", len(recent))
	}
	// Newest first
	if recent[0].Creature != "Cat" || recent[0].Kind != core.EventEvolved {
		t.Errorf("recent[0] = %+v", recent[0])
	}
	if recent[4].Kind != core.EventCollected || recent[4].PackID != "classic" {
		t.Errorf("recent[4] = %+v", recent[4])
	}

	forms, err := store.DiscoveredForms("classic")
	if err != nil {
		t.Fatalf("DiscoveredForms() failed: %v", err)
	}
	if forms["cat-universe"] != 2 || forms["phoenix-flame"] != 1 || len(forms) != 2 {
		t.Errorf("DiscoveredForms() = %v", forms)
	}
}

func TestAllPackStats(t *testing.T) {
	store := openTestStore(t)

	a, _ := store.BeginSession("classic", "")
	b, _ := store.BeginSession("classic", "")
	c, _ := store.BeginSession("starter", "")

	store.EndSession(a, core.GameState{Collected: 3, Evolved: 1})
	store.EndSession(b, core.GameState{Collected: 7, Evolved: 2, HiddenUnlocked: true})
	store.EndSession(c, core.GameState{Collected: 2})

	stats, err := store.AllPackStats()
	if err != nil {
		t.Fatalf("AllPackStats() failed: %v", err)
	}

	classic := stats["classic"]
	if classic == nil {
		t.Fatal("missing classic stats")
	}
	if classic.Sessions != 2 || classic.BestCollected != 7 || classic.Evolutions != 3 || classic.Unlocks != 1 {
		t.Errorf("classic stats = %+v", classic)
	}
	if classic.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	if s := stats["starter"]; s == nil || s.Sessions != 1 || s.Unlocks != 0 {
		t.Errorf("starter stats = %+v", s)
	}
}

func TestClearPack(t *testing.T) {
	store := openTestStore(t)

	a, _ := store.BeginSession("classic", "")
	store.RecordMilestone(a, core.Event{Kind: core.EventCollected, Creature: "Dog"})
	b, _ := store.BeginSession("starter", "")
	store.RecordMilestone(b, core.Event{Kind: core.EventCollected, Creature: "Owl"})

	if err := store.ClearPack("classic"); err != nil {
		t.Fatalf("ClearPack() failed: %v", err)
	}

	if recs, _ := store.RecentSessions("classic", 10); len(recs) != 0 {
		t.Errorf("classic sessions survived: %v", recs)
	}
	if ms, _ := store.RecentMilestones("", 10); len(ms) != 1 || ms[0].Creature != "Owl" {
		t.Errorf("milestones after clear = %v", ms)
	}
}
