package event_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	_ "modernc.org/sqlite"

	"nexus/internal/adapters/storage"
	store "nexus/internal/adapters/storage/event"
	domain "nexus/internal/domain/event"
	"nexus/internal/domain/meta"
)

var fixedNow = time.Date(2026, time.February, 1, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}

	s := store.NewSQLiteStore(db)
	seq := 0
	s.GenerateID = func() string {
		seq++
		return fmt.Sprintf("evt-%d", seq)
	}
	s.Now = func() time.Time { return fixedNow }
	return s
}

// TestCreateAndList_NestedCollections verifies agenda, speakers, and tags
// survive the JSON column round trip.
func TestCreateAndList_NestedCollections(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, domain.Event{
		Title:       "Intro to Go",
		Slug:        "intro-to-go",
		Description: "A hands-on workshop for beginners.",
		Body:        "## Bring a laptop\n\nWe start from zero.",
		Category:    domain.CategoryWorkshop,
		Date:        time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		StartTime:   "18:00",
		EndTime:     "20:00",
		Venue:       "Lab 204",
		Agenda: []domain.AgendaItem{
			{Time: "18:00", Activity: "Setup"},
			{Time: "18:30", Activity: "Live coding"},
		},
		Speakers: []domain.Speaker{{Name: "Dana Ruiz", Topic: "tooling"}},
		Capacity: 40,
		Order:    1,
		IsActive: true,
		Meta:     meta.Metadata{CreatedBy: "admin", Tags: []string{"go", "beginners"}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if diff := cmp.Diff(created, got[0]); diff != "" {
		t.Errorf("round trip mismatch (-created +listed):\n%s", diff)
	}
}

// TestUpdate_ClearsNestedCollections verifies an update can empty the agenda
// without leaving stale JSON behind.
func TestUpdate_ClearsNestedCollections(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, domain.Event{
		Title:    "Hack Night",
		Slug:     "hack-night",
		Category: domain.CategorySocial,
		Date:     time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		Agenda:   []domain.AgendaItem{{Time: "19:00", Activity: "Kickoff"}},
		Order:    1,
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated := created
	updated.Agenda = nil
	if _, err := s.Update(ctx, created.ID, updated); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got[0].Agenda) != 0 {
		t.Errorf("Agenda = %+v, want cleared", got[0].Agenda)
	}
}
