package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/artpar/pagekit/domain/audit"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}
	return db
}

func TestMigrateIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := db.Migrate(); err != nil {
		t.Errorf("second Migrate() error: %v", err)
	}
}

func TestAuditStoreRoundTrip(t *testing.T) {
	store := NewAuditStore(openTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	events := []audit.Event{
		{ID: "a", Action: "greet-action", Outcome: audit.OutcomeOK, Updates: 1, LatencyMs: 3, Timestamp: base},
		{ID: "b", Action: "greet-action", Outcome: audit.OutcomeError, Error: "boom", Timestamp: base.Add(time.Second)},
		{ID: "c", Action: "other", Outcome: audit.OutcomeNotFound, Timestamp: base.Add(2 * time.Second)},
	}
	for _, e := range events {
		if err := store.Record(ctx, e); err != nil {
			t.Fatalf("Record(%s) error: %v", e.ID, err)
		}
	}

	got, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent(2) returned %d events, want 2", len(got))
	}
	if got[0].ID != "c" || got[1].ID != "b" {
		t.Errorf("Recent() order = %s,%s; want c,b (newest first)", got[0].ID, got[1].ID)
	}
	if got[1].Error != "boom" || got[1].Outcome != audit.OutcomeError {
		t.Errorf("event b = %+v; error detail not preserved", got[1])
	}
}
