package sqlite

import (
	"context"

	"github.com/artpar/pagekit/domain/audit"
	"github.com/artpar/pagekit/ports"
)

// AuditStore implements ports.AuditStore using SQLite.
type AuditStore struct {
	db *DB
}

// NewAuditStore creates a new SQLite audit store.
func NewAuditStore(db *DB) *AuditStore {
	return &AuditStore{db: db}
}

// Record stores one invocation event.
func (s *AuditStore) Record(ctx context.Context, e audit.Event) error {
	// Store timestamp in UTC for consistent querying
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO invocation_events (id, action, outcome, error, updates, latency_ms, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Action, string(e.Outcome), e.Error, e.Updates, e.LatencyMs, e.Timestamp.UTC())
	return err
}

// Recent returns up to limit events, newest first.
func (s *AuditStore) Recent(ctx context.Context, limit int) ([]audit.Event, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, action, outcome, error, updates, latency_ms, timestamp
		FROM invocation_events
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var e audit.Event
		var outcome string
		if err := rows.Scan(&e.ID, &e.Action, &outcome, &e.Error, &e.Updates, &e.LatencyMs, &e.Timestamp); err != nil {
			return nil, err
		}
		e.Outcome = audit.Outcome(outcome)
		events = append(events, e)
	}
	return events, rows.Err()
}

// Ensure interface compliance.
var _ ports.AuditStore = (*AuditStore)(nil)
