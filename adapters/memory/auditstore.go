// Package memory provides in-memory implementations of storage ports.
// Suitable for tests and for running without a database.
package memory

import (
	"context"
	"sync"

	"github.com/artpar/pagekit/domain/audit"
	"github.com/artpar/pagekit/ports"
)

// DefaultAuditCap bounds the in-memory event history.
const DefaultAuditCap = 1000

// AuditStore implements ports.AuditStore in memory.
// It keeps at most cap events, discarding the oldest.
type AuditStore struct {
	mu     sync.RWMutex
	events []audit.Event
	cap    int
}

// NewAuditStore creates an in-memory audit store with the default cap.
func NewAuditStore() *AuditStore {
	return &AuditStore{cap: DefaultAuditCap}
}

// NewAuditStoreWithCap creates an audit store bounded to capacity events.
func NewAuditStoreWithCap(capacity int) *AuditStore {
	if capacity <= 0 {
		capacity = DefaultAuditCap
	}
	return &AuditStore{cap: capacity}
}

// Record stores one invocation event.
func (s *AuditStore) Record(_ context.Context, e audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, e)
	if len(s.events) > s.cap {
		s.events = s.events[len(s.events)-s.cap:]
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (s *AuditStore) Recent(_ context.Context, limit int) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.events) {
		limit = len(s.events)
	}

	out := make([]audit.Event, 0, limit)
	for i := len(s.events) - 1; i >= len(s.events)-limit; i-- {
		out = append(out, s.events[i])
	}
	return out, nil
}

// Ensure interface compliance.
var _ ports.AuditStore = (*AuditStore)(nil)
