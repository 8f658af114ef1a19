// Package ports defines interfaces (contracts) between layers.
// These interfaces enable dependency injection and testability.
// Implementations live in adapters/.
package ports

import (
	"context"
	"time"

	"github.com/artpar/pagekit/domain/audit"
)

// -----------------------------------------------------------------------------
// Infrastructure Ports
// -----------------------------------------------------------------------------

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

// IDGenerator generates unique identifiers.
type IDGenerator interface {
	New() string
}

// -----------------------------------------------------------------------------
// Data Store Ports
// -----------------------------------------------------------------------------

// AuditStore persists invocation audit events.
type AuditStore interface {
	// Record stores one invocation event.
	Record(ctx context.Context, e audit.Event) error

	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]audit.Event, error)
}
