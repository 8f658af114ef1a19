// Package audit defines the invocation audit trail.
// One event is recorded per action invocation: what ran, whether it
// succeeded, and how long it took. The trail is operational telemetry;
// the synchronization core itself keeps no state between invocations.
package audit

import "time"

// Outcome classifies how an invocation ended.
type Outcome string

const (
	// OutcomeOK means the handler completed and updates were returned.
	OutcomeOK Outcome = "ok"

	// OutcomeNotFound means no handler was registered for the action.
	OutcomeNotFound Outcome = "not_found"

	// OutcomeError means the handler failed or panicked.
	OutcomeError Outcome = "error"
)

// Event is one recorded invocation.
type Event struct {
	ID        string
	Action    string
	Outcome   Outcome
	Error     string
	Updates   int
	LatencyMs int64
	Timestamp time.Time
}

// Summary aggregates events for display.
type Summary struct {
	Total    int
	Errors   int
	NotFound int
}

// Summarize counts outcomes over a set of events.
// This is a pure function.
func Summarize(events []Event) Summary {
	var s Summary
	for _, e := range events {
		s.Total++
		switch e.Outcome {
		case OutcomeError:
			s.Errors++
		case OutcomeNotFound:
			s.NotFound++
		}
	}
	return s
}
