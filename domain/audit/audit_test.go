package audit

import "testing"

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		events   []Event
		expected Summary
	}{
		{"empty", nil, Summary{}},
		{
			"mixed outcomes",
			[]Event{
				{Outcome: OutcomeOK},
				{Outcome: OutcomeError},
				{Outcome: OutcomeNotFound},
				{Outcome: OutcomeOK},
			},
			Summary{Total: 4, Errors: 1, NotFound: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.events)
			if got != tt.expected {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}
