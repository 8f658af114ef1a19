package clock

import (
	"testing"
	"time"
)

func TestFakeClock(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	f := NewFake(start)

	if !f.Now().Equal(start) {
		t.Errorf("Now() = %v, want %v", f.Now(), start)
	}

	f.Advance(90 * time.Second)
	if !f.Now().Equal(start.Add(90 * time.Second)) {
		t.Errorf("Now() after Advance = %v, want %v", f.Now(), start.Add(90*time.Second))
	}

	later := start.Add(time.Hour)
	f.Set(later)
	if !f.Now().Equal(later) {
		t.Errorf("Now() after Set = %v, want %v", f.Now(), later)
	}
}

func TestRealClock(t *testing.T) {
	before := time.Now()
	got := Real{}.Now()
	after := time.Now()
	if got.Before(before) || got.After(after) {
		t.Errorf("Real.Now() = %v outside [%v, %v]", got, before, after)
	}
}
