package model

import (
	"fmt"
	"testing"
)

func TestParsePolicy(t *testing.T) {
	for _, p := range AllPolicies() {
		got, err := ParsePolicy(p.String())
		if err != nil {
			t.Fatalf("ParsePolicy(%q): %v", p, err)
		}
		if got != p {
			t.Errorf("ParsePolicy(%q) = %q", p, got)
		}
	}

	if _, err := ParsePolicy("lottery"); !IsCode(err, ErrValidation) {
		t.Errorf("ParsePolicy(lottery) err = %v, want VALIDATION_ERROR", err)
	}
}

func TestTimelineAccounting(t *testing.T) {
	tl := Timeline{
		{PID: 1, Start: 2, End: 5},
		{PID: 2, Start: 5, End: 9},
		{PID: 1, Start: 11, End: 13},
	}
	if got := tl.End(); got != 13 {
		t.Errorf("End = %d, want 13", got)
	}
	if got := tl.BusyTime(); got != 9 {
		t.Errorf("BusyTime = %d, want 9", got)
	}
	// Leading gap of 2 plus the 9..11 hole.
	if got := tl.IdleTime(); got != 4 {
		t.Errorf("IdleTime = %d, want 4", got)
	}
	if got := tl.LastEndFor(1); got != 13 {
		t.Errorf("LastEndFor(1) = %d, want 13", got)
	}
	if got := tl.LastEndFor(3); got != -1 {
		t.Errorf("LastEndFor(3) = %d, want -1", got)
	}
}

func TestTimelineEmpty(t *testing.T) {
	var tl Timeline
	if tl.End() != 0 || tl.BusyTime() != 0 || tl.IdleTime() != 0 {
		t.Error("empty timeline must account to zero")
	}
}

func TestCloneJobsIndependence(t *testing.T) {
	src := []Job{{PID: 1, ArrivalTime: 0, BurstTime: 4, Priority: 2}}
	src[0].RemainingTime = 1
	src[0].Completed = true
	src[0].CompletionTime = 7

	clone := CloneJobs(src)
	if clone[0].RemainingTime != 4 || clone[0].Completed || clone[0].CompletionTime != 0 {
		t.Errorf("clone state not reset: %+v", clone[0])
	}

	clone[0].RemainingTime = 0
	if src[0].RemainingTime != 1 {
		t.Error("mutating the clone changed the source")
	}
}

func TestIsCodeUnwraps(t *testing.T) {
	err := fmt.Errorf("job 3: %w", NewValidationError("invalid job attributes"))
	if !IsCode(err, ErrValidation) {
		t.Error("IsCode must see through wrapping")
	}
	if IsCode(err, ErrEmptyInput) {
		t.Error("IsCode matched the wrong code")
	}
	if IsCode(nil, ErrValidation) {
		t.Error("IsCode(nil) must be false")
	}
}
