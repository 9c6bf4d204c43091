package sim

import (
	"testing"

	"github.com/me/gosched/pkg/model"
)

func TestRoundRobinQuantum(t *testing.T) {
	jobs := makeJobs(t, jobSpec{0, 5, 0}, jobSpec{0, 3, 0})
	res, err := RunRoundRobin(jobs, 2)
	if err != nil {
		t.Fatal(err)
	}
	wantSlices(t, res.Timeline,
		model.ExecutionSlice{PID: 1, Start: 0, End: 2},
		model.ExecutionSlice{PID: 2, Start: 2, End: 4},
		model.ExecutionSlice{PID: 1, Start: 4, End: 6},
		model.ExecutionSlice{PID: 2, Start: 6, End: 7},
		model.ExecutionSlice{PID: 1, Start: 7, End: 8},
	)
}

func TestRoundRobinInvalidQuantum(t *testing.T) {
	jobs := makeJobs(t, jobSpec{0, 5, 0})
	for _, q := range []int{0, -1} {
		_, err := RunRoundRobin(jobs, q)
		if !model.IsCode(err, model.ErrValidation) {
			t.Errorf("quantum %d: err = %v, want VALIDATION_ERROR", q, err)
		}
	}
}

// A job arriving during a slice is enqueued ahead of the preempted job, even
// when both events land on the same instant.
func TestRoundRobinArrivalPrecedesRequeue(t *testing.T) {
	jobs := makeJobs(t, jobSpec{0, 4, 0}, jobSpec{2, 2, 0})
	res, err := RunRoundRobin(jobs, 2)
	if err != nil {
		t.Fatal(err)
	}
	// pid 2 arrives exactly when pid 1's first quantum expires and runs next.
	wantSlices(t, res.Timeline,
		model.ExecutionSlice{PID: 1, Start: 0, End: 2},
		model.ExecutionSlice{PID: 2, Start: 2, End: 4},
		model.ExecutionSlice{PID: 1, Start: 4, End: 6},
	)
}

// Consecutive dispatches of the same job stay separate slices.
func TestRoundRobinNoSliceMerging(t *testing.T) {
	jobs := makeJobs(t, jobSpec{0, 5, 0})
	res, err := RunRoundRobin(jobs, 2)
	if err != nil {
		t.Fatal(err)
	}
	wantSlices(t, res.Timeline,
		model.ExecutionSlice{PID: 1, Start: 0, End: 2},
		model.ExecutionSlice{PID: 1, Start: 2, End: 4},
		model.ExecutionSlice{PID: 1, Start: 4, End: 5},
	)
}

func TestRoundRobinIdleGap(t *testing.T) {
	jobs := makeJobs(t, jobSpec{0, 2, 0}, jobSpec{7, 3, 0})
	res, err := RunRoundRobin(jobs, 4)
	if err != nil {
		t.Fatal(err)
	}
	wantSlices(t, res.Timeline,
		model.ExecutionSlice{PID: 1, Start: 0, End: 2},
		model.ExecutionSlice{PID: 2, Start: 7, End: 10},
	)
}
