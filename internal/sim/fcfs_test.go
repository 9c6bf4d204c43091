package sim

import (
	"testing"

	"github.com/me/gosched/pkg/model"
)

func TestFCFSDeterminism(t *testing.T) {
	jobs := makeJobs(t, jobSpec{0, 5, 0}, jobSpec{1, 3, 0})
	res, err := RunFCFS(jobs)
	if err != nil {
		t.Fatal(err)
	}
	wantSlices(t, res.Timeline,
		model.ExecutionSlice{PID: 1, Start: 0, End: 5},
		model.ExecutionSlice{PID: 2, Start: 5, End: 8},
	)
	if got := res.Metrics[0].WaitingTime; got != 0 {
		t.Errorf("waiting[pid 1] = %d, want 0", got)
	}
	if got := res.Metrics[1].WaitingTime; got != 4 {
		t.Errorf("waiting[pid 2] = %d, want 4", got)
	}
}

func TestFCFSIdleGap(t *testing.T) {
	jobs := makeJobs(t, jobSpec{0, 2, 0}, jobSpec{10, 1, 0})
	res, err := RunFCFS(jobs)
	if err != nil {
		t.Fatal(err)
	}
	wantSlices(t, res.Timeline,
		model.ExecutionSlice{PID: 1, Start: 0, End: 2},
		model.ExecutionSlice{PID: 2, Start: 10, End: 11},
	)
	if got := res.Timeline.IdleTime(); got != 8 {
		t.Errorf("idle time = %d, want 8", got)
	}
	if got := res.Metrics[1].WaitingTime; got != 0 {
		t.Errorf("waiting[pid 2] = %d, want 0 (arrived into an idle processor)", got)
	}
}

// Jobs registered in one order but arriving in another run in arrival order,
// with registration order breaking arrival ties.
func TestFCFSArrivalTieKeepsRegistrationOrder(t *testing.T) {
	jobs := makeJobs(t, jobSpec{3, 2, 0}, jobSpec{0, 2, 0}, jobSpec{0, 1, 0})
	res, err := RunFCFS(jobs)
	if err != nil {
		t.Fatal(err)
	}
	wantSlices(t, res.Timeline,
		model.ExecutionSlice{PID: 2, Start: 0, End: 2},
		model.ExecutionSlice{PID: 3, Start: 2, End: 3},
		model.ExecutionSlice{PID: 1, Start: 3, End: 5},
	)
}
