package sim

import (
	"testing"

	"github.com/me/gosched/pkg/model"
)

// jobSpec is the compact form used by test fixtures: arrival, burst, priority.
type jobSpec struct {
	arrival, burst, priority int
}

// makeJobs builds a job set in registration order with pids from 1.
func makeJobs(t *testing.T, specs ...jobSpec) []model.Job {
	t.Helper()
	jobs := make([]model.Job, 0, len(specs))
	for i, s := range specs {
		j := model.Job{
			PID:         i + 1,
			ArrivalTime: s.arrival,
			BurstTime:   s.burst,
			Priority:    s.priority,
		}
		j.ResetState()
		jobs = append(jobs, j)
	}
	return jobs
}

func wantSlices(t *testing.T, got model.Timeline, want ...model.ExecutionSlice) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("timeline = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slice[%d] = %v, want %v (full timeline %v)", i, got[i], want[i], got)
		}
	}
}

func TestRunUnknownPolicy(t *testing.T) {
	_, err := Run(model.PolicyName("lottery"), makeJobs(t, jobSpec{0, 1, 0}), 0)
	if !model.IsCode(err, model.ErrValidation) {
		t.Fatalf("err = %v, want VALIDATION_ERROR", err)
	}
}

func TestEmptyJobSet(t *testing.T) {
	for _, name := range model.AllPolicies() {
		_, err := Run(name, nil, 2)
		if !model.IsCode(err, model.ErrEmptyInput) {
			t.Errorf("%s: err = %v, want EMPTY_INPUT", name, err)
		}
	}
	if _, err := CompareAll(nil, 2); !model.IsCode(err, model.ErrEmptyInput) {
		t.Errorf("CompareAll: err = %v, want EMPTY_INPUT", err)
	}
}

func TestRunDoesNotMutateInput(t *testing.T) {
	jobs := makeJobs(t, jobSpec{0, 5, 1}, jobSpec{1, 3, 0})
	for _, name := range model.AllPolicies() {
		if _, err := Run(name, jobs, 2); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		for i, j := range jobs {
			if j.Completed || j.RemainingTime != j.BurstTime || j.CompletionTime != 0 {
				t.Fatalf("%s mutated caller's job set: jobs[%d] = %+v", name, i, j)
			}
		}
	}
}
