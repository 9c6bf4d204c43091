package workload

import (
	"testing"

	"github.com/me/gosched/pkg/model"
)

const sampleYAML = `
name: mixed-batch
quantum: 3
jobs:
  - {arrival: 0, burst: 8, priority: 2}
  - {arrival: 1, burst: 4, priority: 1}
  - arrival: 2
    burst: 9
    priority: 3
`

func TestParse(t *testing.T) {
	w, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	if w.Name != "mixed-batch" || w.Quantum != 3 {
		t.Errorf("header = %q/%d, want mixed-batch/3", w.Name, w.Quantum)
	}
	if len(w.Jobs) != 3 {
		t.Fatalf("got %d jobs, want 3", len(w.Jobs))
	}
	if w.Jobs[2] != (Job{Arrival: 2, Burst: 9, Priority: 3}) {
		t.Errorf("jobs[2] = %+v", w.Jobs[2])
	}
}

func TestParseRejectsEmptyJobs(t *testing.T) {
	_, err := Parse([]byte("name: empty\nquantum: 2\n"))
	if !model.IsCode(err, model.ErrEmptyInput) {
		t.Fatalf("err = %v, want EMPTY_INPUT", err)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("jobs: [}")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestRegister(t *testing.T) {
	w, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	r, err := w.Register(10)
	if err != nil {
		t.Fatal(err)
	}
	jobs := r.Jobs()
	if len(jobs) != 3 || jobs[0].PID != 1 || jobs[2].PID != 3 {
		t.Fatalf("registered jobs = %+v", jobs)
	}
}

func TestRegisterPropagatesValidation(t *testing.T) {
	w := &Workload{Jobs: []Job{{Arrival: 0, Burst: 0, Priority: 0}}}
	_, err := w.Register(10)
	if !model.IsCode(err, model.ErrValidation) {
		t.Fatalf("err = %v, want VALIDATION_ERROR", err)
	}
}
