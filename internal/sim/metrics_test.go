package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/me/gosched/pkg/model"
)

func TestComputeMetricsEmpty(t *testing.T) {
	_, _, err := ComputeMetrics(nil)
	if !model.IsCode(err, model.ErrEmptyInput) {
		t.Fatalf("err = %v, want EMPTY_INPUT", err)
	}
}

func TestComputeMetricsMidRun(t *testing.T) {
	jobs := makeJobs(t, jobSpec{0, 5, 0})
	_, _, err := ComputeMetrics(jobs) // not completed
	if !model.IsCode(err, model.ErrInternal) {
		t.Fatalf("err = %v, want INTERNAL_ERROR", err)
	}
}

func TestComputeMetricsDerivation(t *testing.T) {
	jobs := makeJobs(t, jobSpec{2, 4, 0}, jobSpec{0, 3, 0})
	jobs[0].Completed = true
	jobs[0].CompletionTime = 9
	jobs[1].Completed = true
	jobs[1].CompletionTime = 3

	metrics, avgs, err := ComputeMetrics(jobs)
	if err != nil {
		t.Fatal(err)
	}
	if m := metrics[0]; m.TurnaroundTime != 7 || m.WaitingTime != 3 {
		t.Errorf("pid 1 metrics = %+v, want turnaround 7 waiting 3", m)
	}
	if m := metrics[1]; m.TurnaroundTime != 3 || m.WaitingTime != 0 {
		t.Errorf("pid 2 metrics = %+v, want turnaround 3 waiting 0", m)
	}
	if math.Abs(avgs.WaitingTime-1.5) > 1e-9 || math.Abs(avgs.TurnaroundTime-5.0) > 1e-9 {
		t.Errorf("averages = %+v, want waiting 1.5 turnaround 5.0", avgs)
	}
}

// Conservation and monotonicity hold for every policy on arbitrary job sets:
// total slice time equals total burst time, each job's completion equals the
// end of its last slice, waiting >= 0 and turnaround >= burst.
func TestConservationAndMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		jobs := randomJobs(rng)
		totalBurst := 0
		for _, j := range jobs {
			totalBurst += j.BurstTime
		}

		for _, name := range model.AllPolicies() {
			res, err := Run(name, jobs, 1+rng.Intn(4))
			if err != nil {
				t.Fatalf("trial %d %s: %v", trial, name, err)
			}
			if busy := res.Timeline.BusyTime(); busy != totalBurst {
				t.Fatalf("trial %d %s: busy time %d, want total burst %d (timeline %v)",
					trial, name, busy, totalBurst, res.Timeline)
			}
			for _, j := range res.Jobs {
				if end := res.Timeline.LastEndFor(j.PID); end != j.CompletionTime {
					t.Fatalf("trial %d %s: pid %d completion %d, last slice ends %d",
						trial, name, j.PID, j.CompletionTime, end)
				}
			}
			for _, m := range res.Metrics {
				if m.WaitingTime < 0 {
					t.Fatalf("trial %d %s: pid %d waiting %d < 0", trial, name, m.PID, m.WaitingTime)
				}
				if m.TurnaroundTime < m.BurstTime {
					t.Fatalf("trial %d %s: pid %d turnaround %d < burst %d",
						trial, name, m.PID, m.TurnaroundTime, m.BurstTime)
				}
			}
			for i := 1; i < len(res.Timeline); i++ {
				if res.Timeline[i].Start < res.Timeline[i-1].End {
					t.Fatalf("trial %d %s: overlapping slices %v", trial, name, res.Timeline)
				}
			}
		}
	}
}
