// Package sim implements the scheduling-decision engine: the four
// uniprocessor disciplines, the timeline bookkeeping that turns scheduling
// decisions into execution slices, and the derivation of per-job metrics.
//
// The engine is a pure computation. Every run operates on a private copy of
// the job set, performs no I/O, and is guaranteed to terminate: each
// non-idle step strictly decreases the total remaining work, and idle steps
// only occur before the last arrival.
package sim

import (
	"sort"

	"github.com/me/gosched/pkg/model"
)

// Policy selects which job occupies the processor at each instant and turns
// those decisions into a timeline plus final job states.
type Policy interface {
	Name() model.PolicyName
	Run(jobs []model.Job) (*model.RunResult, error)
}

// New returns the policy implementation for name. quantum is only consulted
// for Round-Robin and is validated at run time.
func New(name model.PolicyName, quantum int) (Policy, error) {
	switch name {
	case model.PolicyFCFS:
		return fcfs{}, nil
	case model.PolicySJF:
		return newSJF(), nil
	case model.PolicyPriority:
		return newPriority(), nil
	case model.PolicyRoundRobin:
		return roundRobin{quantum: quantum}, nil
	}
	_, err := model.ParsePolicy(string(name))
	return nil, err
}

// Run executes a single policy against jobs.
func Run(name model.PolicyName, jobs []model.Job, quantum int) (*model.RunResult, error) {
	p, err := New(name, quantum)
	if err != nil {
		return nil, err
	}
	return p.Run(jobs)
}

// RunFCFS executes First-Come-First-Served against jobs.
func RunFCFS(jobs []model.Job) (*model.RunResult, error) {
	return fcfs{}.Run(jobs)
}

// RunSJF executes preemptive Shortest-Job-First against jobs.
func RunSJF(jobs []model.Job) (*model.RunResult, error) {
	return newSJF().Run(jobs)
}

// RunPriority executes preemptive fixed-priority scheduling against jobs.
func RunPriority(jobs []model.Job) (*model.RunResult, error) {
	return newPriority().Run(jobs)
}

// RunRoundRobin executes Round-Robin with the given quantum against jobs.
func RunRoundRobin(jobs []model.Job, quantum int) (*model.RunResult, error) {
	return roundRobin{quantum: quantum}.Run(jobs)
}

// prepare clones the job set with reset simulation state, or reports
// EMPTY_INPUT before any clock advances.
func prepare(jobs []model.Job) ([]model.Job, error) {
	if len(jobs) == 0 {
		return nil, model.NewEmptyInputError()
	}
	return model.CloneJobs(jobs), nil
}

// sortByArrival stable-sorts procs by arrival time ascending. Registration
// order (ascending pid) is preserved on ties because the input is in
// registration order and the sort is stable.
func sortByArrival(procs []model.Job) {
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].ArrivalTime < procs[j].ArrivalTime
	})
}

// nextArrival returns the earliest arrival time strictly after t among jobs
// that are not completed, or -1 if there is none. Used to coalesce idle
// periods and to bound preemptive dispatch runs.
func nextArrival(procs []model.Job, t int) int {
	next := -1
	for i := range procs {
		if procs[i].Completed || procs[i].ArrivalTime <= t {
			continue
		}
		if next == -1 || procs[i].ArrivalTime < next {
			next = procs[i].ArrivalTime
		}
	}
	return next
}

// finish assembles the RunResult: jobs reordered by pid, metrics derived.
func finish(name model.PolicyName, quantum int, procs []model.Job, tl model.Timeline) (*model.RunResult, error) {
	sort.Slice(procs, func(i, j int) bool { return procs[i].PID < procs[j].PID })
	metrics, avgs, err := ComputeMetrics(procs)
	if err != nil {
		return nil, err
	}
	return &model.RunResult{
		Policy:   name,
		Quantum:  quantum,
		Timeline: tl,
		Jobs:     procs,
		Metrics:  metrics,
		Averages: avgs,
	}, nil
}
