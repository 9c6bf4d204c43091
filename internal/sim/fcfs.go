package sim

import "github.com/me/gosched/pkg/model"

// fcfs runs jobs to completion in arrival order with no preemption,
// producing exactly one slice per job.
type fcfs struct{}

func (fcfs) Name() model.PolicyName { return model.PolicyFCFS }

func (f fcfs) Run(jobs []model.Job) (*model.RunResult, error) {
	procs, err := prepare(jobs)
	if err != nil {
		return nil, err
	}
	sortByArrival(procs)

	var tl timelineBuilder
	clock := 0
	for i := range procs {
		j := &procs[i]
		if clock < j.ArrivalTime {
			clock = j.ArrivalTime // processor idles until the job arrives
		}
		tl.append(j.PID, clock, clock+j.BurstTime)
		clock += j.BurstTime
		j.RemainingTime = 0
		j.Completed = true
		j.CompletionTime = clock
	}

	return finish(f.Name(), 0, procs, tl.done())
}
