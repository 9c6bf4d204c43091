package sim

import (
	"fmt"

	"github.com/me/gosched/pkg/model"
)

// roundRobin grants each dispatched job at most quantum contiguous ticks.
// The working copy is stable-sorted by arrival time to fix the order in
// which simultaneous arrivals are first enqueued; thereafter a FIFO queue of
// indices drives dispatch. Jobs that arrive during a slice are enqueued
// before the preempted job is re-enqueued, so an arrival at the same instant
// as a requeue always precedes the requeue.
type roundRobin struct {
	quantum int
}

func (roundRobin) Name() model.PolicyName { return model.PolicyRoundRobin }

func (r roundRobin) Run(jobs []model.Job) (*model.RunResult, error) {
	if r.quantum <= 0 {
		return nil, model.NewValidationError(
			fmt.Sprintf("quantum must be a positive integer, got %d", r.quantum),
			model.FieldError{Field: "quantum", Message: "must be a positive integer"})
	}
	procs, err := prepare(jobs)
	if err != nil {
		return nil, err
	}
	sortByArrival(procs)

	var tl timelineBuilder
	queue := make([]int, 0, len(procs))
	queued := make([]bool, len(procs)) // set at first enqueue, never cleared
	clock := 0
	completed := 0

	enqueueArrived := func() {
		for i := range procs {
			if !queued[i] && !procs[i].Completed && procs[i].Arrived(clock) {
				queue = append(queue, i)
				queued[i] = true
			}
		}
	}

	for completed < len(procs) {
		enqueueArrived()
		if len(queue) == 0 {
			// Idle until the next arrival. Observably identical to advancing
			// tick by tick: no slice is emitted either way.
			clock = nextArrival(procs, clock)
			continue
		}

		idx := queue[0]
		queue = queue[1:]
		j := &procs[idx]

		slice := min(j.RemainingTime, r.quantum)
		// One slice per dispatch; never merged with a prior slice.
		tl.append(j.PID, clock, clock+slice)
		clock += slice
		j.RemainingTime -= slice

		// Jobs that arrived during the slice go in ahead of the requeue.
		enqueueArrived()

		if j.RemainingTime == 0 {
			j.Completed = true
			j.CompletionTime = clock
			completed++
		} else {
			queue = append(queue, idx)
		}
	}

	return finish(r.Name(), r.quantum, procs, tl.done())
}
