package sim

import "github.com/me/gosched/pkg/model"

// preemptive is the shared engine for the two preemptive disciplines. At
// each decision point it selects, among arrived and uncompleted jobs, the
// one with the minimum selection key, breaking ties by lowest pid.
//
// The reference semantics are unit-step: tick the clock by 1, re-select, and
// merge consecutive same-pid ticks into one slice. This implementation
// instead jumps the clock straight to the next decision-relevant instant
// (next arrival or completion of the selected job), which yields identical
// slice boundaries: between two such instants the selection cannot change,
// because every other job's key is constant while only the selected job's
// key may decrease. The equivalence is covered by a randomized test against
// a literal unit-step implementation.
type preemptive struct {
	name model.PolicyName
	key  func(j *model.Job) int
}

func newSJF() *preemptive {
	return &preemptive{
		name: model.PolicySJF,
		key:  func(j *model.Job) int { return j.RemainingTime },
	}
}

func newPriority() *preemptive {
	return &preemptive{
		name: model.PolicyPriority,
		key:  func(j *model.Job) int { return j.Priority },
	}
}

func (p *preemptive) Name() model.PolicyName { return p.name }

func (p *preemptive) Run(jobs []model.Job) (*model.RunResult, error) {
	procs, err := prepare(jobs)
	if err != nil {
		return nil, err
	}

	var tl timelineBuilder
	clock := 0
	completed := 0
	for completed < len(procs) {
		idx := p.selectJob(procs, clock)
		if idx < 0 {
			// Idle: no eligible job. Jump to the next arrival; there must
			// be one, or every job would already be completed.
			clock = nextArrival(procs, clock)
			continue
		}

		j := &procs[idx]
		run := j.RemainingTime
		if na := nextArrival(procs, clock); na >= 0 && na-clock < run {
			run = na - clock
		}

		tl.extend(j.PID, clock, clock+run)
		clock += run
		j.RemainingTime -= run

		if j.RemainingTime == 0 {
			j.Completed = true
			j.CompletionTime = clock
			completed++
			tl.closeSlice()
		}
	}

	return finish(p.name, 0, procs, tl.done())
}

// selectJob returns the index of the eligible job with the minimum key,
// lowest pid on ties, or -1 if no job is eligible at time t. procs is in
// registration order, so the linear scan realizes the pid tie-break.
func (p *preemptive) selectJob(procs []model.Job, t int) int {
	best := -1
	for i := range procs {
		if procs[i].Completed || !procs[i].Arrived(t) {
			continue
		}
		if best == -1 || p.key(&procs[i]) < p.key(&procs[best]) {
			best = i
		}
	}
	return best
}
