package model

// ExecutionSlice denotes uninterrupted occupancy of the processor by one job.
// End is always strictly greater than Start.
type ExecutionSlice struct {
	PID   int `json:"pid"`
	Start int `json:"start_time"`
	End   int `json:"end_time"`
}

// Duration returns the length of the slice in ticks.
func (s ExecutionSlice) Duration() int {
	return s.End - s.Start
}

// Timeline is the ordered sequence of execution slices produced by a policy
// run. Slices have non-decreasing, non-overlapping start times; gaps between
// consecutive slices are idle processor time and are never materialized as
// entries.
type Timeline []ExecutionSlice

// End returns the end time of the last slice, or 0 for an empty timeline.
func (t Timeline) End() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}

// BusyTime returns the sum of all slice durations. For a completed run this
// equals the sum of the jobs' burst times.
func (t Timeline) BusyTime() int {
	total := 0
	for _, s := range t {
		total += s.Duration()
	}
	return total
}

// IdleTime returns the total length of the gaps between consecutive slices.
// Idle time before the first slice is included; there is none after the last.
func (t Timeline) IdleTime() int {
	if len(t) == 0 {
		return 0
	}
	idle := t[0].Start
	for i := 1; i < len(t); i++ {
		idle += t[i].Start - t[i-1].End
	}
	return idle
}

// LastEndFor returns the end time of the last slice belonging to pid, or -1
// if the pid never ran.
func (t Timeline) LastEndFor(pid int) int {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].PID == pid {
			return t[i].End
		}
	}
	return -1
}
