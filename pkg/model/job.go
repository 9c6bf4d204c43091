package model

// Job is a single simulated process. PID, arrival, burst, and priority are
// fixed at registration; the remaining fields are simulation state, reset
// from the static attributes before every policy run.
type Job struct {
	PID         int `json:"pid"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	// Priority of the job; a lower number means more urgent.
	Priority int `json:"priority"`

	RemainingTime  int  `json:"remaining_time"`
	Completed      bool `json:"completed"`
	CompletionTime int  `json:"completion_time"`
}

// ResetState restores the simulation-mutable fields from the static
// attributes. Called on the working copy at the start of every run.
func (j *Job) ResetState() {
	j.RemainingTime = j.BurstTime
	j.Completed = false
	j.CompletionTime = 0
}

// Arrived reports whether the job has arrived by time t.
func (j *Job) Arrived(t int) bool {
	return j.ArrivalTime <= t
}

// CloneJobs returns an independent copy of jobs with freshly reset
// simulation state. Policy runs operate on clones so successive runs never
// observe each other's mutations.
func CloneJobs(jobs []Job) []Job {
	out := make([]Job, len(jobs))
	copy(out, jobs)
	for i := range out {
		out[i].ResetState()
	}
	return out
}
