package model

// JobMetrics holds the derived per-job performance numbers for one run.
// Turnaround and waiting are derived from the completion time, never stored
// independently of it.
type JobMetrics struct {
	PID            int `json:"pid"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	CompletionTime int `json:"completion_time"`
	TurnaroundTime int `json:"turnaround_time"`
	WaitingTime    int `json:"waiting_time"`
}

// Averages holds the arithmetic means across all jobs in a run.
type Averages struct {
	WaitingTime    float64 `json:"waiting_time"`
	TurnaroundTime float64 `json:"turnaround_time"`
}

// RunResult is the complete outcome of a single policy run: the timeline,
// the final job states (ordered by pid), and the derived metrics.
type RunResult struct {
	Policy   PolicyName   `json:"policy"`
	Quantum  int          `json:"quantum,omitempty"`
	Timeline Timeline     `json:"timeline"`
	Jobs     []Job        `json:"jobs"`
	Metrics  []JobMetrics `json:"metrics"`
	Averages Averages     `json:"averages"`
}

// Comparison holds the results of running every policy against the same job
// set. Results preserve the fixed run order (FCFS, SJF, Priority, RR). The
// core reports the numbers side by side; it does not rank them.
type Comparison struct {
	Quantum int         `json:"quantum"`
	Results []RunResult `json:"results"`
}
