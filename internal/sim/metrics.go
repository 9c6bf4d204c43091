package sim

import (
	"fmt"

	"github.com/me/gosched/pkg/model"
)

// ComputeMetrics derives per-job turnaround and waiting times plus their
// arithmetic means from a finished run. It requires every job to be
// completed; calling it mid-run is an error, not an approximation.
func ComputeMetrics(procs []model.Job) ([]model.JobMetrics, model.Averages, error) {
	if len(procs) == 0 {
		return nil, model.Averages{}, model.NewEmptyInputError()
	}

	metrics := make([]model.JobMetrics, 0, len(procs))
	var totalWait, totalTurnaround int
	for i := range procs {
		j := &procs[i]
		if !j.Completed {
			return nil, model.Averages{}, &model.APIError{
				Code:    model.ErrInternal,
				Message: fmt.Sprintf("job %d has not completed; metrics are only defined for a finished run", j.PID),
			}
		}
		turnaround := j.CompletionTime - j.ArrivalTime
		waiting := turnaround - j.BurstTime
		metrics = append(metrics, model.JobMetrics{
			PID:            j.PID,
			ArrivalTime:    j.ArrivalTime,
			BurstTime:      j.BurstTime,
			Priority:       j.Priority,
			CompletionTime: j.CompletionTime,
			TurnaroundTime: turnaround,
			WaitingTime:    waiting,
		})
		totalWait += waiting
		totalTurnaround += turnaround
	}

	n := float64(len(procs))
	avgs := model.Averages{
		WaitingTime:    float64(totalWait) / n,
		TurnaroundTime: float64(totalTurnaround) / n,
	}
	return metrics, avgs, nil
}
