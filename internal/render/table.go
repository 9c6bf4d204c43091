// Package render turns run results into console output: schedule tables,
// comparison summaries, and ASCII Gantt charts. Rendering is presentation
// only; nothing here feeds back into the engine.
package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/me/gosched/pkg/model"
)

// AdvisoryNote is the comparison footer text. It is advisory output, not a
// computed recommendation.
const AdvisoryNote = "The policy with the lowest average waiting time is generally the most efficient for the given workload.\n" +
	"For throughput-oriented systems SJF is often optimal; for interactive systems Round Robin gives better response."

// ResultTable writes the per-job metrics of one run, ordered by pid, with
// average waiting/turnaround in the footer.
func ResultTable(w io.Writer, res *model.RunResult) {
	title := res.Policy.Title()
	if res.Policy == model.PolicyRoundRobin {
		title = fmt.Sprintf("%s, quantum=%d", title, res.Quantum)
	}
	fmt.Fprintf(w, "Results for %s\n", title)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Priority", "Completion", "Turnaround", "Waiting"})
	for _, m := range res.Metrics {
		table.Append([]string{
			fmt.Sprint(m.PID),
			fmt.Sprint(m.ArrivalTime),
			fmt.Sprint(m.BurstTime),
			fmt.Sprint(m.Priority),
			fmt.Sprint(m.CompletionTime),
			fmt.Sprint(m.TurnaroundTime),
			fmt.Sprint(m.WaitingTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", res.Averages.TurnaroundTime),
		fmt.Sprintf("Average\n%.2f", res.Averages.WaitingTime)})
	table.Render()
}

// ComparisonTable writes the side-by-side averages for every policy.
func ComparisonTable(w io.Writer, cmp *model.Comparison) {
	fmt.Fprintf(w, "Policy comparison (quantum=%d)\n", cmp.Quantum)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg Waiting", "Avg Turnaround"})
	for _, res := range cmp.Results {
		table.Append([]string{
			res.Policy.Title(),
			fmt.Sprintf("%.2f", res.Averages.WaitingTime),
			fmt.Sprintf("%.2f", res.Averages.TurnaroundTime),
		})
	}
	table.Render()
}
