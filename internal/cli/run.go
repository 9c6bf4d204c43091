package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/me/gosched/internal/render"
	"github.com/me/gosched/pkg/model"
)

func newRunCmd() *cobra.Command {
	var quantum int
	var noGantt bool

	cmd := &cobra.Command{
		Use:   "run <session-id> <policy>",
		Short: "Run one scheduling policy against a session's jobs",
		Long: `Runs a single policy (fcfs, sjf, priority, rr) against the jobs
registered in the session and prints the schedule table and Gantt chart.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessID, policy := args[0], args[1]

			var body any
			if quantum > 0 {
				body = map[string]int{"quantum": quantum}
			}
			resp, err := client.Post("/api/v1/sessions/"+sessID+"/runs/"+policy, body)
			if err != nil {
				return fmt.Errorf("run %s: %w", policy, err)
			}

			var res model.RunResult
			if err := json.Unmarshal(resp.Data, &res); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}

			render.ResultTable(os.Stdout, &res)
			if !noGantt {
				fmt.Println()
				render.GanttChart(os.Stdout, res.Timeline)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&quantum, "quantum", 0, "Round-Robin quantum (default: server default)")
	cmd.Flags().BoolVar(&noGantt, "no-gantt", false, "Suppress the Gantt chart")
	return cmd
}

func newCompareCmd() *cobra.Command {
	var quantum int

	cmd := &cobra.Command{
		Use:   "compare <session-id>",
		Short: "Run all policies against a session's jobs and compare averages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var body any
			if quantum > 0 {
				body = map[string]int{"quantum": quantum}
			}
			resp, err := client.Post("/api/v1/sessions/"+args[0]+"/compare", body)
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}

			var cmp model.Comparison
			if err := json.Unmarshal(resp.Data, &cmp); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}

			render.ComparisonTable(os.Stdout, &cmp)
			fmt.Println()
			fmt.Println(render.AdvisoryNote)
			return nil
		},
	}
	cmd.Flags().IntVar(&quantum, "quantum", 0, "Round-Robin quantum (default: server default)")
	return cmd
}
