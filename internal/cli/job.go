package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/gosched/pkg/model"
)

func newJobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Manage jobs in a session",
	}
	cmd.AddCommand(newJobAddCmd(), newJobListCmd())
	return cmd
}

func newJobAddCmd() *cobra.Command {
	var arrival, burst, priority int

	cmd := &cobra.Command{
		Use:   "add <session-id>",
		Short: "Register a job in a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.Post("/api/v1/sessions/"+args[0]+"/jobs", map[string]int{
				"arrival_time": arrival,
				"burst_time":   burst,
				"priority":     priority,
			})
			if err != nil {
				return fmt.Errorf("register job: %w", err)
			}

			var job model.Job
			if err := json.Unmarshal(resp.Data, &job); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}
			fmt.Printf("Job registered: pid=%d arrival=%d burst=%d priority=%d\n",
				job.PID, job.ArrivalTime, job.BurstTime, job.Priority)
			return nil
		},
	}
	cmd.Flags().IntVar(&arrival, "arrival", 0, "Arrival time (ticks, >= 0)")
	cmd.Flags().IntVar(&burst, "burst", 1, "Burst time (ticks, >= 1)")
	cmd.Flags().IntVar(&priority, "priority", 1, "Priority (lower value is more urgent, >= 1)")
	cmd.MarkFlagRequired("burst")
	return cmd
}

func newJobListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <session-id>",
		Short: "List the registered jobs of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.Get("/api/v1/sessions/" + args[0] + "/jobs")
			if err != nil {
				return fmt.Errorf("list jobs: %w", err)
			}

			var jobs []model.Job
			if err := json.Unmarshal(resp.Data, &jobs); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}
			if len(jobs) == 0 {
				fmt.Println("No jobs registered.")
				return nil
			}

			fmt.Printf("%-5s  %-8s  %-6s  %s\n", "PID", "ARRIVAL", "BURST", "PRIORITY")
			for _, j := range jobs {
				fmt.Printf("%-5d  %-8d  %-6d  %d\n", j.PID, j.ArrivalTime, j.BurstTime, j.Priority)
			}
			return nil
		},
	}
}
