package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/me/gosched/internal/render"
	"github.com/me/gosched/internal/workload"
	"github.com/me/gosched/pkg/model"
)

func newWorkloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workload",
		Short: "Manage the server's workload library",
	}
	cmd.AddCommand(
		newWorkloadListCmd(),
		newWorkloadSaveCmd(),
		newWorkloadDeleteCmd(),
		newWorkloadCompareCmd(),
	)
	return cmd
}

func newWorkloadListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored workloads",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.Get("/api/v1/workloads/")
			if err != nil {
				return fmt.Errorf("list workloads: %w", err)
			}

			var workloads []workload.Workload
			if err := json.Unmarshal(resp.Data, &workloads); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}
			if len(workloads) == 0 {
				fmt.Println("No workloads stored.")
				return nil
			}

			fmt.Printf("%-24s  %-7s  %s\n", "NAME", "QUANTUM", "JOBS")
			for _, w := range workloads {
				fmt.Printf("%-24s  %-7d  %d\n", w.Name, w.Quantum, len(w.Jobs))
			}
			if resp.Pagination != nil && resp.Pagination.HasMore {
				fmt.Printf("\n(%d of %d shown)\n", len(workloads), resp.Pagination.Total)
			}
			return nil
		},
	}
}

func newWorkloadSaveCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save <workload-file>",
		Short: "Store a workload file in the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wl, err := workload.Load(args[0])
			if err != nil {
				return err
			}
			if name != "" {
				wl.Name = name
			}

			if _, err := client.Post("/api/v1/workloads/", wl); err != nil {
				return fmt.Errorf("save workload: %w", err)
			}
			fmt.Printf("Workload saved: %s (%d jobs)\n", wl.Name, len(wl.Jobs))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Override the workload's name")
	return cmd
}

func newWorkloadDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored workload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := client.Delete("/api/v1/workloads/" + args[0]); err != nil {
				return fmt.Errorf("delete workload: %w", err)
			}
			fmt.Printf("Workload deleted: %s\n", args[0])
			return nil
		},
	}
}

func newWorkloadCompareCmd() *cobra.Command {
	var quantum int

	cmd := &cobra.Command{
		Use:   "compare <name>",
		Short: "Run all policies against a stored workload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var body any
			if quantum > 0 {
				body = map[string]int{"quantum": quantum}
			}
			resp, err := client.Post("/api/v1/workloads/"+args[0]+"/compare", body)
			if err != nil {
				return fmt.Errorf("compare workload: %w", err)
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
	cmd.Flags().IntVar(&quantum, "quantum", 0, "Round-Robin quantum (default: workload's own)")
	return cmd
}
