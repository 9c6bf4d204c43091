package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage simulation sessions",
	}
	cmd.AddCommand(newSessionNewCmd(), newSessionShowCmd(), newSessionDeleteCmd())
	return cmd
}

func newSessionNewCmd() *cobra.Command {
	var capacity int

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a session with its own job registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			var body any
			if capacity > 0 {
				body = map[string]int{"capacity": capacity}
			}
			resp, err := client.Post("/api/v1/sessions/", body)
			if err != nil {
				return fmt.Errorf("create session: %w", err)
			}

			var sess struct {
				ID       string `json:"id"`
				Capacity int    `json:"capacity"`
			}
			if err := json.Unmarshal(resp.Data, &sess); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}
			fmt.Printf("Session created: %s (capacity %d)\n", sess.ID, sess.Capacity)
			return nil
		},
	}
	cmd.Flags().IntVar(&capacity, "capacity", 0, "Registry capacity (default: server default)")
	return cmd
}

func newSessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show a session and its job count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.Get("/api/v1/sessions/" + args[0])
			if err != nil {
				return fmt.Errorf("get session: %w", err)
			}

			var sess struct {
				ID        string `json:"id"`
				Capacity  int    `json:"capacity"`
				JobCount  int    `json:"job_count"`
				CreatedAt string `json:"created_at"`
			}
			if err := json.Unmarshal(resp.Data, &sess); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}
			fmt.Printf("Session:  %s\n", sess.ID)
			fmt.Printf("Capacity: %d\n", sess.Capacity)
			fmt.Printf("Jobs:     %d\n", sess.JobCount)
			fmt.Printf("Created:  %s\n", sess.CreatedAt)
			return nil
		},
	}
}

func newSessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := client.Delete("/api/v1/sessions/" + args[0]); err != nil {
				return fmt.Errorf("delete session: %w", err)
			}
			fmt.Printf("Session deleted: %s\n", args[0])
			return nil
		},
	}
}
