// Package cli implements the gosched command line client. Commands talk to
// a running gosched server over its REST API and render results locally.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/me/gosched/internal/logging"
)

var (
	flagServer    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
	client *Client
)

// defaultServer returns the default server URL, checking GOSCHED_SERVER env var first.
func defaultServer() string {
	if s := os.Getenv("GOSCHED_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

// NewRootCmd creates the root cobra command for the gosched CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gosched",
		Short: "gosched — CPU scheduling simulator client",
		Long:  "gosched registers jobs, runs scheduling policies, and compares their performance on a gosched server.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)
			client = NewClient(flagServer, logger)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer(), "gosched server URL (or GOSCHED_SERVER env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newSessionCmd(),
		newJobCmd(),
		newRunCmd(),
		newCompareCmd(),
		newWorkloadCmd(),
	)

	return root
}
