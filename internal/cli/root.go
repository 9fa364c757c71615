// Package cli implements the scoredeck command-line client: a thin wrapper
// over the dashboard API for admins who prefer a terminal to the web UI.
package cli

import (
	"log/slog"
	"os"

	"github.com/me/scoredeck/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagServer    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
	client *Client
)

// defaultServer returns the default server URL, checking SCOREDECK_SERVER first.
func defaultServer() string {
	if s := os.Getenv("SCOREDECK_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

// NewRootCmd creates the root cobra command for the scoredeck CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "scoredeck",
		Short: "scoredeck — admin dashboard CLI",
		Long:  "scoredeck manages business associates, games, teams, and points through a running dashboard server.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)
			client = NewClient(flagServer, logger)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer(), "Dashboard server URL (or SCOREDECK_SERVER env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(),
		newBACmd(),
		newGamesCmd(),
		newTeamsCmd(),
		newPointsCmd(),
	)

	return root
}
