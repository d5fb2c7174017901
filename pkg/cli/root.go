// Package cli implements the trackd command-line interface.
package cli

import "github.com/spf13/cobra"

// BuildInfo carries the build-time version variables from main.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

var buildInfo = BuildInfo{Version: "dev", Commit: "unknown", BuildDate: "unknown"}

var rootCmd = &cobra.Command{
	Use:   "trackd",
	Short: "Admin API backend for the TronTracker dashboard",
	Long: `trackd serves the TronTracker admin REST API: dashboard statistics,
webhook management, websocket-connection inspection, API keys,
transaction search, configuration, and log querying.`,
	SilenceUsage: true,
}

// Execute runs the CLI with the given build info.
func Execute(info BuildInfo) error {
	if info.Version != "" {
		buildInfo = info
	}
	return rootCmd.Execute()
}
