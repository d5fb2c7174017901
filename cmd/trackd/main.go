// trackd - admin API backend for the TronTracker dashboard.
package main

import (
	"os"

	"github.com/trontrack/trackd/pkg/cli"
)

// Build-time variables set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	if err := cli.Execute(cli.BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
	}); err != nil {
		os.Exit(1)
	}
}
