package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set via -ldflags "-X github.com/hbnb/rental-directory/internal/cli.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func versionString() string {
	return fmt.Sprintf("hbnb %s (commit %s, built %s)", Version, Commit, Date)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}
