package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "hbnb",
		Short:        "HBnB rental directory API",
		SilenceUsage: true,
	}

	cmd.AddCommand(
		newServeCmd(),
		newSeedCmd(),
		newVersionCmd(),
	)
	return cmd
}
