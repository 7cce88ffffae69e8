package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func newVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of cuemaker",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cuemaker v%s\n", Version)
			if opts.verbose {
				fmt.Fprintf(out, "Build Time: %s\n", BuildTime)
				fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
			}
		},
	}
}
