package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func versionString() string {
	v := version
	if v == "" {
		v = "dev"
	}
	if commit != "" {
		v += " (" + commit + ")"
	}
	if buildDate != "" {
		v += " built " + buildDate
	}
	return v
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hioload-sched %s\n", versionString())
		},
	}
}
