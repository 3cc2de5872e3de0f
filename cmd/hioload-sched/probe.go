package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProbeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Detect the scheduling family supported by this host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.newScheduler(cmd)
			if err != nil {
				return err
			}
			s.Init()
			snap := s.State().Snapshot()
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), snap)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "family:        %s\n", snap.Family)
			if snap.BasePriority != nil {
				fmt.Fprintf(out, "base priority: %d\n", *snap.BasePriority)
			} else {
				fmt.Fprintf(out, "base priority: unset\n")
			}
			fmt.Fprintf(out, "nice ceiling:  %d\n", snap.NiceCeiling)
			if snap.FIFOMin != nil {
				fmt.Fprintf(out, "fifo range:    %d..%d\n", *snap.FIFOMin, *snap.FIFOMax)
			}
			return nil
		},
	}
}
