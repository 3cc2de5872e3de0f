package main

import (
	"fmt"

	"github.com/momentics/hioload-sched/api"
	"github.com/spf13/cobra"
)

func newApplyCmd(opts *globalOptions) *cobra.Command {
	var (
		tid      int
		serverID uint32
		level    string
	)
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Probe, then translate one abstract priority onto a kernel thread",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := api.ParsePriorityLevel(level)
			if err != nil {
				return err
			}
			if tid <= 0 {
				return fmt.Errorf("--tid must be positive: %w", api.ErrInvalidArgument)
			}
			s, err := opts.newScheduler(cmd)
			if err != nil {
				return err
			}
			s.Init()
			s.SetThreadPriority(api.ThreadInfo{ServerID: serverID, Level: lvl, TID: tid, Running: true})

			hist := s.History()
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"state":   s.State().Snapshot(),
					"outcome": hist,
				})
			}
			out := cmd.OutOrStdout()
			if len(hist) == 0 {
				fmt.Fprintf(out, "no request issued (family %s)\n", s.State().Family())
				return nil
			}
			rec := hist[len(hist)-1]
			fmt.Fprintf(out, "tid %d: %s -> %s/%d", rec.TID, rec.Level, rec.Policy, rec.Priority)
			if rec.Nice != nil {
				fmt.Fprintf(out, " nice %d", *rec.Nice)
			}
			fmt.Fprintln(out)
			if rec.PolicyError != "" {
				fmt.Fprintf(out, "policy change failed: %s\n", rec.PolicyError)
			}
			if rec.NiceError != "" {
				fmt.Fprintf(out, "nice change failed: %s\n", rec.NiceError)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&tid, "tid", 0, "kernel thread id to adjust")
	cmd.Flags().Uint32Var(&serverID, "id", 0, "server thread id shown in diagnostics")
	cmd.Flags().StringVar(&level, "level", api.PriorityNormal.String(), "priority level name or value")
	_ = cmd.MarkFlagRequired("tid")
	return cmd
}
