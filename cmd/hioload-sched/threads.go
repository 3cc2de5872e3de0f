package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/momentics/hioload-sched/api"
	"github.com/momentics/hioload-sched/internal/proc"
	"github.com/momentics/hioload-sched/internal/sysched"
	"github.com/spf13/cobra"
)

type threadRow struct {
	proc.Task
	Sched *api.SchedAttr `json:"sched,omitempty"`
	Error string         `json:"error,omitempty"`
}

func newThreadsCmd(opts *globalOptions) *cobra.Command {
	var pid int
	cmd := &cobra.Command{
		Use:   "threads",
		Short: "List the threads of a process with their current scheduling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pid <= 0 {
				pid = os.Getpid()
			}
			tasks, err := proc.ListThreads(pid)
			if err != nil {
				return err
			}
			sys := sysched.New()
			rows := make([]threadRow, 0, len(tasks))
			for _, task := range tasks {
				row := threadRow{Task: task}
				if attr, err := sys.Attr(task.TID); err != nil {
					row.Error = err.Error()
				} else {
					row.Sched = &attr
				}
				rows = append(rows, row)
			}
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), rows)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TID\tNAME\tPOLICY\tPRIO\tNICE")
			for _, row := range rows {
				if row.Sched == nil {
					fmt.Fprintf(tw, "%d\t%s\t?\t?\t?\n", row.TID, row.Name)
					continue
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", row.TID, row.Name, row.Sched.Policy, row.Sched.Priority, row.Sched.Nice)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&pid, "pid", 0, "process id (default: this process)")
	return cmd
}
