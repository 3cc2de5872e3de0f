package main

import (
	"encoding/json"
	"io"

	"github.com/momentics/hioload-sched/control"
	"github.com/momentics/hioload-sched/facade"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	debug      bool
	configPath string
	jsonOut    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:          "hioload-sched",
		Short:        "Probe and apply thread scheduling priorities",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log every scheduling request")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "TOML file with scheduler settings")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "print JSON instead of text")

	root.AddCommand(
		newProbeCmd(opts),
		newApplyCmd(opts),
		newThreadsCmd(opts),
		newVersionCmd(),
	)
	return root
}

// loadConfig reads the optional file first and the environment last.
func (o *globalOptions) loadConfig() (*control.Config, error) {
	cfg := control.DefaultConfig()
	if o.configPath != "" {
		if err := control.LoadFile(o.configPath, cfg); err != nil {
			return nil, err
		}
	}
	control.LoadEnv(cfg, nil)
	if o.debug {
		cfg.Debug = true
	}
	return cfg, nil
}

func (o *globalOptions) newScheduler(cmd *cobra.Command) (*facade.Scheduler, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	logger := control.NewLogger(cmd.ErrOrStderr(), cfg.Debug)
	return facade.New(cfg, facade.WithLogger(logger)), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
