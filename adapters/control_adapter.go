// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing api.Control interface using control package primitives.

package adapters

import (
	"github.com/momentics/hioload-sched/api"
	"github.com/momentics/hioload-sched/control"
)

type ControlAdapter struct {
	config  *control.ConfigStore
	metrics *control.MetricsRegistry
	debug   *control.DebugProbes
}

var _ api.Control = (*ControlAdapter)(nil)

// NewControlAdapter wires fresh control primitives and registers the
// platform probes backed by sys.
func NewControlAdapter(sys api.Syscaller) *ControlAdapter {
	adapter := &ControlAdapter{
		config:  control.NewConfigStore(),
		metrics: control.NewMetricsRegistry(),
		debug:   control.NewDebugProbes(),
	}
	control.RegisterPlatformProbes(adapter.debug, sys)
	return adapter
}

func (c *ControlAdapter) GetConfig() map[string]any {
	return c.config.GetSnapshot()
}

func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	c.config.SetConfig(cfg)
	return nil
}

// Stats merges metrics, configuration and debug probe output.
func (c *ControlAdapter) Stats() map[string]any {
	combined := c.metrics.GetSnapshot()
	for k, v := range c.config.GetSnapshot() {
		combined["config."+k] = v
	}
	for k, v := range c.debug.DumpState() {
		combined["debug."+k] = v
	}
	return combined
}

func (c *ControlAdapter) OnReload(fn func()) {
	c.config.OnReload(fn)
}

func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}

// Metrics exposes the registry fed by ObserverAdapter.
func (c *ControlAdapter) Metrics() *control.MetricsRegistry {
	return c.metrics
}
