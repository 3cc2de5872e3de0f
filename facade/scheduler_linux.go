//go:build linux
// +build linux

// File: facade/scheduler_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade

import (
	"github.com/momentics/hioload-sched/adapters"
	"github.com/momentics/hioload-sched/api"
	"github.com/momentics/hioload-sched/core/sched"
)

// initPlatform probes the kernel and returns the translating strategy.
func (s *Scheduler) initPlatform() (*sched.State, api.Scheduler) {
	st := sched.Probe(s.sys, sched.ProbeConfig{
		ServerPriority: s.config.ServerPriority,
		BasePriority:   s.config.BasePriority,
		Logger:         s.log,
		Debug:          s.config.Debug,
	})
	tr := sched.NewTranslator(st, s.sys, sched.Options{
		Logger:   s.log,
		Debug:    s.config.Debug,
		Observer: adapters.NewObserverAdapter(s.control.Metrics(), s.history),
	})
	return st, tr
}
