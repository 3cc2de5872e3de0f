// File: facade/scheduler.go
// Unified facade for hioload-sched.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Scheduler aggregates the probe, the translation strategy and the control
// surface behind the two calls a thread-owning server needs: Init once during
// bring-up, then SetThreadPriority whenever a thread's priority changes.
// The strategy is chosen at build time: Linux builds probe the kernel and
// translate, every other platform runs a no-op strategy.

package facade

import (
	"github.com/momentics/hioload-sched/adapters"
	"github.com/momentics/hioload-sched/api"
	"github.com/momentics/hioload-sched/control"
	"github.com/momentics/hioload-sched/core/sched"
	"github.com/momentics/hioload-sched/internal/sysched"
	"github.com/sirupsen/logrus"
)

// Scheduler is the process-level entry point.
type Scheduler struct {
	config  *control.Config
	sys     api.Syscaller
	log     logrus.FieldLogger
	control *adapters.ControlAdapter
	history *control.History

	// Written once by Init, read-only afterwards.
	state    *sched.State
	strategy api.Scheduler
}

// Option customizes New.
type Option func(*Scheduler)

// WithSyscaller replaces the platform syscalls, mainly for tests.
func WithSyscaller(sys api.Syscaller) Option {
	return func(s *Scheduler) { s.sys = sys }
}

// WithLogger replaces the default stderr logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Scheduler) { s.log = l }
}

// New builds a Scheduler. A nil cfg is read from the environment.
// Until Init runs every SetThreadPriority call is a no-op.
func New(cfg *control.Config, opts ...Option) *Scheduler {
	if cfg == nil {
		cfg = control.DefaultConfig()
		control.LoadEnv(cfg, nil)
	}
	s := &Scheduler{config: cfg, strategy: sched.Noop{}}
	for _, opt := range opts {
		opt(s)
	}
	if s.sys == nil {
		s.sys = sysched.New()
	}
	if s.log == nil {
		s.log = control.NewLogger(nil, cfg.Debug)
	}

	s.control = adapters.NewControlAdapter(s.sys)
	s.history = control.NewHistory(cfg.HistorySize)
	s.control.SetConfig(cfg.Map())
	s.control.RegisterDebugProbe("sched.state", func() any {
		return s.state.Snapshot()
	})
	s.control.RegisterDebugProbe("sched.history", func() any {
		return s.history.Snapshot()
	})
	return s
}

// Init probes the host once and selects the translation strategy.
// It changes the scheduling of the calling OS thread, so callers wanting
// the server thread itself adjusted should runtime.LockOSThread first.
// Init must return before the first SetThreadPriority call.
func (s *Scheduler) Init() {
	s.state, s.strategy = s.initPlatform()

	m := s.control.Metrics()
	m.Set(control.MetricFamily, s.state.Family().String())
	m.Set(control.MetricNiceCeiling, s.state.NiceCeiling())
	if base, ok := s.state.BasePriority(); ok {
		m.Set(control.MetricBasePriority, base)
	}
	if s.config.Debug {
		snap := s.state.Snapshot()
		s.log.WithField("component", "facade").Debugf("scheduling family %s, nice ceiling %d", snap.Family, snap.NiceCeiling)
	}
}

// SetThreadPriority applies t's abstract priority to its OS thread.
// Failures are logged, never returned.
func (s *Scheduler) SetThreadPriority(t api.Thread) {
	s.strategy.Apply(t)
}

// State returns the probed state, nil before Init.
func (s *Scheduler) State() *sched.State {
	return s.state
}

// Control exposes configuration, metrics and debug probes.
func (s *Scheduler) Control() api.Control {
	return s.control
}

// History returns recent translation outcomes.
func (s *Scheduler) History() []control.Record {
	return s.history.Snapshot()
}
