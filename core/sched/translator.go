// File: core/sched/translator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-thread application of the probed State.

package sched

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-sched/api"
	"github.com/sirupsen/logrus"
)

// Options configures a Translator.
type Options struct {
	Logger logrus.FieldLogger
	// Debug logs every request and every failure instead of the first one.
	Debug bool
	// Observer, if set, receives one Outcome per attempted translation.
	Observer api.Observer
}

// Translator applies abstract priorities to OS threads. It is safe for
// concurrent use; it only reads its State.
type Translator struct {
	state    *State
	sys      api.Syscaller
	log      logrus.FieldLogger
	debug    bool
	observer api.Observer

	policyFailed onceGate
	niceFailed   onceGate
}

var _ api.Scheduler = (*Translator)(nil)

// NewTranslator returns a Translator bound to st.
func NewTranslator(st *State, sys api.Syscaller, opts Options) *Translator {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Translator{
		state:    st,
		sys:      sys,
		log:      log.WithField("component", "sched"),
		debug:    opts.Debug,
		observer: opts.Observer,
	}
}

// State returns the State the translator was built with.
func (t *Translator) State() *State {
	return t.state
}

// Apply brings the OS scheduling of th in line with its abstract priority.
// It is a no-op when no family is active or th has no OS thread yet.
func (t *Translator) Apply(th api.Thread) {
	if !t.state.Family().Active() {
		return
	}
	tid, ok := th.OSThreadID()
	if !ok {
		return
	}
	level := th.Priority()
	req, _ := Plan(t.state, level)

	log := t.log.WithFields(logrus.Fields{
		"thread": fmt.Sprintf("%04x", th.ID()),
		"tid":    tid,
	})
	out := api.Outcome{
		Time:     time.Now(),
		ThreadID: th.ID(),
		TID:      tid,
		Level:    level,
		Policy:   req.Policy,
		Priority: req.Priority,
	}
	defer t.observe(&out)

	noReset, err := setScheduler(t.sys, tid, req.Policy, req.Priority)
	out.NoReset = noReset
	if err != nil {
		out.PolicyErr = err
		if t.policyFailed.allow(t.debug) {
			log.WithError(err).Warnf("failed to change priority to %s/%d", req.Policy, req.Priority)
		}
		return
	}
	if t.debug {
		log.Debugf("changed priority to %s/%d", req.Policy, req.Priority)
	}

	if !req.SetNice {
		return
	}
	nice := UserNice(t.state.niceCeiling, req.Nice)
	out.SetNice, out.Nice = true, nice
	if err := t.sys.SetNice(tid, nice); err != nil {
		out.NiceErr = err
		if t.niceFailed.allow(t.debug) {
			log.WithError(err).Warnf("failed to change nice value to %d", nice)
		}
	}
	if t.debug {
		if cur, err := t.sys.Nice(tid); err == nil {
			log.Debugf("changed nice value to %d", cur)
		}
	}
}

func (t *Translator) observe(out *api.Outcome) {
	if t.observer != nil {
		t.observer.Observe(*out)
	}
}

// onceGate lets the first failure through, and every failure in debug mode.
type onceGate struct {
	fired atomic.Bool
}

func (g *onceGate) allow(debug bool) bool {
	first := g.fired.CompareAndSwap(false, true)
	return first || debug
}
