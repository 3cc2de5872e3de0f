// File: core/sched/probe.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// One-shot capability probe selecting the policy family.

package sched

import (
	"github.com/momentics/hioload-sched/api"
	"github.com/sirupsen/logrus"
)

// ProbeConfig carries the inputs read once during initialization.
type ProbeConfig struct {
	// ServerPriority requests SCHED_FIFO for the probing thread itself.
	ServerPriority api.PriorityOverride
	// BasePriority anchors realtime priorities of all other threads.
	BasePriority api.PriorityOverride

	Logger logrus.FieldLogger
	Debug  bool
}

func (c *ProbeConfig) logger() logrus.FieldLogger {
	if c.Logger == nil {
		return logrus.StandardLogger()
	}
	return c.Logger
}

// Probe detects the scheduling facilities of the host and returns the
// resulting State. It may change the scheduling policy and niceness of the
// calling thread. Probe never fails: anything unexpected degrades to the
// none family.
func Probe(sys api.Syscaller, cfg ProbeConfig) *State {
	log := cfg.logger().WithField("component", "sched")
	st := &State{
		family:      api.FamilyNone,
		base:        unsetPriority,
		niceCeiling: DefaultNiceCeiling,
	}

	if err := sys.SetScheduler(0, api.PolicyISO|api.PolicyResetOnFork, 0); err != nil {
		log.WithError(err).Info("SCHED_ISO not supported")
	} else {
		probeIso(sys, st, log, cfg.Debug)
		return st
	}

	lo, hi, err := sys.PriorityRange(api.PolicyFIFO)
	if err != nil {
		log.WithError(err).Info("SCHED_FIFO priority range unavailable")
		return st
	}
	st.fifoMin, st.fifoMax, st.fifoKnown = lo, hi, true

	if prio, ok := overridePriority(cfg.ServerPriority, lo, hi, log); ok {
		if _, err := setScheduler(sys, 0, api.PolicyFIFO, prio); err != nil {
			log.WithError(err).Warnf("failed to change priority to SCHED_FIFO/%d", prio)
			return st
		}
		if cfg.Debug {
			log.Debugf("changed priority to SCHED_FIFO/%d", prio)
		}
	}

	if prio, ok := overridePriority(cfg.BasePriority, lo, hi-RealtimeHeadroom, log); ok {
		st.base = prio
		st.family = api.FamilyFIFORealtime
		if cfg.Debug {
			log.Debugf("initialized thread base priority to %d", prio)
		}
	}
	return st
}

// probeIso finishes setup once SCHED_ISO has been accepted.
func probeIso(sys api.Syscaller, st *State, log logrus.FieldLogger, debug bool) {
	st.base = IsoBasePriority
	if lim, err := sys.NiceLimit(); err != nil {
		log.WithError(err).Warn("failed to read RLIMIT_NICE")
	} else {
		st.rlimitNice = lim
		st.niceCeiling = ceilingFromLimit(lim)
	}
	if debug {
		log.Debugf("detected RLIMIT_NICE = %d, using SCHED_ISO", 20-st.niceCeiling)
	}

	nice := 20 - st.niceCeiling
	if err := sys.SetNice(0, nice); err != nil {
		log.WithError(err).Warnf("failed to change nice value to %d", nice)
	}
	st.family = api.FamilyIsoNice
}

// ceilingFromLimit maps an RLIMIT_NICE hard limit to the niceness ceiling.
func ceilingFromLimit(lim int64) int {
	if lim == api.RlimInfinity || lim > MaxNiceCeiling {
		return MaxNiceCeiling
	}
	if lim < 0 {
		return 0
	}
	return int(lim)
}

// setScheduler requests policy with reset-on-fork first and falls back to
// the bare policy for kernels that reject the flag. noReset reports whether
// the fallback was taken.
func setScheduler(sys api.Syscaller, tid int, policy api.SchedPolicy, priority int) (noReset bool, err error) {
	if err = sys.SetScheduler(tid, policy|api.PolicyResetOnFork, priority); err == nil {
		return false, nil
	}
	if err = sys.SetScheduler(tid, policy, priority); err != nil {
		return false, err
	}
	return true, nil
}
