// File: core/sched/state.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package sched

import "github.com/momentics/hioload-sched/api"

const (
	// DefaultNiceCeiling is the niceness ceiling before RLIMIT_NICE is read.
	DefaultNiceCeiling = 20
	// MaxNiceCeiling is the RLIMIT_NICE value that maps to niceness -20.
	MaxNiceCeiling = 40
	// IsoBasePriority anchors niceness computations under the iso family.
	IsoBasePriority = 20
	// RealtimeHeadroom is the largest offset added to the base priority.
	RealtimeHeadroom = 4

	unsetPriority = -1
)

// State is the process-wide scheduling state produced by Probe.
// It is never modified after Probe returns. A nil *State is uninitialized.
type State struct {
	family      api.PolicyFamily
	base        int
	niceCeiling int

	fifoMin    int
	fifoMax    int
	fifoKnown  bool
	rlimitNice int64
}

// NewState builds a State directly. base < 0 means unset.
func NewState(family api.PolicyFamily, base, niceCeiling int) *State {
	if base < 0 {
		base = unsetPriority
	}
	return &State{
		family:      family,
		base:        base,
		niceCeiling: niceCeiling,
	}
}

// Family returns the active policy family.
func (s *State) Family() api.PolicyFamily {
	if s == nil {
		return api.FamilyUninitialized
	}
	return s.family
}

// BasePriority returns the anchor priority, or false when unset.
func (s *State) BasePriority() (int, bool) {
	if s == nil || s.base == unsetPriority {
		return 0, false
	}
	return s.base, true
}

// NiceCeiling returns the largest niceness value the process may request,
// on the RLIMIT_NICE scale.
func (s *State) NiceCeiling() int {
	if s == nil {
		return DefaultNiceCeiling
	}
	return s.niceCeiling
}

// FIFORange returns the kernel-reported SCHED_FIFO range if it was probed.
func (s *State) FIFORange() (min, max int, ok bool) {
	if s == nil {
		return 0, 0, false
	}
	return s.fifoMin, s.fifoMax, s.fifoKnown
}

// Snapshot is a printable copy of State.
type Snapshot struct {
	Family       string `json:"family"`
	BasePriority *int   `json:"base_priority,omitempty"`
	NiceCeiling  int    `json:"nice_ceiling"`
	FIFOMin      *int   `json:"fifo_min,omitempty"`
	FIFOMax      *int   `json:"fifo_max,omitempty"`
}

// Snapshot returns a printable copy of s.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Family:      s.Family().String(),
		NiceCeiling: s.NiceCeiling(),
	}
	if base, ok := s.BasePriority(); ok {
		snap.BasePriority = &base
	}
	if lo, hi, ok := s.FIFORange(); ok {
		snap.FIFOMin, snap.FIFOMax = &lo, &hi
	}
	return snap
}
