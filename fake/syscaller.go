// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"fmt"
	"sync"

	"github.com/momentics/hioload-sched/api"
)

// Operation names recorded by Syscaller.
const (
	OpSetScheduler  = "sched_setscheduler"
	OpPriorityRange = "sched_get_priority_range"
	OpNiceLimit     = "getrlimit"
	OpSetNice       = "setpriority"
	OpNice          = "getpriority"
	OpAttr          = "sched_getattr"
)

// Call is one recorded request.
type Call struct {
	Op       string
	TID      int
	Policy   api.SchedPolicy
	Priority int
	Nice     int
}

// Syscaller is an in-memory api.Syscaller that records every call and
// simulates kernel behaviour configured through its exported fields.
// Configure it before use; only the recorded state is mutex-protected.
type Syscaller struct {
	// IsoSupported makes SCHED_ISO requests succeed.
	IsoSupported bool
	// RejectResetOnFork fails any request carrying the reset-on-fork flag.
	RejectResetOnFork bool
	// FailPolicies fails requests for a base policy.
	FailPolicies map[api.SchedPolicy]error
	// FailTIDs fails policy requests targeting a tid.
	FailTIDs map[int]error

	FIFOMin, FIFOMax int
	RangeErr         error

	NiceLimitValue int64
	NiceLimitErr   error
	SetNiceErr     error

	mu    sync.Mutex
	calls []Call
	attrs map[int]api.SchedAttr
}

var _ api.Syscaller = (*Syscaller)(nil)

// NewMainstream returns a kernel without SCHED_ISO and a FIFO range of 1..99.
func NewMainstream() *Syscaller {
	return &Syscaller{FIFOMin: 1, FIFOMax: 99}
}

// NewIso returns a kernel accepting SCHED_ISO with the given RLIMIT_NICE.
func NewIso(niceLimit int64) *Syscaller {
	s := NewMainstream()
	s.IsoSupported = true
	s.NiceLimitValue = niceLimit
	return s
}

func (s *Syscaller) record(c Call) {
	s.mu.Lock()
	s.calls = append(s.calls, c)
	s.mu.Unlock()
}

// Calls returns a copy of all recorded calls.
func (s *Syscaller) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallsFor returns recorded calls targeting tid.
func (s *Syscaller) CallsFor(tid int) []Call {
	var out []Call
	for _, c := range s.Calls() {
		if c.TID == tid && c.Op != OpPriorityRange && c.Op != OpNiceLimit {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets recorded calls and thread state.
func (s *Syscaller) Reset() {
	s.mu.Lock()
	s.calls = nil
	s.attrs = nil
	s.mu.Unlock()
}

func (s *Syscaller) SetScheduler(tid int, policy api.SchedPolicy, priority int) error {
	s.record(Call{Op: OpSetScheduler, TID: tid, Policy: policy, Priority: priority})

	base := policy.Base()
	switch {
	case base == api.PolicyISO && !s.IsoSupported:
		return fmt.Errorf("sched_setscheduler(%d, %s): %w", tid, policy, api.ErrPolicyRejected)
	case policy&api.PolicyResetOnFork != 0 && s.RejectResetOnFork:
		return fmt.Errorf("sched_setscheduler(%d, %s): %w", tid, policy, api.ErrPolicyRejected)
	}
	if err := s.FailPolicies[base]; err != nil {
		return err
	}
	if err := s.FailTIDs[tid]; err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attrs == nil {
		s.attrs = make(map[int]api.SchedAttr)
	}
	attr := s.attrs[tid]
	attr.Policy, attr.Priority = policy, priority
	s.attrs[tid] = attr
	return nil
}

func (s *Syscaller) PriorityRange(policy api.SchedPolicy) (int, int, error) {
	s.record(Call{Op: OpPriorityRange, Policy: policy})
	if s.RangeErr != nil {
		return 0, 0, s.RangeErr
	}
	if policy.Base() != api.PolicyFIFO && policy.Base() != api.PolicyRR {
		return 0, 0, nil
	}
	return s.FIFOMin, s.FIFOMax, nil
}

func (s *Syscaller) NiceLimit() (int64, error) {
	s.record(Call{Op: OpNiceLimit})
	return s.NiceLimitValue, s.NiceLimitErr
}

func (s *Syscaller) SetNice(tid int, nice int) error {
	s.record(Call{Op: OpSetNice, TID: tid, Nice: nice})
	if s.SetNiceErr != nil {
		return s.SetNiceErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attrs == nil {
		s.attrs = make(map[int]api.SchedAttr)
	}
	attr := s.attrs[tid]
	attr.Nice = nice
	s.attrs[tid] = attr
	return nil
}

func (s *Syscaller) Nice(tid int) (int, error) {
	s.record(Call{Op: OpNice, TID: tid})
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attrs[tid].Nice, nil
}

func (s *Syscaller) Attr(tid int) (api.SchedAttr, error) {
	s.record(Call{Op: OpAttr, TID: tid})
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attrs[tid], nil
}
