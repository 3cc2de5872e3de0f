//go:build !linux
// +build !linux

// File: facade/scheduler_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade

import (
	"github.com/momentics/hioload-sched/api"
	"github.com/momentics/hioload-sched/core/sched"
)

// initPlatform skips probing; there is nothing to translate to.
func (s *Scheduler) initPlatform() (*sched.State, api.Scheduler) {
	return sched.NewState(api.FamilyNone, -1, sched.DefaultNiceCeiling), sched.Noop{}
}
