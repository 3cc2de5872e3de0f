// File: core/sched/noop.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package sched

import "github.com/momentics/hioload-sched/api"

// Noop is the strategy used where the host has no scheduling facilities.
type Noop struct{}

var _ api.Scheduler = Noop{}

// Apply does nothing.
func (Noop) Apply(api.Thread) {}
