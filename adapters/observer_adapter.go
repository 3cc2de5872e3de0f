// File: adapters/observer_adapter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
// Description:
//   Adapter implementing api.Observer, folding translation outcomes into
//   metrics counters and the outcome history.

package adapters

import (
	"github.com/momentics/hioload-sched/api"
	"github.com/momentics/hioload-sched/control"
)

// ObserverAdapter counts outcomes and forwards them to a History.
type ObserverAdapter struct {
	metrics *control.MetricsRegistry
	history *control.History
}

var _ api.Observer = (*ObserverAdapter)(nil)

// NewObserverAdapter returns an observer feeding metrics and history.
// history may be nil.
func NewObserverAdapter(metrics *control.MetricsRegistry, history *control.History) *ObserverAdapter {
	return &ObserverAdapter{metrics: metrics, history: history}
}

// Observe records o.
func (a *ObserverAdapter) Observe(o api.Outcome) {
	a.metrics.Add(control.MetricApplyTotal, 1)
	if o.PolicyErr != nil {
		a.metrics.Add(control.MetricPolicyFailed, 1)
	}
	if o.NiceErr != nil {
		a.metrics.Add(control.MetricNiceFailed, 1)
	}
	if o.NoReset {
		a.metrics.Add(control.MetricNoResetOnFork, 1)
	}
	if a.history != nil {
		a.history.Observe(o)
	}
}
