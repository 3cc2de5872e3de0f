// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector.
// Exposes values and counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"
)

// Metric keys maintained for the scheduler.
const (
	MetricApplyTotal    = "sched.apply.total"
	MetricPolicyFailed  = "sched.policy.failed"
	MetricNiceFailed    = "sched.nice.failed"
	MetricNoResetOnFork = "sched.fallback.no_reset"
	MetricFamily        = "sched.family"
	MetricBasePriority  = "sched.base_priority"
	MetricNiceCeiling   = "sched.nice_ceiling"
	MetricUpdated       = "metrics.updated"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Add increments an int64 counter, creating it on first use.
func (mr *MetricsRegistry) Add(key string, delta int64) {
	mr.mu.Lock()
	n, _ := mr.metrics[key].(int64)
	mr.metrics[key] = n + delta
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Counter returns the current value of a counter.
func (mr *MetricsRegistry) Counter(key string) int64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	n, _ := mr.metrics[key].(int64)
	return n
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics)+1)
	for k, v := range mr.metrics {
		out[k] = v
	}
	if !mr.updated.IsZero() {
		out[MetricUpdated] = mr.updated
	}
	return out
}
