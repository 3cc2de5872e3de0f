// Package api
// Author: momentics
//
// Live debug introspection of the scheduler.

package api

// Debug exposes named probes for diagnostics.
type Debug interface {
	// DumpState evaluates every probe.
	DumpState() map[string]any

	// RegisterProbe adds or replaces a named probe.
	RegisterProbe(name string, fn func() any)
}
