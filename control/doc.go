// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, logging, runtime metrics and debug introspection for the
// scheduling core.
//
// Provides:
//   - Config read once from the environment, optionally overlaid on a TOML file
//   - ConfigStore snapshots for the Control surface
//   - MetricsRegistry counters fed by translation outcomes
//   - History of recent outcomes
//   - DebugProbes, including platform probes behind build tags
package control
