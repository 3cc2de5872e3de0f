// Package sched
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Translation of abstract thread priorities into Linux scheduling requests.
//
// Probe runs once during process bring-up and returns an immutable State
// describing which policy family the kernel accepted. A Translator holds that
// State by shared reference and applies it to individual OS threads. All
// kernel requests go through api.Syscaller and are fire-and-log: failures are
// logged and reported to an optional observer, never returned.
//
// Probe must complete before the first Apply. Nothing here enforces that
// ordering; the caller sequences it during bring-up.
package sched
