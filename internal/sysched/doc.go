// Package sysched
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// OS scheduling syscalls behind the api.Syscaller contract.
//
// The Linux build issues sched_setscheduler, sched_get_priority_min/max,
// getrlimit(RLIMIT_NICE), setpriority/getpriority and sched_getattr through
// golang.org/x/sys/unix. Every other platform gets a stub whose calls fail
// with api.ErrNotSupported, so probing degrades to the none family.
package sysched
