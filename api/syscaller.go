// File: api/syscaller.go
// Author: momentics <momentics@gmail.com>
//
// OS scheduling abstraction. Every call is a synchronous kernel request that
// either succeeds or returns an error; callers decide only whether to log.

package api

// RlimInfinity is returned by Syscaller.NiceLimit for an unlimited limit.
const RlimInfinity int64 = -1

// Syscaller issues scheduling requests against OS thread ids. A tid of 0
// targets the calling process.
type Syscaller interface {
	// SetScheduler is sched_setscheduler(tid, policy, {priority}).
	SetScheduler(tid int, policy SchedPolicy, priority int) error
	// PriorityRange returns the kernel's [min, max] for policy.
	PriorityRange(policy SchedPolicy) (min, max int, err error)
	// NiceLimit returns the RLIMIT_NICE hard limit, or RlimInfinity.
	NiceLimit() (int64, error)
	// SetNice is setpriority(PRIO_PROCESS, tid, nice).
	SetNice(tid int, nice int) error
	// Nice is getpriority(PRIO_PROCESS, tid) converted to user niceness.
	Nice(tid int) (int, error)
	// Attr reads the current scheduling attributes of tid.
	Attr(tid int) (SchedAttr, error)
}
