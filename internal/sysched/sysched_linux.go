//go:build linux
// +build linux

// File: internal/sysched/sysched_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux implementation of the scheduling syscalls.

package sysched

import (
	"fmt"
	"unsafe"

	"github.com/momentics/hioload-sched/api"
	"golang.org/x/sys/unix"
)

// schedParam mirrors struct sched_param.
type schedParam struct {
	priority int32
}

// LinuxSyscaller issues real scheduling syscalls.
type LinuxSyscaller struct{}

var _ api.Syscaller = LinuxSyscaller{}

// New returns the platform Syscaller.
func New() api.Syscaller {
	return LinuxSyscaller{}
}

// SetScheduler calls sched_setscheduler(2). x/sys/unix has no wrapper for it.
func (LinuxSyscaller) SetScheduler(tid int, policy api.SchedPolicy, priority int) error {
	param := schedParam{priority: int32(priority)}
	_, _, errno := unix.Syscall(
		unix.SYS_SCHED_SETSCHEDULER,
		uintptr(tid),
		uintptr(policy),
		uintptr(unsafe.Pointer(&param)),
	)
	if errno != 0 {
		return fmt.Errorf("sched_setscheduler(%d, %s, %d): %w", tid, policy, priority, errno)
	}
	return nil
}

// PriorityRange calls sched_get_priority_min(2) and sched_get_priority_max(2).
func (LinuxSyscaller) PriorityRange(policy api.SchedPolicy) (int, int, error) {
	lo, _, errno := unix.Syscall(unix.SYS_SCHED_GET_PRIORITY_MIN, uintptr(policy.Base()), 0, 0)
	if errno != 0 {
		return 0, 0, fmt.Errorf("sched_get_priority_min(%s): %w", policy, errno)
	}
	hi, _, errno := unix.Syscall(unix.SYS_SCHED_GET_PRIORITY_MAX, uintptr(policy.Base()), 0, 0)
	if errno != 0 {
		return 0, 0, fmt.Errorf("sched_get_priority_max(%s): %w", policy, errno)
	}
	return int(lo), int(hi), nil
}

// NiceLimit reads the RLIMIT_NICE hard limit.
func (LinuxSyscaller) NiceLimit() (int64, error) {
	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NICE, &rl); err != nil {
		return 0, fmt.Errorf("getrlimit(RLIMIT_NICE): %w", err)
	}
	if rl.Max == unix.RLIM_INFINITY {
		return api.RlimInfinity, nil
	}
	return int64(rl.Max), nil
}

// SetNice calls setpriority(PRIO_PROCESS, tid, nice). On Linux a tid targets
// a single thread.
func (LinuxSyscaller) SetNice(tid int, nice int) error {
	if err := unix.Setpriority(unix.PRIO_PROCESS, tid, nice); err != nil {
		return fmt.Errorf("setpriority(%d, %d): %w", tid, nice, err)
	}
	return nil
}

// Nice returns the user-space niceness of tid. The raw syscall reports
// 20 - nice.
func (LinuxSyscaller) Nice(tid int) (int, error) {
	prio, err := unix.Getpriority(unix.PRIO_PROCESS, tid)
	if err != nil {
		return 0, fmt.Errorf("getpriority(%d): %w", tid, err)
	}
	return 20 - prio, nil
}

// Attr calls sched_getattr(2).
func (LinuxSyscaller) Attr(tid int) (api.SchedAttr, error) {
	attr, err := unix.SchedGetAttr(tid, 0)
	if err != nil {
		return api.SchedAttr{}, fmt.Errorf("sched_getattr(%d): %w", tid, err)
	}
	policy := api.SchedPolicy(attr.Policy)
	if attr.Flags&unix.SCHED_FLAG_RESET_ON_FORK != 0 {
		policy |= api.PolicyResetOnFork
	}
	return api.SchedAttr{
		Policy:   policy,
		Priority: int(attr.Priority),
		Nice:     int(attr.Nice),
	}, nil
}
