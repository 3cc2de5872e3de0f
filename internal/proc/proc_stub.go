//go:build !linux
// +build !linux

// File: internal/proc/proc_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package proc

import "github.com/momentics/hioload-sched/api"

// ListThreads is not available without /proc.
func ListThreads(pid int) ([]Task, error) {
	return nil, api.ErrNotSupported
}
