//go:build !linux
// +build !linux

// File: internal/sysched/sysched_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub implementation for platforms without Linux scheduling syscalls.

package sysched

import "github.com/momentics/hioload-sched/api"

// StubSyscaller fails every request with api.ErrNotSupported.
type StubSyscaller struct{}

var _ api.Syscaller = StubSyscaller{}

// New returns the platform Syscaller.
func New() api.Syscaller {
	return StubSyscaller{}
}

func (StubSyscaller) SetScheduler(int, api.SchedPolicy, int) error { return api.ErrNotSupported }

func (StubSyscaller) PriorityRange(api.SchedPolicy) (int, int, error) {
	return 0, 0, api.ErrNotSupported
}

func (StubSyscaller) NiceLimit() (int64, error) { return 0, api.ErrNotSupported }

func (StubSyscaller) SetNice(int, int) error { return api.ErrNotSupported }

func (StubSyscaller) Nice(int) (int, error) { return 0, api.ErrNotSupported }

func (StubSyscaller) Attr(int) (api.SchedAttr, error) { return api.SchedAttr{}, api.ErrNotSupported }
