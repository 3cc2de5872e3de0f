//go:build linux
// +build linux

// control/platform_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific debug probes over the scheduling syscalls.

package control

import (
	"runtime"

	"github.com/momentics/hioload-sched/api"
)

// RegisterPlatformProbes sets Linux-specific debug probes.
func RegisterPlatformProbes(dp *DebugProbes, sys api.Syscaller) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.rlimit_nice", func() any {
		lim, err := sys.NiceLimit()
		switch {
		case err != nil:
			return err.Error()
		case lim == api.RlimInfinity:
			return "unlimited"
		default:
			return lim
		}
	})
	dp.RegisterProbe("platform.fifo_range", func() any {
		lo, hi, err := sys.PriorityRange(api.PolicyFIFO)
		if err != nil {
			return err.Error()
		}
		return []int{lo, hi}
	})
}
