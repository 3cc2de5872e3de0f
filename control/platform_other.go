//go:build !linux
// +build !linux

// control/platform_other.go
// Author: momentics <momentics@gmail.com>
//
// Debug probes for platforms without scheduling support.

package control

import (
	"runtime"

	"github.com/momentics/hioload-sched/api"
)

// RegisterPlatformProbes sets the probes available on every platform.
func RegisterPlatformProbes(dp *DebugProbes, _ api.Syscaller) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
}
