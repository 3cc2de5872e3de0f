package control_test

import (
	"sync"
	"testing"

	"github.com/momentics/hioload-sched/control"
	"github.com/momentics/hioload-sched/fake"
)

func TestMetricsCounters(t *testing.T) {
	mr := control.NewMetricsRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mr.Add(control.MetricApplyTotal, 1)
		}()
	}
	wg.Wait()
	if got := mr.Counter(control.MetricApplyTotal); got != 50 {
		t.Errorf("counter = %d, want 50", got)
	}
	mr.Set(control.MetricFamily, "none")
	snap := mr.GetSnapshot()
	if snap[control.MetricFamily] != "none" {
		t.Errorf("snapshot = %v", snap)
	}
	if _, ok := snap[control.MetricUpdated]; !ok {
		t.Error("missing update timestamp")
	}
}

func TestPlatformProbes(t *testing.T) {
	dp := control.NewDebugProbes()
	control.RegisterPlatformProbes(dp, fake.NewMainstream())
	state := dp.DumpState()
	if n, ok := state["platform.cpus"].(int); !ok || n < 1 {
		t.Errorf("platform.cpus = %v", state["platform.cpus"])
	}
	if len(dp.Names()) == 0 {
		t.Error("no probes registered")
	}
}
