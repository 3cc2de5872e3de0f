//go:build linux
// +build linux

package facade_test

import (
	"testing"

	"github.com/momentics/hioload-sched/api"
	"github.com/momentics/hioload-sched/control"
	"github.com/momentics/hioload-sched/facade"
	"github.com/momentics/hioload-sched/fake"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestFIFOLifecycle(t *testing.T) {
	sys := fake.NewMainstream()
	logger, _ := logtest.NewNullLogger()
	cfg := control.DefaultConfig()
	control.LoadEnv(cfg, func(k string) (string, bool) {
		if k == control.EnvBasePriority {
			return "10", true
		}
		return "", false
	})
	s := facade.New(cfg, facade.WithSyscaller(sys), facade.WithLogger(logger))
	s.Init()

	if got := s.State().Family(); got != api.FamilyFIFORealtime {
		t.Fatalf("Family() = %s, want fifo_realtime", got)
	}
	sys.Reset()
	s.SetThreadPriority(api.ThreadInfo{ServerID: 0x10, Level: api.PriorityTimeCritical, TID: 501, Running: true})
	s.SetThreadPriority(api.ThreadInfo{ServerID: 0x14, Level: api.PriorityIdle, TID: 502, Running: true})
	s.SetThreadPriority(api.ThreadInfo{ServerID: 0x18, Level: api.PriorityNormal})

	calls := sys.Calls()
	if len(calls) != 2 {
		t.Fatalf("got %d calls, want 2: %+v", len(calls), calls)
	}
	if calls[0].Priority != 14 || calls[1].Policy.Base() != api.PolicyIdle {
		t.Errorf("unexpected calls %+v", calls)
	}

	stats := s.Control().Stats()
	if stats[control.MetricApplyTotal] != int64(2) {
		t.Errorf("%s = %v", control.MetricApplyTotal, stats[control.MetricApplyTotal])
	}
	if stats[control.MetricFamily] != "fifo_realtime" || stats[control.MetricBasePriority] != 10 {
		t.Errorf("state metrics = %v", stats)
	}
	hist := s.History()
	if len(hist) != 2 || hist[0].TID != 501 || hist[0].Policy != "fifo" {
		t.Errorf("history = %+v", hist)
	}
}

func TestIsoLifecycle(t *testing.T) {
	sys := fake.NewIso(api.RlimInfinity)
	logger, _ := logtest.NewNullLogger()
	s := facade.New(control.DefaultConfig(), facade.WithSyscaller(sys), facade.WithLogger(logger))
	s.Init()

	if got := s.State().Family(); got != api.FamilyIsoNice {
		t.Fatalf("Family() = %s, want iso_nice", got)
	}
	sys.Reset()
	s.SetThreadPriority(api.ThreadInfo{ServerID: 1, Level: api.PriorityHighest, TID: 600, Running: true})
	attr, _ := sys.Attr(600)
	if attr.Nice != -20 || attr.Policy.Base() != api.PolicyOther {
		t.Errorf("attr = %+v", attr)
	}
}
