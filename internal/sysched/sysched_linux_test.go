//go:build linux
// +build linux

package sysched_test

import (
	"os"
	"testing"

	"github.com/momentics/hioload-sched/api"
	"github.com/momentics/hioload-sched/internal/sysched"
)

func TestFIFORange(t *testing.T) {
	lo, hi, err := sysched.New().PriorityRange(api.PolicyFIFO)
	if err != nil {
		t.Fatalf("PriorityRange: %v", err)
	}
	if lo < 1 || hi < lo {
		t.Errorf("unexpected FIFO range [%d, %d]", lo, hi)
	}
}

func TestOtherRangeIsZero(t *testing.T) {
	lo, hi, err := sysched.New().PriorityRange(api.PolicyOther)
	if err != nil {
		t.Fatalf("PriorityRange: %v", err)
	}
	if lo != 0 || hi != 0 {
		t.Errorf("SCHED_OTHER range = [%d, %d], want [0, 0]", lo, hi)
	}
}

func TestAttrSelf(t *testing.T) {
	sys := sysched.New()
	attr, err := sys.Attr(os.Getpid())
	if err != nil {
		t.Fatalf("Attr: %v", err)
	}
	nice, err := sys.Nice(os.Getpid())
	if err != nil {
		t.Fatalf("Nice: %v", err)
	}
	if attr.Nice != nice {
		t.Errorf("sched_getattr nice %d != getpriority nice %d", attr.Nice, nice)
	}
	if nice < -20 || nice > 19 {
		t.Errorf("nice %d out of range", nice)
	}
}

func TestNiceLimit(t *testing.T) {
	lim, err := sysched.New().NiceLimit()
	if err != nil {
		t.Fatalf("NiceLimit: %v", err)
	}
	if lim != api.RlimInfinity && lim < 0 {
		t.Errorf("NiceLimit = %d", lim)
	}
}
