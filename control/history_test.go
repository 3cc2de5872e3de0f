package control_test

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-sched/api"
	"github.com/momentics/hioload-sched/control"
)

func TestHistoryBounded(t *testing.T) {
	h := control.NewHistory(3)
	for tid := 1; tid <= 5; tid++ {
		h.Observe(api.Outcome{TID: tid, Level: api.PriorityNormal, Policy: api.PolicyOther})
	}
	recs := h.Snapshot()
	if len(recs) != 3 {
		t.Fatalf("len = %d, want 3", len(recs))
	}
	for i, want := range []int{3, 4, 5} {
		if recs[i].TID != want {
			t.Errorf("recs[%d].TID = %d, want %d", i, recs[i].TID, want)
		}
	}
}

func TestHistoryDisabled(t *testing.T) {
	h := control.NewHistory(0)
	h.Observe(api.Outcome{TID: 1})
	if h.Len() != 0 {
		t.Errorf("Len() = %d", h.Len())
	}
}

func TestNewRecord(t *testing.T) {
	rec := control.NewRecord(api.Outcome{
		TID:     5,
		Level:   api.PriorityIdle,
		Policy:  api.PolicyIdle,
		SetNice: true,
		Nice:    -20,
		NiceErr: errors.New("EACCES"),
	})
	if rec.Level != "idle" || rec.Policy != "idle" || rec.NiceError != "EACCES" || rec.PolicyError != "" {
		t.Errorf("unexpected record %+v", rec)
	}
	if rec.Nice == nil || *rec.Nice != -20 {
		t.Errorf("Nice = %v", rec.Nice)
	}
}
