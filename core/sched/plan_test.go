package sched_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/momentics/hioload-sched/api"
	"github.com/momentics/hioload-sched/core/sched"
)

func TestPlanFIFO(t *testing.T) {
	st := sched.NewState(api.FamilyFIFORealtime, 10, sched.DefaultNiceCeiling)
	want := map[api.PriorityLevel]sched.Request{
		api.PriorityTimeCritical: {Policy: api.PolicyFIFO, Priority: 14, Nice: 20},
		api.PriorityHighest:      {Policy: api.PolicyFIFO, Priority: 12, Nice: 20},
		api.PriorityAboveNormal:  {Policy: api.PolicyFIFO, Priority: 10, Nice: 20},
		api.PriorityNormal:       {Policy: api.PolicyOther, Nice: 20},
		api.PriorityBelowNormal:  {Policy: api.PolicyBatch, Nice: 20},
		api.PriorityLowest:       {Policy: api.PolicyBatch, Nice: 20},
		api.PriorityIdle:         {Policy: api.PolicyIdle, Nice: 20},
	}
	for level, w := range want {
		got, ok := sched.Plan(st, level)
		if !ok {
			t.Fatalf("Plan(%s) not active", level)
		}
		if diff := cmp.Diff(w, got); diff != "" {
			t.Errorf("Plan(%s) mismatch (-want +got):\n%s", level, diff)
		}
	}
}

func TestPlanFIFOHeadroom(t *testing.T) {
	const lo, hi = 1, 99
	for base := lo; base <= hi-sched.RealtimeHeadroom; base++ {
		st := sched.NewState(api.FamilyFIFORealtime, base, sched.DefaultNiceCeiling)
		for _, level := range api.PriorityLevels {
			req, _ := sched.Plan(st, level)
			if req.Priority > hi {
				t.Fatalf("base %d level %s: priority %d exceeds %d", base, level, req.Priority, hi)
			}
			if req.Policy != api.PolicyFIFO && req.Priority != 0 {
				t.Fatalf("base %d level %s: %s carries priority %d", base, level, req.Policy, req.Priority)
			}
		}
	}
}

func TestPlanIsoNiceMonotonic(t *testing.T) {
	for _, ceiling := range []int{0, 1, 20, 25, 40} {
		st := sched.NewState(api.FamilyIsoNice, sched.IsoBasePriority, ceiling)
		prev := -21
		// PriorityLevels runs from most to least favourable.
		for _, level := range api.PriorityLevels {
			req, ok := sched.Plan(st, level)
			if !ok || !req.SetNice {
				t.Fatalf("ceiling %d level %s: expected a niceness request", ceiling, level)
			}
			nice := sched.UserNice(ceiling, req.Nice)
			if nice < -20 || nice > 19 {
				t.Errorf("ceiling %d level %s: nice %d out of range", ceiling, level, nice)
			}
			if nice < prev {
				t.Errorf("ceiling %d level %s: nice %d more favourable than previous %d", ceiling, level, nice, prev)
			}
			prev = nice
		}
	}
}

func TestPlanIsoPolicies(t *testing.T) {
	st := sched.NewState(api.FamilyIsoNice, sched.IsoBasePriority, 40)
	want := map[api.PriorityLevel]sched.Request{
		api.PriorityTimeCritical: {Policy: api.PolicyISO, Nice: 40, SetNice: true},
		api.PriorityHighest:      {Policy: api.PolicyOther, Nice: 10, SetNice: true},
		api.PriorityAboveNormal:  {Policy: api.PolicyOther, Nice: 15, SetNice: true},
		api.PriorityNormal:       {Policy: api.PolicyOther, Nice: 20, SetNice: true},
		api.PriorityBelowNormal:  {Policy: api.PolicyBatch, Nice: 25, SetNice: true},
		api.PriorityLowest:       {Policy: api.PolicyBatch, Nice: 25, SetNice: true},
		api.PriorityIdle:         {Policy: api.PolicyIdle, Nice: 30, SetNice: true},
	}
	for level, w := range want {
		got, _ := sched.Plan(st, level)
		if diff := cmp.Diff(w, got); diff != "" {
			t.Errorf("Plan(%s) mismatch (-want +got):\n%s", level, diff)
		}
	}
}

func TestPlanBuckets(t *testing.T) {
	st := sched.NewState(api.FamilyFIFORealtime, 10, sched.DefaultNiceCeiling)
	cases := []struct {
		level api.PriorityLevel
		same  api.PriorityLevel
	}{
		{100, api.PriorityTimeCritical},
		{7, api.PriorityHighest},
		{-1, api.PriorityLowest},
		{-3, api.PriorityIdle},
		{-100, api.PriorityIdle},
	}
	for _, c := range cases {
		got, _ := sched.Plan(st, c.level)
		want, _ := sched.Plan(st, c.same)
		if got != want {
			t.Errorf("level %d: got %+v, want bucket of %s %+v", c.level, got, c.same, want)
		}
	}
}

func TestPlanInactive(t *testing.T) {
	states := []*sched.State{
		nil,
		sched.NewState(api.FamilyUninitialized, -1, sched.DefaultNiceCeiling),
		sched.NewState(api.FamilyNone, -1, sched.DefaultNiceCeiling),
	}
	for _, st := range states {
		for _, level := range api.PriorityLevels {
			if _, ok := sched.Plan(st, level); ok {
				t.Errorf("family %s level %s: expected no request", st.Family(), level)
			}
		}
	}
}

func TestUserNice(t *testing.T) {
	cases := []struct {
		ceiling, v, want int
	}{
		{40, 10, -20},
		{40, 40, -20},
		{20, 30, -20},
		{0, 20, -20},
	}
	for _, c := range cases {
		if got := sched.UserNice(c.ceiling, c.v); got != c.want {
			t.Errorf("UserNice(%d, %d) = %d, want %d", c.ceiling, c.v, got, c.want)
		}
	}
}
