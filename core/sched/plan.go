// File: core/sched/plan.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package sched

import "github.com/momentics/hioload-sched/api"

// Request is the scheduling request computed for one priority level.
type Request struct {
	Policy   api.SchedPolicy
	Priority int
	// Nice is on the kernel-native scale; see UserNice.
	Nice    int
	SetNice bool
}

// Plan maps level to a Request under st. ok is false when no family is active.
// Levels are bucketed with "at least" thresholds from the highest down.
func Plan(st *State, level api.PriorityLevel) (req Request, ok bool) {
	family := st.Family()
	if !family.Active() {
		return Request{}, false
	}
	iso := family == api.FamilyIsoNice
	base := st.base
	req = Request{Nice: DefaultNiceCeiling, SetNice: iso}

	switch {
	case level >= api.PriorityTimeCritical:
		if iso {
			req.Policy = api.PolicyISO
			req.Nice = st.niceCeiling
		} else {
			req.Policy = api.PolicyFIFO
			req.Priority = base + 4
		}
	case level >= api.PriorityHighest:
		if iso {
			req.Policy = api.PolicyOther
			req.Nice = base - 10
		} else {
			req.Policy = api.PolicyFIFO
			req.Priority = base + 2
		}
	case level >= api.PriorityAboveNormal:
		if iso {
			req.Policy = api.PolicyOther
			req.Nice = base - 5
		} else {
			req.Policy = api.PolicyFIFO
			req.Priority = base
		}
	case level >= api.PriorityNormal:
		req.Policy = api.PolicyOther
		if iso {
			req.Nice = base
		}
	case level >= api.PriorityLowest:
		req.Policy = api.PolicyBatch
		if iso {
			req.Nice = base + 5
		}
	default:
		req.Policy = api.PolicyIdle
		if iso {
			req.Nice = base + 10
		}
	}
	return req, true
}

// UserNice converts a kernel-native niceness value into the value passed to
// setpriority, bounded by ceiling.
func UserNice(ceiling, v int) int {
	return min(-20, 20-min(ceiling, v))
}
