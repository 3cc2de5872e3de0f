// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations and constants for thread priority
// translation.

package api

import "strconv"

// PriorityLevel is the abstract thread priority supplied by the thread record.
// Values follow the Windows THREAD_PRIORITY_* numbering, so any integer falls
// into exactly one bucket when compared with "at least" thresholds.
type PriorityLevel int

const (
	PriorityIdle         PriorityLevel = -15
	PriorityLowest       PriorityLevel = -2
	PriorityBelowNormal  PriorityLevel = -1
	PriorityNormal       PriorityLevel = 0
	PriorityAboveNormal  PriorityLevel = 1
	PriorityHighest      PriorityLevel = 2
	PriorityTimeCritical PriorityLevel = 15
)

// PriorityLevels lists the seven named levels from highest to lowest.
var PriorityLevels = []PriorityLevel{
	PriorityTimeCritical,
	PriorityHighest,
	PriorityAboveNormal,
	PriorityNormal,
	PriorityBelowNormal,
	PriorityLowest,
	PriorityIdle,
}

func (p PriorityLevel) String() string {
	switch p {
	case PriorityIdle:
		return "idle"
	case PriorityLowest:
		return "lowest"
	case PriorityBelowNormal:
		return "below_normal"
	case PriorityNormal:
		return "normal"
	case PriorityAboveNormal:
		return "above_normal"
	case PriorityHighest:
		return "highest"
	case PriorityTimeCritical:
		return "time_critical"
	default:
		return strconv.Itoa(int(p))
	}
}

// ParsePriorityLevel accepts either a level name or its integer value.
func ParsePriorityLevel(s string) (PriorityLevel, error) {
	for _, p := range PriorityLevels {
		if p.String() == s {
			return p, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, NewError(ErrCodeInvalidArgument, "unknown priority level").WithContext("level", s)
	}
	return PriorityLevel(n), nil
}

// PolicyFamily is the host strategy in effect for the process lifetime.
type PolicyFamily int

const (
	FamilyUninitialized PolicyFamily = iota
	FamilyIsoNice
	FamilyFIFORealtime
	FamilyNone
)

func (f PolicyFamily) String() string {
	switch f {
	case FamilyIsoNice:
		return "iso_nice"
	case FamilyFIFORealtime:
		return "fifo_realtime"
	case FamilyNone:
		return "none"
	default:
		return "uninitialized"
	}
}

// Active reports whether threads are translated under this family.
func (f PolicyFamily) Active() bool {
	return f == FamilyIsoNice || f == FamilyFIFORealtime
}

// SchedPolicy is a Linux scheduling policy number, optionally or'ed with
// PolicyResetOnFork.
type SchedPolicy int

const (
	PolicyOther SchedPolicy = 0
	PolicyFIFO  SchedPolicy = 1
	PolicyRR    SchedPolicy = 2
	PolicyBatch SchedPolicy = 3
	// PolicyISO is only accepted by MuQSS/PDS style kernels.
	PolicyISO  SchedPolicy = 4
	PolicyIdle SchedPolicy = 5

	PolicyResetOnFork SchedPolicy = 0x40000000
)

// Base strips the reset-on-fork flag.
func (p SchedPolicy) Base() SchedPolicy {
	return p &^ PolicyResetOnFork
}

func (p SchedPolicy) String() string {
	var name string
	switch p.Base() {
	case PolicyOther:
		name = "other"
	case PolicyFIFO:
		name = "fifo"
	case PolicyRR:
		name = "rr"
	case PolicyBatch:
		name = "batch"
	case PolicyISO:
		name = "iso"
	case PolicyIdle:
		name = "idle"
	default:
		name = strconv.Itoa(int(p.Base()))
	}
	if p&PolicyResetOnFork != 0 {
		name += "|reset_on_fork"
	}
	return name
}

// SchedAttr is the scheduling state of one OS thread as reported by the kernel.
type SchedAttr struct {
	Policy   SchedPolicy `json:"policy"`
	Priority int         `json:"priority"`
	Nice     int         `json:"nice"`
}

// PriorityOverride carries a raw configuration value naming a realtime
// priority. It is validated only once the kernel range is known.
type PriorityOverride struct {
	Name    string
	Raw     string
	Present bool
}
