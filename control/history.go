// control/history.go
// Author: momentics <momentics@gmail.com>
//
// Bounded FIFO of recent translation outcomes for debug probes.

package control

import (
	"sync"
	"time"

	"github.com/eapache/queue"
	"github.com/momentics/hioload-sched/api"
)

// Record is the printable form of an api.Outcome.
type Record struct {
	Time        time.Time `json:"time"`
	ThreadID    uint32    `json:"thread_id"`
	TID         int       `json:"tid"`
	Level       string    `json:"level"`
	Policy      string    `json:"policy"`
	Priority    int       `json:"priority"`
	Nice        *int      `json:"nice,omitempty"`
	NoReset     bool      `json:"no_reset,omitempty"`
	PolicyError string    `json:"policy_error,omitempty"`
	NiceError   string    `json:"nice_error,omitempty"`
}

// NewRecord converts an outcome.
func NewRecord(o api.Outcome) Record {
	r := Record{
		Time:     o.Time,
		ThreadID: o.ThreadID,
		TID:      o.TID,
		Level:    o.Level.String(),
		Policy:   o.Policy.String(),
		Priority: o.Priority,
		NoReset:  o.NoReset,
	}
	if o.SetNice {
		nice := o.Nice
		r.Nice = &nice
	}
	if o.PolicyErr != nil {
		r.PolicyError = o.PolicyErr.Error()
	}
	if o.NiceErr != nil {
		r.NiceError = o.NiceErr.Error()
	}
	return r
}

// History keeps the last N outcomes, oldest first.
type History struct {
	mu   sync.Mutex
	q    *queue.Queue
	size int
}

var _ api.Observer = (*History)(nil)

// NewHistory returns a History holding at most size records.
func NewHistory(size int) *History {
	return &History{q: queue.New(), size: size}
}

// Observe appends o, evicting the oldest record when full.
func (h *History) Observe(o api.Outcome) {
	if h.size <= 0 {
		return
	}
	rec := NewRecord(o)
	h.mu.Lock()
	h.q.Add(rec)
	for h.q.Length() > h.size {
		h.q.Remove()
	}
	h.mu.Unlock()
}

// Len returns the number of stored records.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.q.Length()
}

// Snapshot returns the stored records, oldest first.
func (h *History) Snapshot() []Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Record, h.q.Length())
	for i := range out {
		out[i] = h.q.Get(i).(Record)
	}
	return out
}
