// File: api/observer.go
// Author: momentics <momentics@gmail.com>
//
// Outcome reporting for applied scheduling requests.

package api

import "time"

// Outcome describes one translation attempt for one thread.
type Outcome struct {
	Time      time.Time     `json:"time"`
	ThreadID  uint32        `json:"thread_id"`
	TID       int           `json:"tid"`
	Level     PriorityLevel `json:"level"`
	Policy    SchedPolicy   `json:"policy"`
	Priority  int           `json:"priority"`
	Nice      int           `json:"nice,omitempty"`
	SetNice   bool          `json:"set_nice"`
	NoReset   bool          `json:"no_reset,omitempty"`
	PolicyErr error         `json:"-"`
	NiceErr   error         `json:"-"`
}

// Failed reports whether any request in the outcome failed.
func (o Outcome) Failed() bool {
	return o.PolicyErr != nil || o.NiceErr != nil
}

// Observer receives outcomes. Observe must not block.
type Observer interface {
	Observe(o Outcome)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Outcome)

// Observe calls f(o).
func (f ObserverFunc) Observe(o Outcome) { f(o) }
