// Package api
// Author: momentics
//
// Scheduler contract for translating abstract thread priorities into
// OS scheduling requests.

package api

// Thread is the view of a server thread record needed for translation.
type Thread interface {
	// ID is the server-side thread id, used only in diagnostics.
	ID() uint32
	// Priority returns the current abstract priority level.
	Priority() PriorityLevel
	// OSThreadID returns the kernel thread id, or false while the thread
	// is not running at OS level.
	OSThreadID() (int, bool)
}

// Scheduler applies a thread's abstract priority to its OS thread.
// Implementations never report failure to the caller.
type Scheduler interface {
	Apply(t Thread)
}
