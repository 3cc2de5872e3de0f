// File: api/thread.go
// Author: momentics <momentics@gmail.com>
//
// Plain value implementation of Thread.

package api

// ThreadInfo is a snapshot of a thread record. A zero TID with Running false
// means the thread has no OS identity yet.
type ThreadInfo struct {
	ServerID uint32
	Level    PriorityLevel
	TID      int
	Running  bool
}

var _ Thread = ThreadInfo{}

// ID returns the server-side thread id.
func (t ThreadInfo) ID() uint32 { return t.ServerID }

// Priority returns the abstract priority level.
func (t ThreadInfo) Priority() PriorityLevel { return t.Level }

// OSThreadID returns the kernel thread id if the thread is running.
func (t ThreadInfo) OSThreadID() (int, bool) { return t.TID, t.Running }
