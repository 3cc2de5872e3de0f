// Package proc
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Enumeration of the OS threads of a process.

package proc

// Task is one kernel thread of a process.
type Task struct {
	TID  int    `json:"tid"`
	Name string `json:"name"`
}
