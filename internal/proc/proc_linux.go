//go:build linux
// +build linux

// File: internal/proc/proc_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package proc

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// procRoot is replaced in tests.
var procRoot = "/proc"

// ListThreads returns the threads of pid sorted by tid. Threads that exit
// while being read are skipped.
func ListThreads(pid int) ([]Task, error) {
	dir := fmt.Sprintf("%s/%d/task", procRoot, pid)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("process %d does not exist", pid)
		}
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	tasks := make([]Task, 0, len(entries))
	for _, e := range entries {
		tid, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}
		comm, err := os.ReadFile(fmt.Sprintf("%s/%d/comm", dir, tid))
		if err != nil {
			continue
		}
		tasks = append(tasks, Task{TID: tid, Name: strings.TrimSpace(string(comm))})
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].TID < tasks[j].TID })
	return tasks, nil
}
