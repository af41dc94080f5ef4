// Copyright 2014 The Gogs Authors. All rights reserved.
// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package process

import (
	"context"
	"sort"
	"sync"
	"time"
)

// IDType is a pid type
type IDType int64

var (
	manager     *Manager
	managerInit sync.Once
)

// Process represents a working process, it is not the system process.
type Process struct {
	PID         IDType
	Description string
	Start       time.Time
}

// Manager knows about all processes and counts PIDs.
type Manager struct {
	mutex sync.Mutex

	next      IDType
	processes map[IDType]*Process
}

// GetManager returns a Manager and initializes one as singleton if there's none yet
func GetManager() *Manager {
	managerInit.Do(func() {
		manager = NewManager()
	})
	return manager
}

// NewManager creates a standalone Manager, mainly for testing
func NewManager() *Manager {
	return &Manager{
		processes: make(map[IDType]*Process),
		next:      1,
	}
}

// AddContextTimeout creates a new context with the given timeout and registers a process for it.
// finished must be called when the work is done: it removes the process and cancels the context.
func (pm *Manager) AddContextTimeout(parent context.Context, timeout time.Duration, description string) (ctx context.Context, pid IDType, finished context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)

	pm.mutex.Lock()
	pid = pm.next
	pm.next++
	pm.processes[pid] = &Process{
		PID:         pid,
		Description: description,
		Start:       time.Now(),
	}
	pm.mutex.Unlock()

	var once sync.Once
	finished = func() {
		once.Do(func() {
			cancel()
			pm.remove(pid)
		})
	}
	return ctx, pid, finished
}

func (pm *Manager) remove(pid IDType) {
	pm.mutex.Lock()
	delete(pm.processes, pid)
	pm.mutex.Unlock()
}

// Processes gets the processes in a thread safe manner, sorted by PID
func (pm *Manager) Processes() []*Process {
	pm.mutex.Lock()
	processes := make([]*Process, 0, len(pm.processes))
	for _, process := range pm.processes {
		processes = append(processes, process)
	}
	pm.mutex.Unlock()

	sort.Slice(processes, func(i, j int) bool {
		return processes[i].PID < processes[j].PID
	})
	return processes
}
