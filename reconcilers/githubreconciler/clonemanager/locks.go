/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package clonemanager

import (
	"path/filepath"
	"sync"
)

// Locks serializes work on workspace paths. Each distinct path gets its own
// mutex, created on first use and dropped once no caller holds or waits on
// it, so the table does not grow with the number of changes ever reviewed.
type Locks struct {
	mu    sync.Mutex
	paths map[string]*pathLock
}

type pathLock struct {
	mu   sync.Mutex
	refs int
}

// NewLocks creates an empty lock table.
func NewLocks() *Locks {
	return &Locks{
		paths: make(map[string]*pathLock),
	}
}

// Lock blocks until the caller holds path and returns the function that
// releases it. Paths are compared after filepath.Clean.
func (l *Locks) Lock(path string) (unlock func()) {
	key := filepath.Clean(path)

	l.mu.Lock()
	pl, ok := l.paths[key]
	if !ok {
		pl = &pathLock{}
		l.paths[key] = pl
	}
	pl.refs++
	l.mu.Unlock()

	pl.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			pl.mu.Unlock()

			l.mu.Lock()
			defer l.mu.Unlock()
			pl.refs--
			if pl.refs == 0 {
				delete(l.paths, key)
			}
		})
	}
}

// len reports how many paths currently have holders or waiters.
func (l *Locks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.paths)
}
