// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package testlogger

import (
	"strings"
	"sync"
	"testing"

	"code.gitea.io/mimedetect/modules/log"
)

// testWriter forwards the log output to the testing log of a running test
type testWriter struct {
	mu   sync.Mutex
	t    testing.TB
	done bool
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	// the logger could still try to output logs after the test is finished
	if w.done {
		return len(p), nil
	}
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// New returns a logger writing to the testing log of t at all levels
func New(t testing.TB) *log.LoggerImpl {
	t.Helper()
	w := &testWriter{t: t}
	t.Cleanup(func() {
		w.mu.Lock()
		w.done = true
		w.mu.Unlock()
	})
	return log.NewLoggerWithWriter(w, log.WriterOption{Level: log.TRACE, Flags: log.Lshortfile | log.Llevelinitial})
}

// MockDefaultLogger replaces the default logger by a testing logger until the test is finished
func MockDefaultLogger(t testing.TB) *log.LoggerImpl {
	t.Helper()
	l := New(t)
	old := log.SetDefaultLogger(l)
	t.Cleanup(func() { log.SetDefaultLogger(old) })
	return l
}
