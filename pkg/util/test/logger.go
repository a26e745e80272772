// Package test holds helpers shared by package tests.
package test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-kit/log"
)

var _ log.Logger = (*TestingLogger)(nil)

// TestingLogger is a go-kit logger that forwards to t.Log until the test ends.
type TestingLogger struct {
	t    testing.TB
	mtx  sync.Mutex
	done atomic.Bool
}

func NewTestingLogger(t testing.TB) *TestingLogger {
	l := &TestingLogger{t: t}
	t.Cleanup(func() { l.done.Store(true) })
	return l
}

func (l *TestingLogger) Log(keyvals ...interface{}) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	// workers may still log after the test returned
	if l.done.Load() {
		return nil
	}
	l.t.Log(keyvals...)
	return nil
}
