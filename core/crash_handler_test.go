package core

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureCrash(t *testing.T, exit func(int)) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevExit := crashOut, crashExit
	crashOut = &buf
	crashExit = exit
	t.Cleanup(func() {
		crashOut, crashExit = prevOut, prevExit
		SetCrashRestore(nil)
	})
	return &buf
}

func TestHandleCrashRestoresFirst(t *testing.T) {
	code := -1
	buf := captureCrash(t, func(c int) { code = c })

	restored := 0
	SetCrashRestore(func() {
		restored++
		assert.Zero(t, buf.Len(), "screen restored before the report")
	})

	HandleCrash("boom")
	assert.Equal(t, 1, restored)
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "CRASH DETECTED: boom")
	assert.Contains(t, buf.String(), "Stack Trace:")

	// The hook runs once
	HandleCrash("again")
	assert.Equal(t, 1, restored)
}

func TestHandleCrashNil(t *testing.T) {
	code := -1
	buf := captureCrash(t, func(c int) { code = c })
	HandleCrash(nil)
	assert.Equal(t, -1, code)
	assert.Zero(t, buf.Len())
}

func TestGoRecovers(t *testing.T) {
	exited := make(chan int, 1)
	buf := captureCrash(t, func(c int) { exited <- c })

	Go(func() { panic("worker") })
	assert.Equal(t, 1, <-exited)
	assert.Contains(t, buf.String(), "CRASH DETECTED: worker")
}
