package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashRestore func()
	crashOut     io.Writer = os.Stderr
	crashExit              = os.Exit
)

// SetCrashRestore registers the screen cleanup run before a crash report, nil clears it
func SetCrashRestore(fn func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashRestore = fn
}

// HandleCrash is the unified panic handler that restores the screen and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	restore := crashRestore
	crashRestore = nil
	crashMu.Unlock()

	// Restore terminal to sane state before printing
	if restore != nil {
		restore()
	}

	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())
	if f, ok := crashOut.(*os.File); ok {
		_ = f.Sync()
	}

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
