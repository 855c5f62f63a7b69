package internal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	globalDebugEnabled bool
	globalDebugOutput  io.Writer = os.Stderr
	debugMutex         sync.Mutex
)

// EnableDebug turns on internal debug output if the config asks for it. It
// never turns debug output off.
func EnableDebug(cfg *Config) {
	if cfg == nil || cfg.Debug == nil || !*cfg.Debug {
		return
	}
	EnableDebugForce()
}

// EnableDebugForce turns on internal debug output regardless of config.
func EnableDebugForce() {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	globalDebugEnabled = true
}

// SetDebugOutput redirects internal debug output.
func SetDebugOutput(w io.Writer) {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	globalDebugOutput = w
}

// Debugf writes an internal debug line when debug output is enabled. This is
// for diagnosing ljmcheck itself, not for user-facing logs.
func Debugf(format string, args ...any) {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	if !globalDebugEnabled {
		return
	}
	fmt.Fprintf(globalDebugOutput, "[ljmcheck debug] "+format+"\n", args...)
}
