package plugin

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger   *zap.Logger
	loggerMu sync.RWMutex
)

// Logger returns the bridge's logger. It is a no-op logger unless
// SetLogger was called or logging was enabled through the environment
// (see LADSPAGO_LOG in the package documentation of config handling).
func Logger() *zap.Logger {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// SetLogger replaces the bridge's logger. Passing nil restores the no-op
// logger. Intended for plugin authors who want bridge diagnostics routed
// into their own logging setup.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}
