package checked

import (
	"sync"

	"go.uber.org/zap"
)

var (
	nop      = zap.NewNop()
	logger   *zap.Logger
	loggerMu sync.RWMutex
)

// Logger returns the logger used by contexts that have none of their own.
// It is a no-op logger unless SetDefaultLogger was called.
func Logger() *zap.Logger {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l == nil {
		return nop
	}
	return l
}

// SetDefaultLogger sets the logger used by contexts that have none of their
// own. A nil l restores the no-op logger.
func SetDefaultLogger(l *zap.Logger) {
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}
