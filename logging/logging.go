// Package logging provides the process-wide default structured logger for
// the superimposition engine. Unlike a platform service, this engine is an
// embeddable library with no init-order contract of its own, so it skips
// the Logger-interface indirection the monitoring/logging package uses in
// favor of exposing *zap.SugaredLogger directly — callers who already use
// zap (as config.Option/WithLogger expects) pay no adapter cost, and the
// package-level default keeps unconfigured use silent rather than noisy.
package logging

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu      sync.RWMutex
	current = zap.NewNop().Sugar()
)

// SetDefault replaces the process-wide default logger. A nil logger is a
// no-op, leaving the previous default (or the initial no-op logger) in
// place.
func SetDefault(l *zap.SugaredLogger) {
	if l == nil {
		return
	}
	mu.Lock()
	current = l
	mu.Unlock()
}

// Default returns the process-wide default logger, a no-op sink until
// SetDefault is called.
func Default() *zap.SugaredLogger {
	mu.RLock()
	l := current
	mu.RUnlock()
	return l
}

// OrDefault returns l if non-nil, otherwise the process-wide default —
// the pattern used by orchestrator to resolve a config.Config's optional
// Logger field.
func OrDefault(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l != nil {
		return l
	}
	return Default()
}
