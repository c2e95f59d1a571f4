// Package logging holds the package-level diagnostics logger shared by every
// renderenv package. It is distinct from the engine logger a caller passes to
// Prepare, which receives native-side output.
package logging

import (
	"log/slog"
	"sync/atomic"
)

// logger is the custom logger set via SetLogger. A nil value means Logger
// falls back to the cached default derived from slog.Default().
var logger atomic.Pointer[slog.Logger]

// defaultLogger caches slog.Default() with the renderenv component attribute
// so it is not re-created on every Logger() call. SetLogger(nil) clears it so
// a later slog.SetDefault() is picked up.
var defaultLogger atomic.Pointer[slog.Logger]

// Logger returns the current package-level logger. It is safe to call from
// multiple goroutines and never returns nil.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	l := newDefaultLogger()
	// If another goroutine already cached a logger, use theirs.
	if defaultLogger.CompareAndSwap(nil, l) {
		return l
	}
	if l2 := defaultLogger.Load(); l2 != nil {
		return l2
	}
	return l
}

func newDefaultLogger() *slog.Logger {
	return slog.Default().With("component", "renderenv")
}

// SetLogger replaces the package-level logger. If l is nil, the logger resets
// to slog.Default() with the component attribute, re-derived on the next
// Logger() call.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
	defaultLogger.Store(nil)
}
