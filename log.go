package renderenv

import (
	"log/slog"

	"github.com/giantswarm/renderenv/internal/logging"
)

// SetLogger replaces the package-level logger used for renderenv's own
// diagnostics (resource loading, engine lifecycle). It does not affect the
// engine logger passed to NewRenderer, which receives native-side output.
//
// If l is nil, the logger resets to the default: slog.Default() with a
// "component" attribute, re-derived on the next use and then cached. Call
// SetLogger(nil) after slog.SetDefault() to pick up changes.
//
// SetLogger is safe to call concurrently with other renderenv operations. For
// a strict happens-before guarantee, call it before starting goroutines that
// use the library (e.g., in TestMain before m.Run).
//
// Example:
//
//	renderenv.SetLogger(myLogger.With("component", "renderenv"))
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}
