package engine

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/giantswarm/renderenv/internal/logging"
	"github.com/giantswarm/renderenv/internal/sentinel"
)

const (
	// ErrEngineInUse is returned by Acquire while another handle is live.
	ErrEngineInUse = sentinel.Error("native engine already initialized in this process")

	// ErrInitFailed is returned by Acquire when the bridge rejects Init.
	ErrInitFailed = sentinel.Error("native engine initialization failed")

	// ErrHandleReleased is returned when a released handle is used.
	ErrHandleReleased = sentinel.Error("native engine handle already released")
)

// Process-wide engine slot. slotMu serializes Acquire and Release so that at
// most one handle is live and initialization never overlaps itself.
var (
	slotMu  sync.Mutex
	current *Handle
)

// Handle is a live reference to the initialized native engine.
type Handle struct {
	bridge   Bridge
	released atomic.Bool
}

// Acquire initializes bridge with p and stores the handle as the process-wide
// engine. If lockDir is non-empty, an advisory file lock keyed by
// p.NativeLibDir is held in lockDir for the duration of Init.
//
// On failure no handle is stored and the slot stays empty.
func Acquire(bridge Bridge, p InitParams, lockDir string) (*Handle, error) {
	if bridge == nil {
		return nil, fmt.Errorf("%w: nil bridge", ErrInitFailed)
	}

	slotMu.Lock()
	defer slotMu.Unlock()

	if current != nil {
		return nil, ErrEngineInUse
	}

	if lockDir != "" {
		fl, err := acquireInitLock(lockDir, p.NativeLibDir)
		if err != nil {
			return nil, err
		}
		defer releaseInitLock(logging.Logger(), fl)
	}

	logging.Logger().Debug("initializing native engine",
		"native_lib_dir", p.NativeLibDir, "font_dir", p.FontDir, "icu", p.ICUPath,
		"properties", len(p.Properties), "enum_attrs", len(p.EnumMap))

	if err := bridge.Init(p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}

	current = &Handle{bridge: bridge}
	return current, nil
}

// Current returns the live process-wide handle, if any.
func Current() (*Handle, bool) {
	slotMu.Lock()
	defer slotMu.Unlock()
	return current, current != nil
}

// Available reports whether h has not been released.
func (h *Handle) Available() bool {
	return h != nil && !h.released.Load()
}

// Bridge returns the engine binding while h is available.
func (h *Handle) Bridge() (Bridge, bool) {
	if !h.Available() {
		return nil, false
	}
	return h.bridge, true
}

// SetLog registers l as the engine's log sink. Registration is serialized
// across the process with Lock.
func (h *Handle) SetLog(l *slog.Logger) error {
	if !h.Available() {
		return ErrHandleReleased
	}
	Lock()
	defer Unlock()
	h.bridge.SetLog(l)
	return nil
}

// Release empties the process-wide slot. Releasing twice returns
// ErrHandleReleased; the slot is only cleared if it still holds h.
func (h *Handle) Release() error {
	if h == nil || !h.released.CompareAndSwap(false, true) {
		return ErrHandleReleased
	}

	slotMu.Lock()
	defer slotMu.Unlock()
	if current == h {
		current = nil
	}
	return nil
}
