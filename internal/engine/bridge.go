package engine

import (
	"io"
	"log/slog"

	"github.com/giantswarm/renderenv/internal/attrenum"
)

// InitParams carries everything the native engine needs to start.
type InitParams struct {
	// Properties are the merged system properties. The engine takes ownership.
	Properties map[string]string
	FontDir    string
	// NativeLibDir is the directory holding the platform's native libraries.
	NativeLibDir string
	ICUPath      string
	EnumMap      attrenum.Map
	Logger       *slog.Logger
}

// Bridge is the binding to the native rendering engine.
type Bridge interface {
	// Init starts the engine. A non-nil error means the engine rejected
	// initialization and is unusable.
	Init(p InitParams) error
	// SetLog routes subsequent native-side log output to l. It is not
	// reentrant; callers go through Handle.SetLog, which holds Lock.
	SetLog(l *slog.Logger)
}

// Collector is implemented by bridges that can reclaim native memory held
// for released engine objects.
type Collector interface {
	Collect()
}

// ObjectDumper is implemented by bridges that can list native objects still
// referenced from the engine's object table.
type ObjectDumper interface {
	DumpObjects(w io.Writer) error
}
