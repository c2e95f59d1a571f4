package renderenv

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/giantswarm/renderenv/internal/core"
	"github.com/giantswarm/renderenv/internal/engine"
	"github.com/giantswarm/renderenv/internal/nativepath"
	"github.com/giantswarm/renderenv/internal/resources"
	"github.com/giantswarm/renderenv/internal/session"
)

// Collaborator and template types. They are aliases so that values flow
// between renderenv and the engine binding without conversion.
type (
	// SessionParamsBuilder is the reusable template returned by Prepare.
	SessionParamsBuilder = session.ParamsBuilder
	// SessionParams is one render session's snapshot of the template.
	SessionParams = session.Params
	// Callback is the project-side collaborator the engine calls back into.
	Callback = session.Callback
	// Flag names an engine render flag.
	Flag = session.Flag
	// ResourceReference names a framework or project resource.
	ResourceReference = resources.Reference

	// Bridge binds the native rendering engine.
	Bridge = engine.Bridge
	// InitParams is what the engine receives at initialization.
	InitParams = engine.InitParams
	// Collector is optionally implemented by a Bridge that can reclaim
	// native memory on Close.
	Collector = engine.Collector
	// ObjectDumper is optionally implemented by a Bridge that can list the
	// native objects it still references.
	ObjectDumper = engine.ObjectDumper

	// Host names an operating system and CPU architecture.
	Host = nativepath.Host
)

// FlagDoNotRenderOnCreate is set on every template returned by Prepare.
const FlagDoNotRenderOnCreate = session.FlagDoNotRenderOnCreate

// Compile-time interface satisfaction check.
var _ Renderer = (*rendererWrapper)(nil)

// rendererWrapper wraps core.Renderer to implement the Renderer interface.
//
// The core.Renderer is stored as a named (unexported) field rather than
// embedded so callers cannot reach internal methods through type assertions.
type rendererWrapper struct {
	r *core.Renderer
}

// Prepare wraps core.Renderer.Prepare.
func (w *rendererWrapper) Prepare() (*SessionParamsBuilder, error) {
	return w.r.Prepare()
}

// Close wraps core.Renderer.Close.
func (w *rendererWrapper) Close() error {
	return w.r.Close()
}

// DumpDelegates wraps core.Renderer.DumpDelegates.
func (w *rendererWrapper) DumpDelegates() {
	w.r.DumpDelegates()
}

// defaultRendererConfig returns a rendererConfig populated with all default
// values. Both NewRenderer and test helpers use it.
func defaultRendererConfig() rendererConfig {
	return rendererConfig{core.RendererConfig{
		LookupEnv:   os.LookupEnv,
		Host:        nativepath.CurrentHost(),
		DumpOutput:  os.Stdout,
		InitLockDir: filepath.Join(os.TempDir(), DefaultInitLockDirName),
		ThemeName:   DefaultThemeName,
	}}
}

// NewRenderer returns an unprepared Renderer for env. callback and logger are
// handed to the engine; logger receives native-side log output once Prepare
// has registered it. This performs no I/O; call Prepare to initialize.
//
// A Bridge must be supplied with WithBridge; without one Prepare fails with
// ErrNoBridge.
//
// Panics if any option receives an invalid value. See individual With*
// functions for constraints.
//
//nolint:ireturn // Returns Renderer interface by design for testability (mockable).
func NewRenderer(env Environment, callback Callback, logger *slog.Logger, opts ...RendererOption) Renderer {
	cfg := defaultRendererConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &rendererWrapper{r: core.NewRenderer(cfg.toCoreConfig(), env, callback, logger)}
}

// NativeLibDir returns the slash-separated native library directory, relative
// to the platform data directory, used for host h.
func NativeLibDir(h Host) string {
	return nativepath.LibDir(h)
}

// CurrentHost describes the running process in the naming NativeLibDir
// expects.
func CurrentHost() Host {
	return nativepath.CurrentHost()
}
