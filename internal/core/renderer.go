package core

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/giantswarm/renderenv/internal/attrenum"
	"github.com/giantswarm/renderenv/internal/engine"
	"github.com/giantswarm/renderenv/internal/logging"
	"github.com/giantswarm/renderenv/internal/nativepath"
	"github.com/giantswarm/renderenv/internal/resources"
	"github.com/giantswarm/renderenv/internal/sentinel"
	"github.com/giantswarm/renderenv/internal/session"
	"github.com/giantswarm/renderenv/internal/sysprop"
)

// rendererState represents the lifecycle state of a Renderer.
type rendererState uint32

const (
	rendererUninitialized rendererState = iota // Zero value; NewRenderer returns in this state
	rendererPrepared                           // Engine live, builder handed out
	rendererClosed                             // Terminal
)

// String returns the name of the state.
func (s rendererState) String() string {
	switch s {
	case rendererUninitialized:
		return "uninitialized"
	case rendererPrepared:
		return "prepared"
	case rendererClosed:
		return "closed"
	default:
		return fmt.Sprintf("rendererState(%d)", uint32(s))
	}
}

// Renderer prepares the native engine for one test run and tears it down
// afterwards. It is safe for concurrent use; Prepare and Close are serialized
// per renderer, while the engine itself is guarded process-wide by the engine
// package.
type Renderer struct {
	cfg      RendererConfig
	env      Environment
	callback session.Callback
	logger   *slog.Logger

	// mu serializes Prepare and Close on this renderer.
	mu    sync.Mutex
	state rendererState

	// handle is nil until Prepare succeeds. After Close it keeps the released
	// handle, whose Available reports false.
	handle  *engine.Handle
	builder *session.ParamsBuilder
}

// NewRenderer returns an uninitialized Renderer. It performs no I/O; all
// validation happens in Prepare so configuration problems surface as
// ErrConfig errors.
func NewRenderer(cfg RendererConfig, env Environment, callback session.Callback, logger *slog.Logger) *Renderer {
	return &Renderer{cfg: cfg, env: env, callback: callback, logger: logger}
}

// validate checks everything Prepare needs from the caller.
func (r *Renderer) validate() error {
	errs := []error{r.cfg.Validate(), r.env.Validate()}
	if r.callback == nil {
		errs = append(errs, errors.New("callback must not be nil"))
	}
	if r.logger == nil {
		errs = append(errs, errors.New("engine logger must not be nil"))
	}
	return errors.Join(errs...)
}

// Prepare loads the resource repositories, initializes the native engine and
// registers the engine logger, then returns the session parameter template.
//
// Failures are terminal for the call and leave the renderer uninitialized
// with no engine held:
//   - configuration problems match ErrConfig,
//   - engine refusals (including another live engine) match ErrEngineInit,
//   - I/O and parse failures are returned wrapped, matching neither.
//
// Prepare on a prepared renderer returns ErrAlreadyPrepared; after Close it
// returns ErrRendererClosed.
func (r *Renderer) Prepare() (_ *session.ParamsBuilder, retErr error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case rendererPrepared:
		return nil, ErrAlreadyPrepared
	case rendererClosed:
		return nil, ErrRendererClosed
	case rendererUninitialized:
	}

	if err := r.validate(); err != nil {
		return nil, sentinel.Classify(ErrConfig, err)
	}
	root, ok := r.cfg.lookup(PlatformDataRootEnv)
	if !ok || root == "" {
		return nil, sentinel.Classify(ErrConfig, ErrMissingPlatformDataRoot)
	}

	log := logging.Logger().With("platform_dir", r.env.PlatformDir, "res_dir", r.env.ResDir)

	builder, err := r.loadSession()
	if err != nil {
		return nil, err
	}

	layout := nativepath.Resolve(root, r.cfg.Host)
	props, err := sysprop.Build(layout.BuildProp)
	if err != nil {
		return nil, fmt.Errorf("build system properties: %w", err)
	}
	enums, err := attrenum.Load(nativepath.AttrsPath(r.env.PlatformDir))
	if err != nil {
		return nil, fmt.Errorf("load attribute enums: %w", err)
	}

	h, err := engine.Acquire(r.cfg.Bridge, engine.InitParams{
		Properties:   props,
		FontDir:      layout.FontDir,
		NativeLibDir: layout.NativeLibDir,
		ICUPath:      layout.ICUPath,
		EnumMap:      enums,
		Logger:       r.logger,
	}, r.cfg.InitLockDir)
	if err != nil {
		return nil, sentinel.Classify(ErrEngineInit, err)
	}
	// The handle is released on every failing path below.
	defer func() {
		if retErr == nil {
			return
		}
		if relErr := h.Release(); relErr != nil {
			log.Warn("failed to release engine after prepare error", "error", relErr)
		}
	}()

	if err := h.SetLog(r.logger); err != nil {
		return nil, sentinel.Classify(ErrEngineInit, fmt.Errorf("register engine logger: %w", err))
	}

	r.handle = h
	r.builder = builder
	r.state = rendererPrepared

	log.Info("native engine prepared",
		"native_lib_dir", layout.NativeLibDir,
		"framework_items", builder.FrameworkResources().Len(),
		"project_items", builder.ProjectResources().Len())
	return builder, nil
}

// loadSession loads both repositories and assembles the session template.
func (r *Renderer) loadSession() (*session.ParamsBuilder, error) {
	framework := resources.NewFramework(nativepath.FrameworkResDir(r.env.PlatformDir))
	if err := framework.Load(); err != nil {
		return nil, fmt.Errorf("load framework resources: %w", err)
	}
	if _, err := framework.LoadPublic(r.logger); err != nil {
		return nil, fmt.Errorf("load framework public resources: %w", err)
	}

	project := resources.NewProject(r.env.ResDir)
	if err := project.Load(); err != nil {
		return nil, fmt.Errorf("load project resources: %w", err)
	}

	return session.NewParamsBuilder(session.BuilderParams{
		Callback:           r.callback,
		Logger:             r.logger,
		FrameworkResources: framework,
		ProjectResources:   project,
		Assets:             resources.NewAssetRepository(r.env.AssetsDir),
	}).
		PlusFlag(session.FlagDoNotRenderOnCreate, true).
		WithTheme(r.cfg.ThemeName, true), nil
}

// Close releases the engine, forces reclamation of native-bound memory and,
// when DebugLinkedObjectsEnv is set, dumps the native objects still linked.
// Builders returned by Prepare are invalidated.
//
// Close is idempotent; only the first call on a prepared renderer does work.
// Closing an uninitialized renderer moves it to the closed state.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.state
	r.state = rendererClosed
	if prev != rendererPrepared {
		return nil
	}

	r.builder.Invalidate()
	err := r.handle.Release()

	engine.Reclaim(r.cfg.Bridge)
	r.DumpDelegates()

	if err != nil {
		return fmt.Errorf("release native engine: %w", err)
	}
	logging.Logger().Debug("native engine released")
	return nil
}

// DumpDelegates prints the native objects still referenced by the engine
// when DebugLinkedObjectsEnv is set, and does nothing otherwise. Write
// failures are logged, never returned.
func (r *Renderer) DumpDelegates() {
	if _, ok := r.cfg.lookup(DebugLinkedObjectsEnv); !ok {
		return
	}
	if err := engine.Dump(r.cfg.dumpOutput(), r.cfg.Bridge); err != nil {
		logging.Logger().Warn("failed to dump native objects", "error", err)
	}
}

// HandleAvailable reports whether the renderer holds a live engine handle.
func (r *Renderer) HandleAvailable() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.handle.Available()
}

// State returns the lifecycle state name.
func (r *Renderer) State() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.String()
}
