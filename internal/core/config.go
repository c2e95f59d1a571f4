package core

import (
	"errors"
	"io"
	"os"

	"github.com/giantswarm/renderenv/internal/engine"
	"github.com/giantswarm/renderenv/internal/nativepath"
)

// Process-wide configuration keys, read through RendererConfig.LookupEnv.
const (
	// PlatformDataRootEnv names the directory holding the native engine's
	// data (fonts, native libraries, ICU data, build.prop). Required.
	PlatformDataRootEnv = "RENDERENV_PLATFORM_DATA_ROOT"

	// DebugLinkedObjectsEnv enables the native object dump on Close when set
	// to any value.
	DebugLinkedObjectsEnv = "RENDERENV_DEBUG_LINKED_OBJECTS"
)

// Environment locates the inputs of one renderer. It is never modified.
type Environment struct {
	// PlatformDir is the platform directory containing data/res.
	PlatformDir string `yaml:"platform_dir"`
	// ResDir is the project resource tree.
	ResDir string `yaml:"res_dir"`
	// AssetsDir is the project assets directory. It need not exist.
	AssetsDir string `yaml:"assets_dir"`
}

// Validate reports every empty field at once.
func (e Environment) Validate() error {
	var errs []error
	if e.PlatformDir == "" {
		errs = append(errs, errors.New("platform directory must not be empty"))
	}
	if e.ResDir == "" {
		errs = append(errs, errors.New("resource directory must not be empty"))
	}
	if e.AssetsDir == "" {
		errs = append(errs, errors.New("assets directory must not be empty"))
	}
	return errors.Join(errs...)
}

// RendererConfig holds configuration for a Renderer. All fields are
// immutable after NewRenderer.
type RendererConfig struct {
	// Bridge binds the native engine. Required.
	Bridge engine.Bridge

	// LookupEnv reads process-wide configuration. Nil means os.LookupEnv.
	LookupEnv func(key string) (string, bool)

	// Host selects the native library directory.
	Host nativepath.Host

	// DumpOutput receives the native object dump. Nil means os.Stdout.
	DumpOutput io.Writer

	// InitLockDir holds the cross-process init lock file. Empty disables the
	// file lock; the in-process engine slot is still exclusive.
	InitLockDir string

	// ThemeName is the default project theme set on the session template.
	ThemeName string
}

// Validate checks all RendererConfig invariants and returns an error
// describing every violation found.
func (c RendererConfig) Validate() error {
	var errs []error

	if c.Bridge == nil {
		errs = append(errs, ErrNoBridge)
	}
	if c.ThemeName == "" {
		errs = append(errs, errors.New("theme name must not be empty"))
	}

	return errors.Join(errs...)
}

func (c RendererConfig) lookup(key string) (string, bool) {
	if c.LookupEnv == nil {
		return os.LookupEnv(key)
	}
	return c.LookupEnv(key)
}

func (c RendererConfig) dumpOutput() io.Writer {
	if c.DumpOutput == nil {
		return os.Stdout
	}
	return c.DumpOutput
}
