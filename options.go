package renderenv

import (
	"fmt"
	"io"
)

// requireNonEmpty panics if s is empty with a descriptive message.
func requireNonEmpty(name, s string) {
	if s == "" {
		panic(fmt.Sprintf("renderenv: %s must not be empty", name))
	}
}

// requireNonNil panics if isNil with a descriptive message.
func requireNonNil(name string, isNil bool) {
	if isNil {
		panic(fmt.Sprintf("renderenv: %s must not be nil", name))
	}
}

// RendererOption configures a Renderer during construction via NewRenderer.
//
// Several With* functions panic on invalid input (nil collaborators, empty
// names). An invalid option value is a programmer error, so it fails fast
// during construction, in the manner of [regexp.MustCompile].
type RendererOption func(*rendererConfig)

// WithBridge sets the native engine binding. Required.
// Panics if b is nil.
func WithBridge(b Bridge) RendererOption {
	requireNonNil("bridge", b == nil)
	return func(c *rendererConfig) {
		c.Bridge = b
	}
}

// WithLookupEnv replaces os.LookupEnv as the source of process-wide
// configuration (RENDERENV_PLATFORM_DATA_ROOT, RENDERENV_DEBUG_LINKED_OBJECTS).
// Panics if fn is nil.
func WithLookupEnv(fn func(key string) (string, bool)) RendererOption {
	requireNonNil("lookup function", fn == nil)
	return func(c *rendererConfig) {
		c.LookupEnv = fn
	}
}

// WithHost overrides the detected host used to pick the native library
// directory. osName and arch use the engine distribution's naming, for
// example "Mac OS X" and "aarch64".
//
// Default: CurrentHost().
//
// Panics if osName is empty.
func WithHost(osName, arch string) RendererOption {
	requireNonEmpty("host OS name", osName)
	return func(c *rendererConfig) {
		c.Host = Host{OS: osName, Arch: arch}
	}
}

// WithDumpOutput sets where the native object dump is written.
//
// Default: os.Stdout.
//
// Panics if w is nil.
func WithDumpOutput(w io.Writer) RendererOption {
	requireNonNil("dump output", w == nil)
	return func(c *rendererConfig) {
		c.DumpOutput = w
	}
}

// WithInitLockDir sets the directory holding the cross-process init lock.
// Useful in CI where several test binaries share one platform data root.
//
// Default: filepath.Join(os.TempDir(), DefaultInitLockDirName).
//
// Panics if dir is empty.
func WithInitLockDir(dir string) RendererOption {
	requireNonEmpty("init lock directory", dir)
	return func(c *rendererConfig) {
		c.InitLockDir = dir
	}
}

// WithoutInitLock disables the cross-process init lock. Initialization is
// still exclusive within the process.
func WithoutInitLock() RendererOption {
	return func(c *rendererConfig) {
		c.InitLockDir = ""
	}
}

// WithThemeName sets the project theme on the session template.
//
// Default: DefaultThemeName.
//
// Panics if name is empty.
func WithThemeName(name string) RendererOption {
	requireNonEmpty("theme name", name)
	return func(c *rendererConfig) {
		c.ThemeName = name
	}
}
