// Package renderenv prepares a native, non-reentrant UI rendering engine for
// deterministic off-device snapshot tests, and tears it down afterwards.
//
// A Renderer loads the framework and project resource repositories, resolves
// the engine's native layout under the platform data root (fonts, the
// host-specific native library directory, ICU data, build.prop), merges the
// system properties the engine starts with, initializes the process-wide
// engine and registers the engine logger. Prepare returns a
// SessionParamsBuilder: a reusable, read-only template from which each render
// session derives its parameters.
//
// # Basic Usage
//
//	import "github.com/giantswarm/renderenv"
//
//	env, err := renderenv.LoadEnvironment("testdata/renderenv.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := renderenv.NewRenderer(env, callback, logger, renderenv.WithBridge(bridge))
//	defer r.Close()
//
//	builder, err := r.Prepare()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	params, err := builder.Params()
//	// Start a render session with params...
//
// # Configuration
//
// The platform data root is read from the RENDERENV_PLATFORM_DATA_ROOT
// environment variable; Prepare fails with ErrConfig when it is missing.
// Setting RENDERENV_DEBUG_LINKED_OBJECTS makes Close print the native objects
// the engine still references, to help track leaks.
//
// # One Engine Per Process
//
// The native engine can only be initialized once per process at a time. A
// second Renderer's Prepare fails with ErrEngineInUse until the first is
// closed. Close is idempotent and invalidates every builder the renderer
// handed out.
package renderenv
