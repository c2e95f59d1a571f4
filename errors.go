package renderenv

import "github.com/giantswarm/renderenv/internal/core"

// Error classes. Every configuration or engine initialization failure from
// Prepare matches one of these with errors.Is, so callers can tell "you forgot
// to configure something" from "the native engine rejected initialization".
const (
	// ErrConfig marks a configuration error. It is never worth retrying
	// without changing configuration.
	ErrConfig = core.ErrConfig

	// ErrEngineInit marks a native engine initialization error.
	ErrEngineInit = core.ErrEngineInit
)

// Sentinel errors for error inspection with errors.Is.
// These are immutable constants safe for use in wrapped error chain comparison.
const (
	// ErrMissingPlatformDataRoot is returned by Prepare when
	// RENDERENV_PLATFORM_DATA_ROOT is unset or empty. Matches ErrConfig.
	ErrMissingPlatformDataRoot = core.ErrMissingPlatformDataRoot

	// ErrNoBridge is returned by Prepare when no Bridge was configured with
	// WithBridge. Matches ErrConfig.
	ErrNoBridge = core.ErrNoBridge

	// ErrEngineInUse is returned by Prepare while another Renderer in the
	// process holds the native engine. Matches ErrEngineInit.
	ErrEngineInUse = core.ErrEngineInUse

	// ErrEngineInitFailed is returned by Prepare when Bridge.Init fails.
	// The Bridge's error is wrapped alongside it. Matches ErrEngineInit.
	ErrEngineInitFailed = core.ErrEngineInitFailed

	// ErrAlreadyPrepared is returned by Prepare on a prepared Renderer.
	ErrAlreadyPrepared = core.ErrAlreadyPrepared

	// ErrRendererClosed is returned by Prepare after Close.
	ErrRendererClosed = core.ErrRendererClosed

	// ErrBuilderInvalidated is returned by SessionParamsBuilder.Params once
	// the Renderer that produced the builder has been closed.
	ErrBuilderInvalidated = core.ErrBuilderInvalidated

	// ErrInvalidAssetPath is returned for asset paths that are absolute or
	// escape the assets directory.
	ErrInvalidAssetPath = core.ErrInvalidAssetPath
)
