package core

import (
	"github.com/giantswarm/renderenv/internal/engine"
	"github.com/giantswarm/renderenv/internal/resources"
	"github.com/giantswarm/renderenv/internal/sentinel"
	"github.com/giantswarm/renderenv/internal/session"
)

// Error classes. Every configuration or engine initialization failure returned
// by Prepare matches exactly one of these under errors.Is.
const (
	// ErrConfig marks a configuration problem: something the caller forgot
	// or set wrong. Retrying without changing configuration will not help.
	ErrConfig = sentinel.Error("renderenv configuration error")

	// ErrEngineInit marks the native engine refusing to initialize.
	ErrEngineInit = sentinel.Error("renderenv engine initialization error")
)

const (
	// ErrMissingPlatformDataRoot is returned by Prepare when
	// PlatformDataRootEnv is unset or empty.
	ErrMissingPlatformDataRoot = sentinel.Error("missing platform data root (" + PlatformDataRootEnv + ")")

	// ErrNoBridge is returned by Prepare when no engine binding is configured.
	ErrNoBridge = sentinel.Error("no native engine bridge configured")

	// ErrAlreadyPrepared is returned by Prepare on a prepared renderer.
	ErrAlreadyPrepared = sentinel.Error("renderer already prepared")

	// ErrRendererClosed is returned by Prepare after Close.
	ErrRendererClosed = sentinel.Error("renderer closed")
)

// Errors re-exported from lower layers so the public API imports only core.
const (
	ErrEngineInUse        = engine.ErrEngineInUse
	ErrEngineInitFailed   = engine.ErrInitFailed
	ErrHandleReleased     = engine.ErrHandleReleased
	ErrBuilderInvalidated = session.ErrInvalidated
	ErrInvalidAssetPath   = resources.ErrInvalidAssetPath
)
