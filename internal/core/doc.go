// Package core provides the internal implementation of renderenv.
// It contains the Renderer, a three-state machine (uninitialized, prepared,
// closed) that loads the resource repositories, resolves the native layout,
// initializes the process-wide engine handle and hands out the session
// parameter template, and RendererConfig with its validation.
package core
