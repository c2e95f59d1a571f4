package renderenv

import "github.com/giantswarm/renderenv/internal/core"

// rendererConfig holds configuration for a Renderer. This unexported type
// wraps core.RendererConfig via embedding, keeping internal/core types out of
// the public API signature.
type rendererConfig struct {
	core.RendererConfig
}

// toCoreConfig returns the embedded core.RendererConfig.
func (c rendererConfig) toCoreConfig() core.RendererConfig {
	return c.RendererConfig
}
