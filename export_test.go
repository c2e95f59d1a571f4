package renderenv

import "io"

// ConfigSnapshot holds a copy of rendererConfig fields for test assertions.
// Exported only via export_test.go so that the _test package can verify
// option closures actually mutate the config without accessing internals.
type ConfigSnapshot struct {
	Bridge      Bridge
	HasLookup   bool
	Host        Host
	DumpOutput  io.Writer
	InitLockDir string
	ThemeName   string
}

// ApplyOptionsForTesting creates a default rendererConfig, applies the given
// options, and returns a ConfigSnapshot of the result.
func ApplyOptionsForTesting(opts ...RendererOption) ConfigSnapshot {
	cfg := defaultRendererConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return ConfigSnapshot{
		Bridge:      cfg.Bridge,
		HasLookup:   cfg.LookupEnv != nil,
		Host:        cfg.Host,
		DumpOutput:  cfg.DumpOutput,
		InitLockDir: cfg.InitLockDir,
		ThemeName:   cfg.ThemeName,
	}
}
