package renderenv

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/giantswarm/renderenv/internal/core"
)

// Environment locates the platform, project resources and assets of a
// Renderer.
type Environment = core.Environment

// LoadEnvironment reads an Environment from a YAML file:
//
//	platform_dir: /opt/platform/android-31
//	res_dir: src/main/res
//	assets_dir: src/main/assets
//
// Relative paths resolve against the directory containing the file. Every
// field is required.
func LoadEnvironment(path string) (Environment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Environment{}, fmt.Errorf("read environment %s: %w", path, err)
	}

	var env Environment
	if err := yaml.Unmarshal(data, &env); err != nil {
		return Environment{}, fmt.Errorf("parse environment %s: %w", path, err)
	}
	if err := env.Validate(); err != nil {
		return Environment{}, fmt.Errorf("invalid environment %s: %w", path, err)
	}

	base := filepath.Dir(path)
	env.PlatformDir = resolvePath(base, env.PlatformDir)
	env.ResDir = resolvePath(base, env.ResDir)
	env.AssetsDir = resolvePath(base, env.AssetsDir)
	return env, nil
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
