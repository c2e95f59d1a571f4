package renderenv

import "github.com/giantswarm/renderenv/internal/core"

// Default configuration values for NewRenderer.
const (
	// DefaultThemeName is the project theme set on the session template.
	DefaultThemeName = "AppTheme"

	// DefaultInitLockDirName is the directory name under the system temp
	// directory holding the cross-process engine init locks. The full path
	// is computed as filepath.Join(os.TempDir(), DefaultInitLockDirName).
	DefaultInitLockDirName = "renderenv"
)

// Process-wide configuration keys read from the environment.
const (
	// PlatformDataRootEnv names the platform data root. Required.
	PlatformDataRootEnv = core.PlatformDataRootEnv

	// DebugLinkedObjectsEnv enables the native object dump when set.
	DebugLinkedObjectsEnv = core.DebugLinkedObjectsEnv
)
