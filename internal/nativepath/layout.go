package nativepath

import "path/filepath"

const (
	// ICUDataFile is the ICU data file name shipped with the engine.
	ICUDataFile = "icudt68l.dat"

	dataDirName  = "data"
	fontsDirName = "fonts"
	icuDirName   = "icu"
	buildProp    = "build.prop"
)

// Layout holds the absolute locations of the engine's native inputs, all
// rooted under the platform data root.
type Layout struct {
	DataDir      string
	FontDir      string
	NativeLibDir string
	ICUPath      string
	BuildProp    string
}

// Resolve computes the native layout under root for host h.
func Resolve(root string, h Host) Layout {
	data := filepath.Join(root, dataDirName)
	return Layout{
		DataDir:      data,
		FontDir:      filepath.Join(data, fontsDirName),
		NativeLibDir: filepath.Join(data, filepath.FromSlash(LibDir(h))),
		ICUPath:      filepath.Join(data, icuDirName, ICUDataFile),
		BuildProp:    filepath.Join(data, buildProp),
	}
}

// FrameworkResDir returns the framework resource tree inside platformDir.
func FrameworkResDir(platformDir string) string {
	return filepath.Join(platformDir, dataDirName, "res")
}

// AttrsPath returns the attribute definition file inside platformDir.
func AttrsPath(platformDir string) string {
	return filepath.Join(FrameworkResDir(platformDir), "values", "attrs.xml")
}
