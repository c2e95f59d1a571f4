package nativepath

import (
	"runtime"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Host identifies the operating system and CPU architecture used to pick the
// native library directory.
type Host struct {
	OS   string
	Arch string
}

// CurrentHost describes the running process in engine distribution naming.
func CurrentHost() Host {
	return hostFor(runtime.GOOS, runtime.GOARCH)
}

func hostFor(goos, goarch string) Host {
	h := Host{OS: goos, Arch: goarch}

	switch goos {
	case "windows":
		h.OS = "Windows"
	case "darwin":
		h.OS = "Mac OS X"
	case "linux":
		h.OS = "Linux"
	}

	switch goarch {
	case "amd64":
		h.Arch = "x86_64"
	case "386":
		h.Arch = "x86"
	case "arm64":
		h.Arch = "aarch64"
	}

	return h
}

// Native library directory labels, relative to the platform data directory.
const (
	LibDirWindows  = "win/lib64"
	LibDirMacIntel = "mac/lib64"
	LibDirMacArm   = "mac-arm/lib64"
	LibDirLinux    = "linux/lib64"
)

// LibDir returns the slash-separated native library directory for h.
//
//	OS prefix   arch prefix   result
//	windows     any           win/lib64
//	mac         x86           mac/lib64
//	mac         other         mac-arm/lib64
//	other       any           linux/lib64
func LibDir(h Host) string {
	// A Caser is stateful and must not be shared between goroutines.
	lower := cases.Lower(language.AmericanEnglish)

	osName := lower.String(h.OS)
	switch {
	case strings.HasPrefix(osName, "windows"):
		return LibDirWindows
	case strings.HasPrefix(osName, "mac"):
		if strings.HasPrefix(lower.String(h.Arch), "x86") {
			return LibDirMacIntel
		}
		return LibDirMacArm
	default:
		return LibDirLinux
	}
}
