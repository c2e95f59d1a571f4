package nativepath

import (
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	root := filepath.Join("opt", "platform")
	got := Resolve(root, Host{OS: "Mac OS X", Arch: "aarch64"})

	want := Layout{
		DataDir:      filepath.Join(root, "data"),
		FontDir:      filepath.Join(root, "data", "fonts"),
		NativeLibDir: filepath.Join(root, "data", "mac-arm", "lib64"),
		ICUPath:      filepath.Join(root, "data", "icu", "icudt68l.dat"),
		BuildProp:    filepath.Join(root, "data", "build.prop"),
	}
	if got != want {
		t.Errorf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestFrameworkPaths(t *testing.T) {
	t.Parallel()

	platform := filepath.Join("sdk", "android-31")

	if got, want := FrameworkResDir(platform), filepath.Join(platform, "data", "res"); got != want {
		t.Errorf("FrameworkResDir() = %q, want %q", got, want)
	}
	if got, want := AttrsPath(platform), filepath.Join(platform, "data", "res", "values", "attrs.xml"); got != want {
		t.Errorf("AttrsPath() = %q, want %q", got, want)
	}
}
