// Package testutil provides shared fixtures for renderenv tests: an on-disk
// platform and project layout, and fake engine collaborators.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Platform is an on-disk fixture of everything Prepare reads.
type Platform struct {
	// Root is the platform data root (RENDERENV_PLATFORM_DATA_ROOT).
	Root        string
	PlatformDir string
	ResDir      string
	AssetsDir   string
}

// LongCodenames is a known_codenames value longer than the engine accepts.
var LongCodenames = strings.Repeat("Tiramisu,", 12)

// NewPlatform writes a minimal but complete fixture under t.TempDir().
func NewPlatform(t *testing.T) Platform {
	t.Helper()
	base := t.TempDir()
	p := Platform{
		Root:        filepath.Join(base, "platform-data"),
		PlatformDir: filepath.Join(base, "platform"),
		ResDir:      filepath.Join(base, "project", "res"),
		AssetsDir:   filepath.Join(base, "project", "assets"),
	}

	WriteFiles(t, p.PlatformDir, map[string]string{
		"data/res/values/strings.xml": `<resources>
    <string name="ok">OK</string>
    <string name="cancel">Cancel</string>
</resources>`,
		"data/res/values/themes.xml": `<resources>
    <style name="Theme.Material" />
</resources>`,
		"data/res/values/public.xml": `<resources>
    <public type="string" name="ok" id="0x0104000a" />
    <public type="style" name="Theme.Material" id="0x01030224" />
</resources>`,
		"data/res/values/attrs.xml": `<resources>
    <attr name="orientation">
        <enum name="horizontal" value="0" />
        <enum name="vertical" value="1" />
    </attr>
</resources>`,
		"data/res/layout/simple_list_item_1.xml": `<TextView />`,
	})

	WriteFiles(t, p.Root, map[string]string{
		"data/build.prop": strings.Join([]string{
			"ro.build.version.sdk=31",
			"debug.choreographer.frametime=true",
			"ro.build.version.known_codenames=" + LongCodenames,
		}, "\n"),
	})

	WriteFiles(t, p.ResDir, map[string]string{
		"values/strings.xml":       `<resources><string name="app_name">Sample</string></resources>`,
		"values/themes.xml":        `<resources><style name="AppTheme" parent="Theme.Material" /></resources>`,
		"layout/activity_main.xml": `<LinearLayout />`,
	})

	WriteFiles(t, p.AssetsDir, map[string]string{
		"fonts/Inter.ttf": "font",
	})

	return p
}

// WriteFiles writes files (slash-separated path relative to dir → content).
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create fixture dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write fixture %s: %v", rel, err)
		}
	}
}

// Lookup returns a LookupEnv function backed by a fixed map.
func Lookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}
