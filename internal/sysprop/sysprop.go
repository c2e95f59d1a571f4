package sysprop

import (
	"fmt"
	"maps"
	"unicode/utf8"

	"github.com/magiconair/properties"
)

const (
	// ChoreographerFrameTimeKey selects whether the choreographer uses frame
	// time. It is forced off so frame callbacks read the engine's own clock.
	ChoreographerFrameTimeKey = "debug.choreographer.frametime"

	// KnownCodenamesKey lists every release codename the platform knows.
	KnownCodenamesKey = "ro.build.version.known_codenames"

	// MaxKnownCodenamesLength is the longest KnownCodenamesKey value the
	// engine's property store accepts. Platforms compiled against newer SDKs
	// ship longer lists, which the engine rejects at init
	// (https://github.com/cashapp/paparazzi/issues/486).
	MaxKnownCodenamesLength = 91
)

// Forced returns the overrides applied on top of build.prop.
func Forced() map[string]string {
	return map[string]string{
		ChoreographerFrameTimeKey: "false",
	}
}

// Load parses a build.prop-style file into a key/value map.
func Load(path string) (map[string]string, error) {
	loader := properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}
	p, err := loader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load system properties %s: %w", path, err)
	}
	return p.Map(), nil
}

// Merge returns a new map holding base with each override map applied in
// order. Inputs are not modified.
func Merge(base map[string]string, overrides ...map[string]string) map[string]string {
	out := maps.Clone(base)
	if out == nil {
		out = make(map[string]string)
	}
	for _, o := range overrides {
		maps.Copy(out, o)
	}
	return out
}

// DropOverlongCodenames returns a copy of props without KnownCodenamesKey
// when its value is longer than MaxKnownCodenamesLength characters. Shorter
// values pass through unchanged; the value is never truncated.
//
// TODO: remove once the engine ships the SDK 33 property store, which lifts
// the length limit.
func DropOverlongCodenames(props map[string]string) map[string]string {
	out := maps.Clone(props)
	if v, ok := out[KnownCodenamesKey]; ok && utf8.RuneCountInString(v) > MaxKnownCodenamesLength {
		delete(out, KnownCodenamesKey)
	}
	return out
}

// Build loads buildPropPath and produces the final engine property map.
func Build(buildPropPath string) (map[string]string, error) {
	base, err := Load(buildPropPath)
	if err != nil {
		return nil, err
	}
	return DropOverlongCodenames(Merge(base, Forced())), nil
}
