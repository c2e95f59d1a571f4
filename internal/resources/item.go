package resources

import "strings"

// Reference names a resource within either the framework or a project.
type Reference struct {
	Type      string
	Name      string
	Framework bool
}

// String renders the reference in @[android:]type/name form.
func (r Reference) String() string {
	var b strings.Builder
	b.WriteByte('@')
	if r.Framework {
		b.WriteString("android:")
	}
	b.WriteString(r.Type)
	b.WriteByte('/')
	b.WriteString(r.Name)
	return b.String()
}

// Source is one definition of an item for a particular qualifier set.
type Source struct {
	// Qualifiers is the folder suffix, e.g. "night-v31"; empty for the default.
	Qualifiers string
	Path       string
}

// Item is a named resource with every definition found in the tree.
type Item struct {
	Type    string
	Name    string
	Public  bool
	Sources []Source
}

type itemKey struct {
	typ  string
	name string
}

// folderTypes lists the folder types a resource tree may contain.
var folderTypes = map[string]bool{
	"anim":         true,
	"animator":     true,
	"color":        true,
	"drawable":     true,
	"font":         true,
	"interpolator": true,
	"layout":       true,
	"menu":         true,
	"mipmap":       true,
	"navigation":   true,
	"raw":          true,
	"transition":   true,
	"values":       true,
	"xml":          true,
}

// splitFolder splits "drawable-night-xhdpi" into ("drawable", "night-xhdpi").
func splitFolder(name string) (typ, qualifiers string) {
	typ, qualifiers, _ = strings.Cut(name, "-")
	return typ, qualifiers
}

// fileItemName strips the extension, treating ".9.png" as a single extension.
func fileItemName(file string) string {
	if name, ok := strings.CutSuffix(file, ".9.png"); ok {
		return name
	}
	if i := strings.IndexByte(file, '.'); i > 0 {
		return file[:i]
	}
	return file
}
