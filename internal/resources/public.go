package resources

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const publicFile = "public.xml"

// LoadPublic marks the items listed in values/public.xml as public. Problems
// reading the file are reported to log and otherwise ignored: a framework
// without public declarations still renders, only without the public subset.
// It returns the number of items marked.
func (r *Repository) LoadPublic(log *slog.Logger) (int, error) {
	if !r.framework {
		return 0, fmt.Errorf("public resources only exist in the framework repository, not %s", r.dir)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loaded {
		return 0, ErrNotLoaded
	}

	path := filepath.Join(r.dir, "values", publicFile)
	decls, err := readPublic(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn("framework public resources not found", "path", path)
		return 0, nil
	case err != nil:
		log.Error("failed to read framework public resources", "path", path, "error", err)
		return 0, nil
	}

	marked := 0
	for _, k := range decls {
		if it, ok := r.items[k]; ok && !it.Public {
			it.Public = true
			marked++
		}
	}
	return marked, nil
}

// readPublic returns the (type, name) pairs declared by <public> elements.
func readPublic(path string) ([]itemKey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var keys []itemKey
	dec := xml.NewDecoder(f)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return keys, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Local != "public" {
			continue
		}
		typ, name := attrValue(el, "type"), attrValue(el, "name")
		if typ != "" && name != "" {
			keys = append(keys, itemKey{typ: typ, name: name})
		}
	}
}

// PublicItems returns copies of the public items of typ, sorted by name.
func (r *Repository) PublicItems(typ string) []Item {
	items := r.Items(typ)
	out := items[:0]
	for _, it := range items {
		if it.Public {
			out = append(out, it)
		}
	}
	return out
}
