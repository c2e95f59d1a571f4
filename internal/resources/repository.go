package resources

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/giantswarm/renderenv/internal/fileutil"
	"github.com/giantswarm/renderenv/internal/logging"
	"github.com/giantswarm/renderenv/internal/sentinel"
)

// ErrAlreadyLoaded is returned when Load is called on a loaded repository.
const ErrAlreadyLoaded = sentinel.Error("resource repository already loaded")

// ErrNotLoaded is returned by operations that need a loaded repository.
const ErrNotLoaded = sentinel.Error("resource repository not loaded")

// Repository is a set of resource items loaded from one resource tree.
// It is populated exactly once by Load and is read-only afterwards; all read
// methods are safe for concurrent use once Load has returned.
type Repository struct {
	dir       string
	framework bool

	// mu guards loaded and items during Load and LoadPublic. Readers take the
	// read lock so the public marker update stays race-free.
	mu     sync.RWMutex
	loaded bool
	items  map[itemKey]*Item
}

// NewFramework returns an unloaded framework repository rooted at dir.
func NewFramework(dir string) *Repository {
	return &Repository{dir: dir, framework: true}
}

// NewProject returns an unloaded project repository rooted at dir.
func NewProject(dir string) *Repository {
	return &Repository{dir: dir}
}

// Dir returns the resource tree root.
func (r *Repository) Dir() string { return r.dir }

// IsFramework reports whether this is the framework repository.
func (r *Repository) IsFramework() bool { return r.framework }

// folderResult holds the entries found in one resource folder.
type folderResult struct {
	qualifiers string
	entries    []fileEntry
}

type fileEntry struct {
	key  itemKey
	path string
}

// Load walks the resource tree and populates the item set. Folders are parsed
// concurrently; any unreadable folder or malformed values file fails the
// whole load and leaves the repository unloaded.
func (r *Repository) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded {
		return fmt.Errorf("%w: %s", ErrAlreadyLoaded, r.dir)
	}
	if err := fileutil.RequireDir(r.dir); err != nil {
		return fmt.Errorf("load resources: %w", err)
	}

	dirents, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("load resources %s: %w", r.dir, err)
	}

	var folders []string
	for _, d := range dirents {
		if !d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			continue
		}
		typ, _ := splitFolder(d.Name())
		if !folderTypes[typ] {
			logging.Logger().Debug("skipping unknown resource folder", "dir", r.dir, "folder", d.Name())
			continue
		}
		folders = append(folders, d.Name())
	}
	slices.Sort(folders)

	results := make([]folderResult, len(folders))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, folder := range folders {
		g.Go(func() error {
			res, err := loadFolder(filepath.Join(r.dir, folder))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load resources %s: %w", r.dir, err)
	}

	items := make(map[itemKey]*Item)
	for _, res := range results {
		for _, e := range res.entries {
			it, ok := items[e.key]
			if !ok {
				it = &Item{Type: e.key.typ, Name: e.key.name}
				items[e.key] = it
			}
			src := Source{Qualifiers: res.qualifiers, Path: e.path}
			if !slices.Contains(it.Sources, src) {
				it.Sources = append(it.Sources, src)
			}
		}
	}

	r.items = items
	r.loaded = true
	logging.Logger().Debug("loaded resources", "dir", r.dir, "framework", r.framework, "items", len(items))
	return nil
}

// loadFolder lists the items contributed by one <type>[-qualifiers] folder.
func loadFolder(dir string) (folderResult, error) {
	typ, qualifiers := splitFolder(filepath.Base(dir))
	res := folderResult{qualifiers: qualifiers}

	files, err := os.ReadDir(dir)
	if err != nil {
		return res, fmt.Errorf("read folder: %w", err)
	}

	for _, f := range files {
		if f.IsDir() || strings.HasPrefix(f.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, f.Name())

		if typ != "values" {
			res.entries = append(res.entries, fileEntry{
				key:  itemKey{typ: typ, name: fileItemName(f.Name())},
				path: path,
			})
			continue
		}

		if !strings.EqualFold(filepath.Ext(f.Name()), ".xml") || f.Name() == publicFile {
			continue
		}
		values, err := parseValues(path)
		if err != nil {
			return res, err
		}
		for _, v := range values {
			res.entries = append(res.entries, fileEntry{
				key:  itemKey{typ: v.typ, name: v.name},
				path: path,
			})
		}
	}
	return res, nil
}

// Item looks up a single item. The returned Item is a copy.
func (r *Repository) Item(typ, name string) (Item, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[itemKey{typ: typ, name: name}]
	if !ok {
		return Item{}, false
	}
	return cloneItem(it), true
}

// Items returns copies of all items of typ, sorted by name.
func (r *Repository) Items(typ string) []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Item
	for k, it := range r.items {
		if k.typ == typ {
			out = append(out, cloneItem(it))
		}
	}
	slices.SortFunc(out, func(a, b Item) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Types returns the sorted set of resource types present.
func (r *Repository) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	for k := range r.items {
		seen[k.typ] = true
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Len returns the number of items.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Loaded reports whether Load has completed successfully.
func (r *Repository) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

// Reference returns the reference naming it in this repository.
func (r *Repository) Reference(it Item) Reference {
	return Reference{Type: it.Type, Name: it.Name, Framework: r.framework}
}

func cloneItem(it *Item) Item {
	c := *it
	c.Sources = slices.Clone(it.Sources)
	return c
}
