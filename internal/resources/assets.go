package resources

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/giantswarm/renderenv/internal/sentinel"
)

// ErrInvalidAssetPath is returned for asset paths that are absolute or
// escape the assets directory.
const ErrInvalidAssetPath = sentinel.Error("invalid asset path")

// AssetRepository answers the engine's asset queries from the assets
// directory. The directory does not need to exist; a project without assets
// simply has none.
type AssetRepository struct {
	dir  string
	fsys fs.FS
}

// NewAssetRepository maps asset paths under dir.
func NewAssetRepository(dir string) *AssetRepository {
	return &AssetRepository{dir: dir, fsys: os.DirFS(dir)}
}

// Dir returns the assets directory.
func (a *AssetRepository) Dir() string { return a.dir }

// IsSupported reports whether asset lookups are available. Always true.
func (a *AssetRepository) IsSupported() bool { return true }

// OpenAsset opens the slash-separated asset path relative to the assets
// directory.
func (a *AssetRepository) OpenAsset(name string) (io.ReadCloser, error) {
	name = path.Clean(name)
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAssetPath, name)
	}
	f, err := a.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open asset %s: %w", name, err)
	}
	return f, nil
}

// OpenNonAsset opens a file by its filesystem path, as the engine does for
// resource files it has already resolved.
func (a *AssetRepository) OpenNonAsset(p string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Clean(p))
	if err != nil {
		return nil, fmt.Errorf("open non-asset %s: %w", p, err)
	}
	return f, nil
}

// IsFileResource reports whether p names a regular file.
func (a *AssetRepository) IsFileResource(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// List returns the sorted entry names of an asset directory. A missing
// directory lists as empty.
func (a *AssetRepository) List(dir string) ([]string, error) {
	dir = path.Clean(dir)
	if !fs.ValidPath(dir) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAssetPath, dir)
	}
	entries, err := fs.ReadDir(a.fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list assets %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
