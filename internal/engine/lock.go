package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"

	"github.com/giantswarm/renderenv/internal/fileutil"
)

// bridgeMu guards calls into the engine that must not overlap.
var bridgeMu sync.Mutex

// Lock acquires the process-wide engine lock.
func Lock() { bridgeMu.Lock() }

// Unlock releases the process-wide engine lock.
func Unlock() { bridgeMu.Unlock() }

// initLockPath names the lock file for a native library directory. Hashing
// keeps the name short and filesystem-safe.
func initLockPath(lockDir, nativeLibDir string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(nativeLibDir)))
	return filepath.Join(lockDir, "renderenv-"+hex.EncodeToString(sum[:])[:16]+".lock")
}

// acquireInitLock blocks until it holds the exclusive init lock for
// nativeLibDir.
func acquireInitLock(lockDir, nativeLibDir string) (*flock.Flock, error) {
	if err := fileutil.EnsureDir(lockDir); err != nil {
		return nil, fmt.Errorf("prepare init lock dir: %w", err)
	}

	fl := flock.New(initLockPath(lockDir, nativeLibDir))
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("acquiring init lock %s: %w", fl.Path(), err)
	}
	return fl, nil
}

// releaseInitLock releases the lock and closes its descriptor. The lock file
// stays on disk; removing it could invalidate a lock another process has just
// taken. Errors are logged at debug level only.
func releaseInitLock(logger *slog.Logger, fl *flock.Flock) {
	if fl != nil {
		if err := fl.Close(); err != nil {
			logger.Debug("failed to release init lock", "path", fl.Path(), "err", err)
		}
	}
}
