package engine

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// Tests in this file share the process-wide slot and must not run in parallel.

var errRejected = errors.New("rejected by native engine")

// fakeBridge records calls and detects overlapping SetLog calls.
type fakeBridge struct {
	initErr error

	initCalls atomic.Int32
	setLogs   atomic.Int32
	active    atomic.Int32
	overlap   atomic.Bool
	collected atomic.Bool

	mu     sync.Mutex
	params InitParams
	log    *slog.Logger
}

func (b *fakeBridge) Init(p InitParams) error {
	b.initCalls.Add(1)
	b.mu.Lock()
	b.params = p
	b.mu.Unlock()
	return b.initErr
}

func (b *fakeBridge) SetLog(l *slog.Logger) {
	if b.active.Add(1) > 1 {
		b.overlap.Store(true)
	}
	// Widen the window so an unserialized caller would overlap.
	time.Sleep(time.Millisecond)
	b.log = l
	b.setLogs.Add(1)
	b.active.Add(-1)
}

func (b *fakeBridge) Collect() { b.collected.Store(true) }

type dumpingBridge struct {
	fakeBridge
	objects string
}

func (b *dumpingBridge) DumpObjects(w io.Writer) error {
	_, err := io.WriteString(w, b.objects)
	return err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func releaseCurrent(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		if h, ok := Current(); ok {
			_ = h.Release()
		}
	})
}

func TestAcquireRelease(t *testing.T) {
	releaseCurrent(t)
	bridge := &fakeBridge{}

	h, err := Acquire(bridge, InitParams{NativeLibDir: "lib", Properties: map[string]string{"k": "v"}}, "")
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if !h.Available() {
		t.Fatal("Available() = false after Acquire")
	}
	if cur, ok := Current(); !ok || cur != h {
		t.Fatalf("Current() = %v, %v; want the acquired handle", cur, ok)
	}
	if bridge.params.Properties["k"] != "v" {
		t.Errorf("Init received properties %v", bridge.params.Properties)
	}

	if err := h.Release(); err != nil {
		t.Fatalf("Release() error: %v", err)
	}
	if h.Available() {
		t.Error("Available() = true after Release")
	}
	if _, ok := h.Bridge(); ok {
		t.Error("Bridge() available after Release")
	}
	if _, ok := Current(); ok {
		t.Error("Current() still set after Release")
	}
	if err := h.Release(); !errors.Is(err, ErrHandleReleased) {
		t.Errorf("second Release() error = %v, want ErrHandleReleased", err)
	}
	if err := h.SetLog(discardLogger()); !errors.Is(err, ErrHandleReleased) {
		t.Errorf("SetLog() after Release error = %v, want ErrHandleReleased", err)
	}
}

func TestAcquireTwiceFails(t *testing.T) {
	releaseCurrent(t)

	if _, err := Acquire(&fakeBridge{}, InitParams{}, ""); err != nil {
		t.Fatalf("first Acquire() error: %v", err)
	}

	second := &fakeBridge{}
	if _, err := Acquire(second, InitParams{}, ""); !errors.Is(err, ErrEngineInUse) {
		t.Fatalf("second Acquire() error = %v, want ErrEngineInUse", err)
	}
	if second.initCalls.Load() != 0 {
		t.Error("second Acquire() initialized the engine")
	}
}

func TestAcquireInitFailureLeavesSlotEmpty(t *testing.T) {
	releaseCurrent(t)

	h, err := Acquire(&fakeBridge{initErr: errRejected}, InitParams{}, "")
	if !errors.Is(err, ErrInitFailed) || !errors.Is(err, errRejected) {
		t.Fatalf("Acquire() error = %v, want ErrInitFailed wrapping the bridge error", err)
	}
	if h != nil {
		t.Error("Acquire() returned a handle on failure")
	}
	if _, ok := Current(); ok {
		t.Error("Current() set after failed Acquire")
	}

	// The slot is reusable after a failed init.
	if _, err := Acquire(&fakeBridge{}, InitParams{}, ""); err != nil {
		t.Errorf("Acquire() after failed init error: %v", err)
	}
}

func TestAcquireNilBridge(t *testing.T) {
	if _, err := Acquire(nil, InitParams{}, ""); !errors.Is(err, ErrInitFailed) {
		t.Errorf("Acquire(nil) error = %v, want ErrInitFailed", err)
	}
}

func TestAcquireWithInitLock(t *testing.T) {
	releaseCurrent(t)
	lockDir := t.TempDir() + "/locks"

	h, err := Acquire(&fakeBridge{}, InitParams{NativeLibDir: "/sdk/data/linux/lib64"}, lockDir)
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	defer h.Release()

	entries, err := os.ReadDir(lockDir)
	if err != nil {
		t.Fatalf("read lock dir: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "renderenv-") {
		t.Errorf("lock dir entries = %v, want one renderenv-*.lock file", entries)
	}
}

// TestSetLogSerialized registers loggers from many goroutines and checks that
// the bridge never observed two registrations at once.
func TestSetLogSerialized(t *testing.T) {
	releaseCurrent(t)
	bridge := &fakeBridge{}

	h, err := Acquire(bridge, InitParams{}, "")
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}

	const workers = 16
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := h.SetLog(discardLogger()); err != nil {
				t.Errorf("SetLog() error: %v", err)
			}
		}()
	}
	wg.Wait()

	if bridge.overlap.Load() {
		t.Error("SetLog calls overlapped")
	}
	if got := bridge.setLogs.Load(); got != workers {
		t.Errorf("SetLog called %d times, want %d", got, workers)
	}
}

func TestConcurrentAcquireSingleWinner(t *testing.T) {
	releaseCurrent(t)

	const workers = 8
	var (
		wg      sync.WaitGroup
		wins    atomic.Int32
		inUse   atomic.Int32
		bridges [workers]fakeBridge
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := Acquire(&bridges[i], InitParams{}, "")
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, ErrEngineInUse):
				inUse.Add(1)
			default:
				t.Errorf("Acquire() unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if wins.Load() != 1 || inUse.Load() != workers-1 {
		t.Errorf("wins = %d, in use = %d; want 1 and %d", wins.Load(), inUse.Load(), workers-1)
	}
}

func TestReclaimAndDump(t *testing.T) {
	bridge := &dumpingBridge{objects: "android.graphics.Paint#12\n"}

	Reclaim(bridge)
	if !bridge.collected.Load() {
		t.Error("Reclaim() did not call Collect")
	}

	var buf bytes.Buffer
	if err := Dump(&buf, bridge); err != nil {
		t.Fatalf("Dump() error: %v", err)
	}
	if want := DumpHeader + "\nandroid.graphics.Paint#12\n"; buf.String() != want {
		t.Errorf("Dump() wrote %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := Dump(&buf, &fakeBridge{}); err != nil {
		t.Fatalf("Dump() without ObjectDumper error: %v", err)
	}
	if buf.String() != DumpHeader+"\n" {
		t.Errorf("Dump() wrote %q, want header only", buf.String())
	}

	Reclaim(nil)
}

func TestInitLockPath(t *testing.T) {
	a := initLockPath("/tmp", "/sdk/data/linux/lib64")
	b := initLockPath("/tmp", "/sdk/data/linux/lib64/")
	c := initLockPath("/tmp", "/sdk/data/mac/lib64")

	if a != b {
		t.Errorf("equivalent paths produced different locks: %q, %q", a, b)
	}
	if a == c {
		t.Errorf("different lib dirs share a lock: %q", a)
	}
}
