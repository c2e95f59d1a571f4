package testutil

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/giantswarm/renderenv/internal/engine"
	"github.com/giantswarm/renderenv/internal/resources"
)

// Compile-time interface satisfaction checks.
var (
	_ engine.Bridge       = (*FakeBridge)(nil)
	_ engine.Collector    = (*FakeBridge)(nil)
	_ engine.ObjectDumper = (*FakeBridge)(nil)
)

// FakeBridge is an in-process engine binding. It records Init parameters,
// counts calls, and flags overlapping SetLog calls.
type FakeBridge struct {
	// InitErr, if set, is returned from Init.
	InitErr error
	// Objects is written by DumpObjects.
	Objects string

	InitCalls atomic.Int32
	SetLogs   atomic.Int32
	Collects  atomic.Int32
	overlap   atomic.Bool
	active    atomic.Int32

	mu     sync.Mutex
	params engine.InitParams
	log    *slog.Logger
}

// Init records p and returns InitErr.
func (b *FakeBridge) Init(p engine.InitParams) error {
	b.InitCalls.Add(1)
	b.mu.Lock()
	b.params = p
	b.mu.Unlock()
	return b.InitErr
}

// SetLog stores l. It writes the stored logger without its own locking, so an
// unserialized caller shows up both in Overlapped and under the race detector.
func (b *FakeBridge) SetLog(l *slog.Logger) {
	if b.active.Add(1) > 1 {
		b.overlap.Store(true)
	}
	time.Sleep(time.Millisecond)
	b.log = l
	b.SetLogs.Add(1)
	b.active.Add(-1)
}

// Collect counts reclamation requests.
func (b *FakeBridge) Collect() { b.Collects.Add(1) }

// DumpObjects writes Objects.
func (b *FakeBridge) DumpObjects(w io.Writer) error {
	_, err := io.WriteString(w, b.Objects)
	return err
}

// Params returns the parameters of the last Init call.
func (b *FakeBridge) Params() engine.InitParams {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.params
}

// Logger returns the last registered logger. Only call it once all SetLog
// callers have finished.
func (b *FakeBridge) Logger() *slog.Logger { return b.log }

// Overlapped reports whether two SetLog calls ever ran at once.
func (b *FakeBridge) Overlapped() bool { return b.overlap.Load() }

// FakeCallback hands out sequential resource IDs.
type FakeCallback struct {
	mu   sync.Mutex
	ids  map[resources.Reference]int32
	refs map[int32]resources.Reference
	next int32
}

// ResourceID returns the ID for ref, allocating from 0x7f000001.
func (c *FakeCallback) ResourceID(ref resources.Reference) int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id, ok := c.ids[ref]; ok {
		return id
	}
	if c.ids == nil {
		c.ids = make(map[resources.Reference]int32)
		c.refs = make(map[int32]resources.Reference)
		c.next = 0x7f000001
	}
	id := c.next
	c.next++
	c.ids[ref] = id
	c.refs[id] = ref
	return id
}

// ResolveResourceID returns the reference id was issued for.
func (c *FakeCallback) ResolveResourceID(id int32) (resources.Reference, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ref, ok := c.refs[id]
	return ref, ok
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
