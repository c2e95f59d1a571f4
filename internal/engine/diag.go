package engine

import (
	"fmt"
	"io"
	"runtime"
)

// Reclaim forces a garbage collection so finalizers of native-bound objects
// run, then asks bridge to reclaim native memory if it supports it.
func Reclaim(bridge Bridge) {
	runtime.GC()
	if c, ok := bridge.(Collector); ok {
		c.Collect()
	}
}

// DumpHeader precedes the object table listing.
const DumpHeader = "Objects still linked from the DelegateManager:"

// Dump writes the header and, if bridge supports it, the native objects still
// referenced by the engine's object table.
func Dump(w io.Writer, bridge Bridge) error {
	if _, err := fmt.Fprintln(w, DumpHeader); err != nil {
		return fmt.Errorf("write dump header: %w", err)
	}
	d, ok := bridge.(ObjectDumper)
	if !ok {
		return nil
	}
	if err := d.DumpObjects(w); err != nil {
		return fmt.Errorf("dump native objects: %w", err)
	}
	return nil
}
