// Package engine owns the process-wide native rendering engine handle.
//
// The native engine is non-reentrant and may only be initialized once per
// process at a time. Acquire initializes it and stores the resulting Handle in
// a mutex-guarded package-level slot; a second Acquire while a handle is live
// fails with ErrEngineInUse instead of silently re-initializing. Release empties
// the slot. A released Handle stays a valid value whose Available method
// reports false, so "released" is a checkable state rather than a nil pointer.
//
// Calls into the engine that are not safe to overlap (logger registration)
// are serialized by Lock/Unlock. Initialization additionally holds an advisory
// file lock so that separate test binaries sharing one platform data root do
// not initialize the native libraries concurrently.
package engine
