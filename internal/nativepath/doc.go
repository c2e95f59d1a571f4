// Package nativepath resolves where the native rendering engine's binaries and
// data files live under the platform data root.
//
// The native library directory depends on the host operating system and CPU
// architecture. Host names are matched case-insensitively by prefix, using the
// same naming the engine distribution uses ("Windows 10", "Mac OS X", "x86_64",
// "aarch64"). CurrentHost translates the Go runtime's GOOS/GOARCH into that
// naming.
package nativepath
