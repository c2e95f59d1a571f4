// Package fileutil provides small filesystem helpers shared by the loaders.
//
// EnsureDir prepares the directory holding the cross-process engine init lock,
// and RequireDir checks that a resource root exists before it is walked.
package fileutil
