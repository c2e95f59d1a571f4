// Package resources loads the read-only resource repositories the native
// engine resolves references against.
//
// A repository is built once from a resource tree laid out as
// <type>[-<qualifiers>]/<file>. Files under values folders contribute one item
// per named element; files under every other known folder contribute one item
// named after the file. Folders are loaded concurrently and merged in sorted
// order, so the resulting item set does not depend on scheduling.
//
// Two repositories exist per renderer: the framework repository, loaded from
// the platform data and annotated with its public subset, and the project
// repository. They share no mutable state.
package resources
