// Package sysprop assembles the system properties handed to the native engine
// at initialization: the platform's build.prop, a small set of forced
// overrides that make engine time deterministic under test, and a
// compatibility shim for long codename lists.
package sysprop
