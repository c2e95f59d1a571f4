// Package sentinel provides an immutable error type for sentinel error declarations.
//
// renderenv separates failures into classes (configuration problems versus
// native engine initialization problems). Both the classes and the specific
// failures inside them are declared as const Error values, and Classify ties a
// specific failure to its class so callers can match either with errors.Is.
package sentinel
