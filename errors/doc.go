// Package errors provides lightweight error handling and classification primitives.
//
// Every engine error carries a class composed of a major (subsystem), minor
// (concern) and index (precise cause) value, so the resolution and assembly
// failures remain programmatically comparable without sentinel values.
package errors
