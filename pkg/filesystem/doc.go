// Package filesystem provides filesystem implementations for specpatch.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem used by real runs, and an afero-backed
// filesystem used by tests that patch synthetic file sets in memory.
package filesystem
