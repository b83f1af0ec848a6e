package types

import (
	"io/fs"
)

// FS is the filesystem interface required for specpatch operations.
// The OS implementation is used in real runs; an in-memory implementation
// backs tests that operate on synthetic file sets.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
}
