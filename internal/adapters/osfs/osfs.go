// Package osfs provides a filesystem adapter using the standard library os package.
package osfs

import (
	"os"
	"path/filepath"

	"github.com/mcdonaldj/gitlink/internal/ports"
)

// OSFileSystem implements ports.FileSystem using the standard library.
type OSFileSystem struct{}

// New creates a new OSFileSystem adapter.
func New() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat returns file info for the named file.
func (f *OSFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Abs returns the absolute form of the given path.
func (f *OSFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// Getwd returns the current working directory.
func (f *OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}

// Compile-time check that OSFileSystem implements ports.FileSystem.
var _ ports.FileSystem = (*OSFileSystem)(nil)
