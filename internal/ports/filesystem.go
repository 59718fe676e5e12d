// Package ports defines interfaces (contracts) for external dependencies.
// These enable dependency injection and testability via mock implementations.
package ports

import "os"

// FileSystem abstracts the filesystem queries the resolver needs.
// Production code uses the osfs adapter; tests use MockFileSystem.
type FileSystem interface {
	// Stat returns file info for the named file.
	Stat(name string) (os.FileInfo, error)

	// Abs returns the absolute form of the given path.
	Abs(path string) (string, error)

	// Getwd returns the current working directory.
	Getwd() (string, error)
}
