package mocks

import (
	"os"
	"time"

	"github.com/mcdonaldj/gitlink/internal/ports"
)

// MockFileSystem implements ports.FileSystem for testing. Paths in Files
// exist; everything else does not. Abs is an identity function so tests can
// pass absolute-looking paths straight through.
type MockFileSystem struct {
	// Files is the set of existing paths.
	Files map[string]bool

	// Cwd is returned by Getwd.
	Cwd string
}

// NewMockFileSystem creates an empty mock filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files: make(map[string]bool),
		Cwd:   "/",
	}
}

// Stat returns minimal file info for known paths and os.ErrNotExist for the
// rest.
func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	if m.Files[name] {
		return fakeInfo{name: name}, nil
	}
	return nil, os.ErrNotExist
}

// Abs returns the path unchanged.
func (m *MockFileSystem) Abs(path string) (string, error) {
	return path, nil
}

// Getwd returns the configured working directory.
func (m *MockFileSystem) Getwd() (string, error) {
	return m.Cwd, nil
}

// fakeInfo is a minimal os.FileInfo for mocked files.
type fakeInfo struct {
	name string
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return 0 }
func (f fakeInfo) Mode() os.FileMode  { return 0644 }
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return false }
func (f fakeInfo) Sys() any           { return nil }

// Compile-time check that MockFileSystem implements ports.FileSystem.
var _ ports.FileSystem = (*MockFileSystem)(nil)
