// Package mocks provides hand-written mock implementations of the ports
// interfaces for testing.
package mocks

import (
	"github.com/mcdonaldj/gitlink/internal/ports"
	"github.com/mcdonaldj/gitlink/internal/resolve"
)

// MockGitClient implements ports.GitClient for testing. Zero values behave
// like an empty repository; populate the fields a test needs.
type MockGitClient struct {
	// AvailableVal is returned by Available. Defaults to true via
	// NewMockGitClient.
	AvailableVal bool

	// Root is returned by FindRoot for any dir; empty means not a repo.
	Root string

	// RemoteURLs maps remote names to configured URLs.
	RemoteURLs map[string]string

	// RemoteNames is returned by Remotes, in order.
	RemoteNames []string

	// Head is returned by CurrentRef.
	Head ports.HeadRef

	// HeadErr, when set, is returned by CurrentRef instead.
	HeadErr error

	// Tag is returned by LatestTag; empty means no tags.
	Tag string

	// FullHash and ShortHash are returned by CommitHash.
	FullHash  string
	ShortHash string

	// Dirty and Tracked map relative paths to their file state.
	Dirty   map[string]bool
	Tracked map[string]bool

	// RemoteDefaultBranch is returned by DefaultBranch; empty means the
	// query fails.
	RemoteDefaultBranch string

	// Calls records method names in invocation order.
	Calls []string

	// FindRootDirs records the directories FindRoot was asked to search
	// from.
	FindRootDirs []string
}

// NewMockGitClient creates a mock with git available and no repository
// state.
func NewMockGitClient() *MockGitClient {
	return &MockGitClient{
		AvailableVal: true,
		RemoteURLs:   make(map[string]string),
		Dirty:        make(map[string]bool),
		Tracked:      make(map[string]bool),
	}
}

func (m *MockGitClient) record(call string) {
	m.Calls = append(m.Calls, call)
}

// Available reports the configured availability.
func (m *MockGitClient) Available() bool {
	m.record("Available")
	return m.AvailableVal
}

// FindRoot returns the configured root for any starting directory.
func (m *MockGitClient) FindRoot(dir string) (string, error) {
	m.record("FindRoot")
	m.FindRootDirs = append(m.FindRootDirs, dir)
	if m.Root == "" {
		return "", resolve.ErrNotARepository
	}
	return m.Root, nil
}

// RemoteURL returns the configured URL for the named remote.
func (m *MockGitClient) RemoteURL(root, name string) (string, error) {
	m.record("RemoteURL")
	if url, ok := m.RemoteURLs[name]; ok {
		return url, nil
	}
	return "", resolve.ErrNoSuchRemote
}

// Remotes returns the configured remote names.
func (m *MockGitClient) Remotes(root string) ([]string, error) {
	m.record("Remotes")
	return m.RemoteNames, nil
}

// CurrentRef returns the configured HEAD state.
func (m *MockGitClient) CurrentRef(root string) (ports.HeadRef, error) {
	m.record("CurrentRef")
	if m.HeadErr != nil {
		return ports.HeadRef{}, m.HeadErr
	}
	return m.Head, nil
}

// LatestTag returns the configured tag.
func (m *MockGitClient) LatestTag(root string) (string, error) {
	m.record("LatestTag")
	if m.Tag == "" {
		return "", resolve.ErrNoTagsFound
	}
	return m.Tag, nil
}

// CommitHash returns the configured full or short hash.
func (m *MockGitClient) CommitHash(root string, full bool) (string, error) {
	m.record("CommitHash")
	if full {
		return m.FullHash, nil
	}
	return m.ShortHash, nil
}

// IsDirty reports the configured dirty state for the file.
func (m *MockGitClient) IsDirty(root, relPath string) (bool, error) {
	m.record("IsDirty")
	return m.Dirty[relPath], nil
}

// IsTracked reports the configured tracked state for the file.
func (m *MockGitClient) IsTracked(root, relPath string) (bool, error) {
	m.record("IsTracked")
	return m.Tracked[relPath], nil
}

// DefaultBranch returns the configured remote default branch.
func (m *MockGitClient) DefaultBranch(root, remote string) (string, error) {
	m.record("DefaultBranch")
	if m.RemoteDefaultBranch == "" {
		return "", resolve.ErrNoBranchResolved
	}
	return m.RemoteDefaultBranch, nil
}

// Compile-time check that MockGitClient implements ports.GitClient.
var _ ports.GitClient = (*MockGitClient)(nil)
