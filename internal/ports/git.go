package ports

// HeadRef describes where HEAD currently points.
type HeadRef struct {
	// Value is the branch name, or the abbreviated commit hash when detached.
	Value string
	// Branch is true when HEAD is a named branch (symbolic ref resolved).
	Branch bool
}

// GitClient abstracts read-only git queries for testability.
// Production code uses the execgit adapter; tests use mocks.MockGitClient.
//
// Every query is scoped to an explicit working-tree root and re-executed on
// each call: repository state may change between invocations, so nothing is
// cached behind this interface.
type GitClient interface {
	// Available reports whether the git binary can be found at all.
	// Commands are disabled up front when it cannot.
	Available() bool

	// FindRoot returns the absolute root of the working tree enclosing dir.
	FindRoot(dir string) (string, error)

	// RemoteURL returns the configured URL for the named remote.
	RemoteURL(root, name string) (string, error)

	// Remotes returns remote names in configuration order.
	// The first entry is the convention-based default.
	Remotes(root string) ([]string, error)

	// CurrentRef returns the branch HEAD is on, or the abbreviated commit
	// hash when HEAD is detached.
	CurrentRef(root string) (HeadRef, error)

	// LatestTag returns the nearest tag reachable from HEAD.
	LatestTag(root string) (string, error)

	// CommitHash returns the HEAD commit hash, full or abbreviated.
	CommitHash(root string, full bool) (string, error)

	// IsDirty reports whether the file has uncommitted content changes.
	// relPath is root-relative.
	IsDirty(root, relPath string) (bool, error)

	// IsTracked reports whether the file is known to version control.
	IsTracked(root, relPath string) (bool, error)

	// DefaultBranch returns the remote's advertised default branch.
	DefaultBranch(root, remote string) (string, error)
}
