// Package execgit provides a git client adapter using exec.Command.
//
// Every query passes values as discrete arguments, never as a formatted
// shell line, so paths, remote names, and commit identifiers need no
// escaping.
package execgit

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mcdonaldj/gitlink/internal/ports"
	"github.com/mcdonaldj/gitlink/internal/resolve"
)

// ExecGitClient implements ports.GitClient using exec.Command.
type ExecGitClient struct {
	// gitPath is the path to the git binary. Defaults to "git".
	gitPath string
}

// Option is a functional option for configuring ExecGitClient.
type Option func(*ExecGitClient)

// WithGitPath sets a custom path to the git binary.
func WithGitPath(path string) Option {
	return func(g *ExecGitClient) {
		g.gitPath = path
	}
}

// New creates a new ExecGitClient adapter.
func New(opts ...Option) *ExecGitClient {
	g := &ExecGitClient{
		gitPath: "git",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// run executes git with the given args in dir and returns trimmed stdout.
// Non-zero exits come back as *resolve.QueryError with captured stderr.
func (g *ExecGitClient) run(dir string, args ...string) (string, error) {
	cmd := exec.Command(g.gitPath, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", resolve.NewQueryError(args, string(exitErr.Stderr), err)
		}
		return "", resolve.NewQueryError(args, "", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// runStatus executes git and returns its exit code. Used for queries whose
// answer is the exit status rather than output.
func (g *ExecGitClient) runStatus(dir string, args ...string) (int, error) {
	cmd := exec.Command(g.gitPath, args...)
	cmd.Dir = dir
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, resolve.NewQueryError(args, "", err)
}

// Available reports whether the git binary can be found on PATH.
func (g *ExecGitClient) Available() bool {
	_, err := exec.LookPath(g.gitPath)
	return err == nil
}

// FindRoot returns the absolute root of the working tree enclosing dir.
func (g *ExecGitClient) FindRoot(dir string) (string, error) {
	root, err := g.run(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("%w: %s", resolve.ErrNotARepository, dir)
	}
	return root, nil
}

// RemoteURL returns the configured URL for the named remote.
func (g *ExecGitClient) RemoteURL(root, name string) (string, error) {
	url, err := g.run(root, "config", "--get", "remote."+name+".url")
	if err != nil || url == "" {
		return "", fmt.Errorf("%w: %s", resolve.ErrNoSuchRemote, name)
	}
	return url, nil
}

// Remotes returns remote names in configuration order.
func (g *ExecGitClient) Remotes(root string) ([]string, error) {
	out, err := g.run(root, "remote")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// CurrentRef returns the current branch, or the abbreviated commit hash
// with Branch=false when HEAD is detached.
func (g *ExecGitClient) CurrentRef(root string) (ports.HeadRef, error) {
	if branch, err := g.run(root, "symbolic-ref", "--short", "HEAD"); err == nil {
		return ports.HeadRef{Value: branch, Branch: true}, nil
	}
	hash, err := g.run(root, "rev-parse", "--short", "HEAD")
	if err != nil {
		return ports.HeadRef{}, err
	}
	return ports.HeadRef{Value: hash, Branch: false}, nil
}

// LatestTag returns the nearest tag reachable from HEAD.
func (g *ExecGitClient) LatestTag(root string) (string, error) {
	tag, err := g.run(root, "describe", "--tags", "--abbrev=0")
	if err != nil {
		return "", resolve.ErrNoTagsFound
	}
	return tag, nil
}

// CommitHash returns the HEAD commit hash, full or abbreviated.
func (g *ExecGitClient) CommitHash(root string, full bool) (string, error) {
	if full {
		return g.run(root, "rev-parse", "HEAD")
	}
	return g.run(root, "rev-parse", "--short", "HEAD")
}

// IsDirty reports whether the file's content differs from HEAD. Diffing
// against HEAD rather than the index catches staged-but-uncommitted changes
// too.
func (g *ExecGitClient) IsDirty(root, relPath string) (bool, error) {
	code, err := g.runStatus(root, "diff", "--quiet", "HEAD", "--", relPath)
	if err != nil {
		return false, err
	}
	switch code {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, resolve.NewQueryError(
			[]string{"diff", "--quiet", "HEAD", "--", relPath},
			fmt.Sprintf("unexpected exit code %d", code), nil)
	}
}

// IsTracked reports whether the file is known to version control.
func (g *ExecGitClient) IsTracked(root, relPath string) (bool, error) {
	code, err := g.runStatus(root, "ls-files", "--error-unmatch", "--", relPath)
	if err != nil {
		return false, err
	}
	return code == 0, nil
}

// DefaultBranch returns the remote's advertised default branch via the
// remote-HEAD symbolic ref, falling back to parsing `git remote show`.
func (g *ExecGitClient) DefaultBranch(root, remote string) (string, error) {
	ref, err := g.run(root, "symbolic-ref", "--short", "refs/remotes/"+remote+"/HEAD")
	if err == nil && ref != "" {
		return strings.TrimPrefix(ref, remote+"/"), nil
	}

	out, err := g.run(root, "remote", "show", remote)
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "HEAD branch:"); ok {
			return strings.TrimSpace(after), nil
		}
	}
	return "", resolve.ErrNoBranchResolved
}

// Compile-time check that ExecGitClient implements ports.GitClient.
var _ ports.GitClient = (*ExecGitClient)(nil)
