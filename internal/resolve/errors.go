package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// Resolution errors. Each aborts only the current resolution; the host
// process reports it once and carries on.
var (
	// ErrNotARepository indicates no enclosing working tree was found.
	ErrNotARepository = errors.New("not a git repository")

	// ErrNoSuchRemote indicates the requested remote is not configured.
	ErrNoSuchRemote = errors.New("no such remote")

	// ErrNoRemotesConfigured indicates the repository has no remotes at all.
	ErrNoRemotesConfigured = errors.New("no remotes configured")

	// ErrNoBranchResolved indicates branch resolution exhausted every
	// fallback: explicit value, configured default, current branch, and the
	// remote's advertised default.
	ErrNoBranchResolved = errors.New("no branch resolved")

	// ErrNoTagsFound indicates HEAD has no reachable tag.
	ErrNoTagsFound = errors.New("no tags found")

	// ErrFileOutsideRepository indicates the file is not under the
	// working-tree root.
	ErrFileOutsideRepository = errors.New("file outside repository")

	// ErrNoFileToOpen indicates no file path was supplied.
	ErrNoFileToOpen = errors.New("no file to open")

	// ErrFileNotTracked indicates a line anchor was requested for a file
	// unknown to version control, so remote line correspondence cannot be
	// guaranteed.
	ErrFileNotTracked = errors.New("file not tracked")

	// ErrUnsupportedProvider indicates the remote host has no matching
	// provider template, built-in or user-supplied.
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// ErrQueryFailed indicates an underlying git query exited non-zero.
	ErrQueryFailed = errors.New("git query failed")
)

// QueryError carries the failing git invocation and its captured stderr.
// It wraps ErrQueryFailed.
type QueryError struct {
	Args   []string
	Stderr string
	Err    error
}

// NewQueryError builds a QueryError for the given git argument list.
func NewQueryError(args []string, stderr string, err error) *QueryError {
	return &QueryError{Args: args, Stderr: strings.TrimSpace(stderr), Err: err}
}

func (e *QueryError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %s: %s", strings.Join(e.Args, " "), e.Stderr)
	}
	return fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
}

// Unwrap makes errors.Is(err, ErrQueryFailed) hold for every QueryError.
func (e *QueryError) Unwrap() error {
	return ErrQueryFailed
}
