// Package resolve turns a file location inside a git working tree into a
// shareable web URL on the hosting provider.
//
// The pipeline is synchronous and fail-fast: repository facts are re-queried
// on every call (never cached across invocations), and the first failure
// aborts the resolution with one of the typed errors in errors.go.
package resolve

import (
	"fmt"
	"path/filepath"

	"github.com/mcdonaldj/gitlink/internal/config"
	"github.com/mcdonaldj/gitlink/internal/ports"
	"github.com/mcdonaldj/gitlink/internal/provider"
)

// Request describes one resolution. File may be relative to the working
// directory; it is made absolute before use. Pin, Branch, Tag, Commit, and
// Remote are optional overrides; zero values fall back to configuration and
// repository state.
type Request struct {
	File   string
	Lines  *LineRange
	Pin    PinKind
	Branch string
	Tag    string
	Commit string
	Remote string
}

// Result is a successful resolution.
type Result struct {
	URL     string
	Kind    PinKind
	Root    string
	Remote  string
	Ref     string
	RelPath string
	// AnchorDropped is true when a requested line anchor was suppressed
	// because the file has uncommitted changes.
	AnchorDropped bool
}

// Resolver wires the pipeline's collaborators together.
type Resolver struct {
	Git    ports.GitClient
	FS     ports.FileSystem
	Notify ports.Notifier
	Config *config.Config
}

// New creates a Resolver.
func New(git ports.GitClient, fs ports.FileSystem, notify ports.Notifier, cfg *config.Config) *Resolver {
	return &Resolver{Git: git, FS: fs, Notify: notify, Config: cfg}
}

// Resolve runs the full pipeline: locate the working tree, pick the remote,
// match its host to a provider template, resolve the ref for the requested
// pin kind, decide on the line anchor, and assemble the URL.
func (r *Resolver) Resolve(req Request) (*Result, error) {
	kind := req.Pin
	if kind == "" {
		var err error
		kind, err = ParsePinKind(r.Config.DefaultPin)
		if err != nil {
			return nil, err
		}
	}

	// A root pin needs no file: it links to the repository landing page.
	absFile := ""
	startDir := ""
	if req.File != "" {
		abs, err := r.FS.Abs(req.File)
		if err != nil {
			return nil, err
		}
		if _, err := r.FS.Stat(abs); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNoFileToOpen, req.File)
		}
		absFile = abs
		startDir = filepath.Dir(abs)
	} else {
		if kind != PinRoot {
			return nil, ErrNoFileToOpen
		}
		wd, err := r.FS.Getwd()
		if err != nil {
			return nil, err
		}
		startDir = wd
	}

	root, err := r.Git.FindRoot(startDir)
	if err != nil {
		return nil, err
	}

	remote, err := r.remoteName(root, req.Remote)
	if err != nil {
		return nil, err
	}

	rawURL, err := r.Git.RemoteURL(root, remote)
	if err != nil {
		return nil, err
	}

	base := provider.Normalize(rawURL)
	host := provider.Host(base)
	tpl, ok := r.Config.ProviderTable().Lookup(host)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, host)
	}

	res := &Result{Kind: kind, Root: root, Remote: remote}

	if kind == PinRoot {
		res.URL = base
		return res, nil
	}

	relPath, err := RelPath(root, absFile)
	if err != nil {
		return nil, err
	}
	res.RelPath = relPath

	ref, err := r.refFor(kind, req, root, remote)
	if err != nil {
		return nil, err
	}
	res.Ref = ref

	lines, dropped, err := r.selectLines(req.Lines, root, relPath)
	if err != nil {
		return nil, err
	}
	res.AnchorDropped = dropped

	url := tpl.FileURL(base, ref, relPath)
	if lines != nil {
		url += tpl.Anchor(lines.Start, lines.End)
	}
	res.URL = url
	return res, nil
}

// remoteName picks the remote: explicit override, then the configured
// default, then the first configured remote.
func (r *Resolver) remoteName(root, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if r.Config.DefaultRemote != "" {
		return r.Config.DefaultRemote, nil
	}
	remotes, err := r.Git.Remotes(root)
	if err != nil {
		return "", err
	}
	if len(remotes) == 0 {
		return "", ErrNoRemotesConfigured
	}
	return remotes[0], nil
}

// refFor resolves the concrete ref string for the pin kind. Identical
// repository state and arguments always yield the identical ref.
func (r *Resolver) refFor(kind PinKind, req Request, root, remote string) (string, error) {
	switch kind {
	case PinBranch:
		if req.Branch != "" {
			return req.Branch, nil
		}
		if r.Config.DefaultBranch != "" {
			return r.Config.DefaultBranch, nil
		}
		if head, err := r.Git.CurrentRef(root); err == nil && head.Branch {
			return head.Value, nil
		}
		branch, err := r.Git.DefaultBranch(root, remote)
		if err != nil || branch == "" {
			return "", ErrNoBranchResolved
		}
		return branch, nil

	case PinTag:
		if req.Tag != "" {
			return req.Tag, nil
		}
		return r.Git.LatestTag(root)

	case PinCommit:
		// An explicit commit is used verbatim, not validated against
		// history.
		if req.Commit != "" {
			return req.Commit, nil
		}
		hash, err := r.Git.CommitHash(root, true)
		if err != nil {
			return "", err
		}
		if n := r.Config.CommitLength; n > 0 && n < len(hash) {
			hash = hash[:n]
		}
		return hash, nil

	default:
		return "", fmt.Errorf("unknown pin kind %q", kind)
	}
}
