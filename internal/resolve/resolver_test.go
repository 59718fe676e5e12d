package resolve_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/mcdonaldj/gitlink/internal/config"
	"github.com/mcdonaldj/gitlink/internal/mocks"
	"github.com/mcdonaldj/gitlink/internal/ports"
	"github.com/mcdonaldj/gitlink/internal/provider"
	"github.com/mcdonaldj/gitlink/internal/resolve"
)

const fullHash = "abc1234def5678901234567890123456789abcde"

// newFixture builds a resolver over a clean tracked repo at /repo with
// origin pointing at github.com/acme/widget and HEAD on branch feature/x.
func newFixture() (*resolve.Resolver, *mocks.MockGitClient, *mocks.MockFileSystem, *mocks.MockNotifier, *config.Config) {
	git := mocks.NewMockGitClient()
	git.Root = "/repo"
	git.RemoteNames = []string{"origin"}
	git.RemoteURLs["origin"] = "git@github.com:acme/widget.git"
	git.Head = ports.HeadRef{Value: "feature/x", Branch: true}
	git.FullHash = fullHash
	git.ShortHash = fullHash[:7]
	git.Tracked["src/main.ts"] = true

	fs := mocks.NewMockFileSystem()
	fs.Files["/repo/src/main.ts"] = true
	fs.Cwd = "/repo"

	notify := mocks.NewMockNotifier()
	cfg := config.DefaultConfig()

	return resolve.New(git, fs, notify, cfg), git, fs, notify, cfg
}

func TestResolveCommitPinFullHash(t *testing.T) {
	r, _, _, _, _ := newFixture()

	res, err := r.Resolve(resolve.Request{File: "/repo/src/main.ts"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := "https://github.com/acme/widget/blob/" + fullHash + "/src/main.ts"
	if res.URL != want {
		t.Errorf("URL = %q, want %q", res.URL, want)
	}
	if res.Kind != resolve.PinCommit {
		t.Errorf("Kind = %q, want commit (config default)", res.Kind)
	}
}

func TestResolveCommitLength(t *testing.T) {
	r, _, _, _, cfg := newFixture()
	cfg.CommitLength = 7

	res, err := r.Resolve(resolve.Request{File: "/repo/src/main.ts"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := "https://github.com/acme/widget/blob/" + fullHash[:7] + "/src/main.ts"
	if res.URL != want {
		t.Errorf("URL = %q, want %q", res.URL, want)
	}
}

func TestResolveExplicitCommitVerbatim(t *testing.T) {
	r, _, _, _, _ := newFixture()

	// Explicit commits are not validated against history.
	res, err := r.Resolve(resolve.Request{
		File:   "/repo/src/main.ts",
		Pin:    resolve.PinCommit,
		Commit: "deadbeef",
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.Ref != "deadbeef" {
		t.Errorf("Ref = %q, want explicit commit used verbatim", res.Ref)
	}
}

func TestResolveBranchPinWithSingleLine(t *testing.T) {
	r, _, _, _, _ := newFixture()

	res, err := r.Resolve(resolve.Request{
		File:  "/repo/src/main.ts",
		Pin:   resolve.PinBranch,
		Lines: &resolve.LineRange{Start: 10, End: 10},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := "https://github.com/acme/widget/blob/feature/x/src/main.ts#L10"
	if res.URL != want {
		t.Errorf("URL = %q, want %q", res.URL, want)
	}
}

func TestResolveMultiLineRange(t *testing.T) {
	r, _, _, _, _ := newFixture()

	res, err := r.Resolve(resolve.Request{
		File:  "/repo/src/main.ts",
		Pin:   resolve.PinBranch,
		Lines: &resolve.LineRange{Start: 10, End: 20},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if !strings.HasSuffix(res.URL, "#L10-L20") {
		t.Errorf("URL = %q, want #L10-L20 suffix", res.URL)
	}
}

func TestResolveRootPinIgnoresFileAndLines(t *testing.T) {
	r, _, _, _, _ := newFixture()

	res, err := r.Resolve(resolve.Request{
		File:  "/repo/src/main.ts",
		Pin:   resolve.PinRoot,
		Lines: &resolve.LineRange{Start: 10, End: 20},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if res.URL != "https://github.com/acme/widget" {
		t.Errorf("URL = %q, want bare base URL", res.URL)
	}
	if strings.Contains(res.URL, "main.ts") || strings.Contains(res.URL, "#L") {
		t.Errorf("root pin leaked path or anchor: %q", res.URL)
	}
}

func TestResolveRootPinWithoutFile(t *testing.T) {
	r, _, _, _, _ := newFixture()

	res, err := r.Resolve(resolve.Request{Pin: resolve.PinRoot})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.URL != "https://github.com/acme/widget" {
		t.Errorf("URL = %q, want bare base URL", res.URL)
	}
}

func TestResolveNoFile(t *testing.T) {
	r, _, _, _, _ := newFixture()

	_, err := r.Resolve(resolve.Request{})
	if !errors.Is(err, resolve.ErrNoFileToOpen) {
		t.Errorf("err = %v, want ErrNoFileToOpen", err)
	}
}

func TestResolveMissingFile(t *testing.T) {
	r, _, _, _, _ := newFixture()

	_, err := r.Resolve(resolve.Request{File: "/repo/src/gone.ts"})
	if !errors.Is(err, resolve.ErrNoFileToOpen) {
		t.Errorf("err = %v, want ErrNoFileToOpen", err)
	}
}

func TestResolveFileOutsideRepository(t *testing.T) {
	r, _, fs, _, _ := newFixture()
	fs.Files["/elsewhere/main.ts"] = true

	_, err := r.Resolve(resolve.Request{File: "/elsewhere/main.ts"})
	if !errors.Is(err, resolve.ErrFileOutsideRepository) {
		t.Errorf("err = %v, want ErrFileOutsideRepository", err)
	}
}

func TestResolveNotARepository(t *testing.T) {
	r, git, _, _, _ := newFixture()
	git.Root = ""

	_, err := r.Resolve(resolve.Request{File: "/repo/src/main.ts"})
	if !errors.Is(err, resolve.ErrNotARepository) {
		t.Errorf("err = %v, want ErrNotARepository", err)
	}
}

func TestResolveUnsupportedProvider(t *testing.T) {
	r, git, _, _, _ := newFixture()
	git.RemoteURLs["origin"] = "git@bitbucket.org:acme/widget.git"

	_, err := r.Resolve(resolve.Request{File: "/repo/src/main.ts"})
	if !errors.Is(err, resolve.ErrUnsupportedProvider) {
		t.Errorf("err = %v, want ErrUnsupportedProvider", err)
	}
}

func TestResolveUserProvider(t *testing.T) {
	r, git, _, _, cfg := newFixture()
	git.RemoteURLs["origin"] = "git@git.example.com:acme/widget.git"
	cfg.Providers = map[string]provider.Template{
		"git.example.com": {
			URLTemplate: "%s/browse/%s/%s",
			SingleLine:  "#n%d",
			MultiLine:   "#n%d-%d",
		},
	}

	res, err := r.Resolve(resolve.Request{
		File:  "/repo/src/main.ts",
		Pin:   resolve.PinBranch,
		Lines: &resolve.LineRange{Start: 3, End: 3},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := "https://git.example.com/acme/widget/browse/feature/x/src/main.ts#n3"
	if res.URL != want {
		t.Errorf("URL = %q, want %q", res.URL, want)
	}
}

func TestResolveRemoteSelection(t *testing.T) {
	t.Run("explicit override", func(t *testing.T) {
		r, git, _, _, _ := newFixture()
		git.RemoteURLs["upstream"] = "git@github.com:acme/upstream.git"

		res, err := r.Resolve(resolve.Request{File: "/repo/src/main.ts", Remote: "upstream"})
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if !strings.HasPrefix(res.URL, "https://github.com/acme/upstream/") {
			t.Errorf("URL = %q, want upstream remote", res.URL)
		}
	})

	t.Run("configured default", func(t *testing.T) {
		r, git, _, _, cfg := newFixture()
		git.RemoteURLs["backup"] = "git@github.com:acme/backup.git"
		cfg.DefaultRemote = "backup"

		res, err := r.Resolve(resolve.Request{File: "/repo/src/main.ts"})
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if !strings.HasPrefix(res.URL, "https://github.com/acme/backup/") {
			t.Errorf("URL = %q, want configured default remote", res.URL)
		}
	})

	t.Run("missing remote", func(t *testing.T) {
		r, _, _, _, _ := newFixture()

		_, err := r.Resolve(resolve.Request{File: "/repo/src/main.ts", Remote: "nope"})
		if !errors.Is(err, resolve.ErrNoSuchRemote) {
			t.Errorf("err = %v, want ErrNoSuchRemote", err)
		}
	})

	t.Run("no remotes at all", func(t *testing.T) {
		r, git, _, _, _ := newFixture()
		git.RemoteNames = nil

		_, err := r.Resolve(resolve.Request{File: "/repo/src/main.ts"})
		if !errors.Is(err, resolve.ErrNoRemotesConfigured) {
			t.Errorf("err = %v, want ErrNoRemotesConfigured", err)
		}
	})
}

func TestResolveBranchFallbacks(t *testing.T) {
	t.Run("explicit value wins", func(t *testing.T) {
		r, _, _, _, cfg := newFixture()
		cfg.DefaultBranch = "develop"

		res, err := r.Resolve(resolve.Request{
			File:   "/repo/src/main.ts",
			Pin:    resolve.PinBranch,
			Branch: "release/1.0",
		})
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if res.Ref != "release/1.0" {
			t.Errorf("Ref = %q, want explicit branch", res.Ref)
		}
	})

	t.Run("configured default beats current branch", func(t *testing.T) {
		r, _, _, _, cfg := newFixture()
		cfg.DefaultBranch = "develop"

		res, err := r.Resolve(resolve.Request{File: "/repo/src/main.ts", Pin: resolve.PinBranch})
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if res.Ref != "develop" {
			t.Errorf("Ref = %q, want configured default branch", res.Ref)
		}
	})

	t.Run("detached HEAD falls back to remote default", func(t *testing.T) {
		r, git, _, _, _ := newFixture()
		git.Head = ports.HeadRef{Value: "abc1234", Branch: false}
		git.RemoteDefaultBranch = "main"

		res, err := r.Resolve(resolve.Request{File: "/repo/src/main.ts", Pin: resolve.PinBranch})
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if res.Ref != "main" {
			t.Errorf("Ref = %q, want remote default branch", res.Ref)
		}
	})

	t.Run("all fallbacks exhausted", func(t *testing.T) {
		r, git, _, _, _ := newFixture()
		git.Head = ports.HeadRef{Value: "abc1234", Branch: false}

		_, err := r.Resolve(resolve.Request{File: "/repo/src/main.ts", Pin: resolve.PinBranch})
		if !errors.Is(err, resolve.ErrNoBranchResolved) {
			t.Errorf("err = %v, want ErrNoBranchResolved", err)
		}
	})
}

func TestResolveTagPin(t *testing.T) {
	t.Run("explicit tag", func(t *testing.T) {
		r, _, _, _, _ := newFixture()

		res, err := r.Resolve(resolve.Request{
			File: "/repo/src/main.ts",
			Pin:  resolve.PinTag,
			Tag:  "v2.0.0",
		})
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if res.Ref != "v2.0.0" {
			t.Errorf("Ref = %q, want explicit tag", res.Ref)
		}
	})

	t.Run("latest reachable tag", func(t *testing.T) {
		r, git, _, _, _ := newFixture()
		git.Tag = "v1.4.2"

		res, err := r.Resolve(resolve.Request{File: "/repo/src/main.ts", Pin: resolve.PinTag})
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if res.Ref != "v1.4.2" {
			t.Errorf("Ref = %q, want latest tag", res.Ref)
		}
	})

	t.Run("no tags", func(t *testing.T) {
		r, _, _, _, _ := newFixture()

		_, err := r.Resolve(resolve.Request{File: "/repo/src/main.ts", Pin: resolve.PinTag})
		if !errors.Is(err, resolve.ErrNoTagsFound) {
			t.Errorf("err = %v, want ErrNoTagsFound", err)
		}
	})
}

func TestResolveUntrackedFileWithLines(t *testing.T) {
	// Untracked fails whatever the allow flag says.
	for _, allow := range []bool{false, true} {
		r, git, fs, _, cfg := newFixture()
		cfg.AllowUncommittedLines = allow
		fs.Files["/repo/new.ts"] = true
		git.Dirty["new.ts"] = true

		_, err := r.Resolve(resolve.Request{
			File:  "/repo/new.ts",
			Lines: &resolve.LineRange{Start: 1, End: 1},
		})
		if !errors.Is(err, resolve.ErrFileNotTracked) {
			t.Errorf("allow=%v: err = %v, want ErrFileNotTracked", allow, err)
		}
	}
}

func TestResolveDirtyFileDropsAnchor(t *testing.T) {
	r, git, _, notify, _ := newFixture()
	git.Dirty["src/main.ts"] = true

	res, err := r.Resolve(resolve.Request{
		File:  "/repo/src/main.ts",
		Lines: &resolve.LineRange{Start: 10, End: 10},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if strings.Contains(res.URL, "#L") {
		t.Errorf("URL = %q, want anchor dropped", res.URL)
	}
	if !res.AnchorDropped {
		t.Error("AnchorDropped = false, want true")
	}
	if len(notify.Infos) != 1 {
		t.Errorf("got %d info notices, want exactly 1", len(notify.Infos))
	}
}

func TestResolveDirtyFileKeepsAnchorWhenAllowed(t *testing.T) {
	r, git, _, notify, cfg := newFixture()
	git.Dirty["src/main.ts"] = true
	cfg.AllowUncommittedLines = true

	res, err := r.Resolve(resolve.Request{
		File:  "/repo/src/main.ts",
		Lines: &resolve.LineRange{Start: 10, End: 10},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if !strings.HasSuffix(res.URL, "#L10") {
		t.Errorf("URL = %q, want #L10 kept", res.URL)
	}
	if len(notify.Infos) != 0 {
		t.Errorf("got %d info notices, want none", len(notify.Infos))
	}
}

func TestResolveIdempotent(t *testing.T) {
	r, _, _, _, _ := newFixture()
	req := resolve.Request{File: "/repo/src/main.ts", Pin: resolve.PinBranch}

	first, err := r.Resolve(req)
	if err != nil {
		t.Fatalf("first Resolve failed: %v", err)
	}
	second, err := r.Resolve(req)
	if err != nil {
		t.Fatalf("second Resolve failed: %v", err)
	}
	if first.URL != second.URL || first.Ref != second.Ref {
		t.Errorf("resolution not idempotent: %q vs %q", first.URL, second.URL)
	}
}
