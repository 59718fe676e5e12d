package resolve

import "fmt"

// PinKind selects what the URL is pinned to.
type PinKind string

const (
	PinBranch PinKind = "branch"
	PinTag    PinKind = "tag"
	PinCommit PinKind = "commit"
	// PinRoot links to the repository landing page: no ref, no file path,
	// no line anchor.
	PinRoot PinKind = "root"
)

// ParsePinKind validates a user-supplied pin kind.
func ParsePinKind(s string) (PinKind, error) {
	switch PinKind(s) {
	case PinBranch, PinTag, PinCommit, PinRoot:
		return PinKind(s), nil
	}
	return "", fmt.Errorf("unknown pin kind %q (want branch, tag, commit, or root)", s)
}
