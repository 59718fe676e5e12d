package resolve

import (
	"fmt"
	"strconv"
	"strings"
)

// LineRange is an inclusive 1-based line selection. Start == End selects a
// single line.
type LineRange struct {
	Start int
	End   int
}

// ParseLineRange parses "N" or "N-M" into a validated range.
func ParseLineRange(s string) (*LineRange, error) {
	first, second, isRange := strings.Cut(s, "-")

	start, err := strconv.Atoi(first)
	if err != nil {
		return nil, fmt.Errorf("invalid line range %q", s)
	}
	end := start
	if isRange {
		end, err = strconv.Atoi(second)
		if err != nil {
			return nil, fmt.Errorf("invalid line range %q", s)
		}
	}

	if start < 1 || end < start {
		return nil, fmt.Errorf("invalid line range %q: want start >= 1 and end >= start", s)
	}
	return &LineRange{Start: start, End: end}, nil
}

func (l *LineRange) String() string {
	if l.Start == l.End {
		return strconv.Itoa(l.Start)
	}
	return fmt.Sprintf("%d-%d", l.Start, l.End)
}

// selectLines decides whether a requested line anchor is safe to include.
// Anchors on untracked files fail outright; anchors on dirty tracked files
// are dropped with a notice unless the config allows them. The returned
// bool reports a dropped anchor.
func (r *Resolver) selectLines(lines *LineRange, root, relPath string) (*LineRange, bool, error) {
	if lines == nil {
		return nil, false, nil
	}

	tracked, err := r.Git.IsTracked(root, relPath)
	if err != nil {
		return nil, false, err
	}
	if !tracked {
		return nil, false, fmt.Errorf("%w: %s", ErrFileNotTracked, relPath)
	}

	dirty, err := r.Git.IsDirty(root, relPath)
	if err != nil {
		return nil, false, err
	}
	if dirty && !r.Config.AllowUncommittedLines {
		r.Notify.Info(fmt.Sprintf("%s has uncommitted changes; dropping line numbers", relPath))
		return nil, true, nil
	}

	return lines, false, nil
}
