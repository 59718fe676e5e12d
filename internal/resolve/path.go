package resolve

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RelPath turns an absolute file path into a /-separated path relative to
// the working-tree root. The match is an exact, case-sensitive prefix check
// on a separator boundary; anything not under root fails with
// ErrFileOutsideRepository.
func RelPath(root, file string) (string, error) {
	r := strings.TrimSuffix(filepath.ToSlash(root), "/")
	f := filepath.ToSlash(file)

	if !strings.HasPrefix(f, r+"/") {
		return "", fmt.Errorf("%w: %s is not under %s", ErrFileOutsideRepository, file, root)
	}
	return strings.TrimPrefix(f, r+"/"), nil
}
