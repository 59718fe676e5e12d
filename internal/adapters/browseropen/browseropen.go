// Package browseropen provides a URL opener adapter.
//
// With no configured opener it defers to pkg/browser, which knows the
// platform default (xdg-open, open, rundll32). A configured open_cmd is
// spawned directly with the URL as its single argument.
package browseropen

import (
	"fmt"
	"os/exec"

	"github.com/pkg/browser"

	"github.com/mcdonaldj/gitlink/internal/ports"
)

// Opener implements ports.URLOpener.
type Opener struct{}

// New creates a new Opener adapter.
func New() *Opener {
	return &Opener{}
}

// Open launches url with openCmd, or the platform default when openCmd is
// empty.
func (o *Opener) Open(url, openCmd string) error {
	if openCmd == "" {
		return browser.OpenURL(url)
	}
	if err := exec.Command(openCmd, url).Start(); err != nil {
		return fmt.Errorf("open with %s: %w", openCmd, err)
	}
	return nil
}

// Compile-time check that Opener implements ports.URLOpener.
var _ ports.URLOpener = (*Opener)(nil)
