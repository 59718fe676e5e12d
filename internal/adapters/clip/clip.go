// Package clip provides a clipboard adapter using atotto/clipboard.
package clip

import (
	"github.com/atotto/clipboard"

	"github.com/mcdonaldj/gitlink/internal/ports"
)

// Clipboard implements ports.Clipboard using the system clipboard.
type Clipboard struct{}

// New creates a new Clipboard adapter.
func New() *Clipboard {
	return &Clipboard{}
}

// WriteText replaces the clipboard contents with text.
func (c *Clipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// Compile-time check that Clipboard implements ports.Clipboard.
var _ ports.Clipboard = (*Clipboard)(nil)
