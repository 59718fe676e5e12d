// Package provider maps remote hosts to URL templates and assembles the
// final web URL.
//
// Known limitation: refs and paths are substituted into templates verbatim,
// with no percent-encoding. Branch names containing characters that are
// special in URLs (spaces, '#') can produce malformed links.
package provider

import "fmt"

// Template describes how one hosting provider lays out its file URLs.
// URLTemplate takes three ordered %s verbs: base URL, ref, relative path.
// SingleLine takes one %d (the line); MultiLine takes two (start, end).
type Template struct {
	URLTemplate string `yaml:"url_template"`
	SingleLine  string `yaml:"single_line_format"`
	MultiLine   string `yaml:"multi_line_format"`
}

// builtins covers the hosts supported out of the box. User-configured
// providers are merged over these, winning on key collision.
var builtins = map[string]Template{
	"github.com": {
		URLTemplate: "%s/blob/%s/%s",
		SingleLine:  "#L%d",
		MultiLine:   "#L%d-L%d",
	},
	"gitlab.com": {
		URLTemplate: "%s/-/blob/%s/%s",
		SingleLine:  "#L%d",
		MultiLine:   "#L%d-%d",
	},
}

// Table is a merged host -> template lookup.
type Table map[string]Template

// Merge builds a Table from the built-in providers overlaid with user
// entries. The user map may be nil.
func Merge(user map[string]Template) Table {
	t := make(Table, len(builtins)+len(user))
	for host, tpl := range builtins {
		t[host] = tpl
	}
	for host, tpl := range user {
		t[host] = tpl
	}
	return t
}

// Lookup finds the template for a host. Exact string match, no fallback.
func (t Table) Lookup(host string) (Template, bool) {
	tpl, ok := t[host]
	return tpl, ok
}

// FileURL substitutes base, ref, and relative path into the template.
func (tpl Template) FileURL(base, ref, relPath string) string {
	return fmt.Sprintf(tpl.URLTemplate, base, ref, relPath)
}

// Anchor formats the line fragment. A single line (start == end) uses the
// single-line format, a true range the multi-line one. The fragment is
// appended to the file URL as-is; any separator comes from the format string.
func (tpl Template) Anchor(start, end int) string {
	if start == end {
		return fmt.Sprintf(tpl.SingleLine, start)
	}
	return fmt.Sprintf(tpl.MultiLine, start, end)
}
