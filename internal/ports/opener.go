package ports

// URLOpener launches a URL in the user's browser.
// Entirely outside the resolution pipeline; it receives the final URL only.
type URLOpener interface {
	// Open launches url. openCmd is the configured opener program; empty
	// means use the platform default.
	Open(url, openCmd string) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	// WriteText replaces the clipboard contents with text.
	WriteText(text string) error
}
