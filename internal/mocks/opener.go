package mocks

import "github.com/mcdonaldj/gitlink/internal/ports"

// MockURLOpener implements ports.URLOpener for testing.
type MockURLOpener struct {
	// Opened records (url, openCmd) pairs in order.
	Opened [][2]string

	// Err, when set, is returned by Open.
	Err error
}

// NewMockURLOpener creates a mock opener.
func NewMockURLOpener() *MockURLOpener {
	return &MockURLOpener{}
}

// Open records the call and returns the configured error.
func (m *MockURLOpener) Open(url, openCmd string) error {
	m.Opened = append(m.Opened, [2]string{url, openCmd})
	return m.Err
}

// MockClipboard implements ports.Clipboard for testing.
type MockClipboard struct {
	// Texts records everything written.
	Texts []string

	// Err, when set, is returned by WriteText.
	Err error
}

// NewMockClipboard creates a mock clipboard.
func NewMockClipboard() *MockClipboard {
	return &MockClipboard{}
}

// WriteText records the text and returns the configured error.
func (m *MockClipboard) WriteText(text string) error {
	m.Texts = append(m.Texts, text)
	return m.Err
}

// Compile-time checks.
var (
	_ ports.URLOpener = (*MockURLOpener)(nil)
	_ ports.Clipboard = (*MockClipboard)(nil)
)
