package mocks

import "github.com/mcdonaldj/gitlink/internal/ports"

// MockNotifier implements ports.Notifier for testing, recording every
// message in order.
type MockNotifier struct {
	Infos  []string
	Errors []string
}

// NewMockNotifier creates an empty mock notifier.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// Info records an informational message.
func (m *MockNotifier) Info(msg string) {
	m.Infos = append(m.Infos, msg)
}

// Error records an error message.
func (m *MockNotifier) Error(msg string) {
	m.Errors = append(m.Errors, msg)
}

// Compile-time check that MockNotifier implements ports.Notifier.
var _ ports.Notifier = (*MockNotifier)(nil)
