package ports

// Notifier delivers leveled messages to the user.
// The resolution pipeline calls it exactly once per terminal failure, and
// optionally for informational degradations (line-anchor suppression).
type Notifier interface {
	// Info reports a non-error notice.
	Info(msg string)

	// Error reports a failure that aborted the current resolution.
	Error(msg string)
}
