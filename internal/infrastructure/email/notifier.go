package email

import "context"

// Notifier delivers one message to a set of recipient addresses. Failures are
// surfaced to the caller; the notifier itself never retries.
type Notifier interface {
	Send(ctx context.Context, message string, recipients []string) error
}
