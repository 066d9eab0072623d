package notify

import "context"

// Notification is a plain-text message for the site owner.
type Notification struct {
	Subject string
	Text    string
	// ReplyTo lets the owner answer the submitter directly. Optional.
	ReplyTo string
}

// Notifier delivers owner notifications.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
