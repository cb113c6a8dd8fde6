// Package delivery wraps the external email providers. One attempt per
// call; retry policy belongs to no one here.
package delivery

import "context"

// Message is a fully composed email ready for handoff.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	ReplyTo string
}

// Mailer hands one message to a provider and returns its message id.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}
