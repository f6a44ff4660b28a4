package mailer

import "context"

type Email struct {
	From    string
	To      []string
	Cc      []string
	Bcc     []string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers an email and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, e Email) (string, error)
}
