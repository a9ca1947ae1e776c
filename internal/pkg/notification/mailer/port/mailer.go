package port

import "context"

// Email is a fully composed message ready for delivery.
type Email struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, mail Email) error
}
