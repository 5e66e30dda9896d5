package ports

import "context"

// EmailKind selects the message template.
type EmailKind string

const (
	EmailConfirmation  EmailKind = "confirmation"
	EmailPasswordReset EmailKind = "password_reset"
)

// EmailJob is one outbound message. Code carries the confirmation code for
// confirmation mails; Link carries the reset URL for password-reset mails.
type EmailJob struct {
	Kind EmailKind
	To   string
	Name string
	Code string
	Link string
}

// EmailSender delivers a single message synchronously.
type EmailSender interface {
	Send(ctx context.Context, job EmailJob) error
}
