// Package email implements the outbound mail adapter. Delivery transport is
// deliberately thin: messages are composed here and handed to a plain SMTP
// relay.
package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/glowmart/shop-api/internal/core/ports"
)

// Config captures SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends a single message per call over SMTP.
type SMTPMailer struct {
	cfg Config
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(_ context.Context, job ports.EmailJob) error {
	subject, body, err := compose(job)
	if err != nil {
		return err
	}

	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + job.To,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{job.To}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", job.To, err)
	}
	return nil
}

func compose(job ports.EmailJob) (subject, body string, err error) {
	name := job.Name
	if name == "" {
		name = "there"
	}

	switch job.Kind {
	case ports.EmailConfirmation:
		subject = "Confirm your email address"
		body = fmt.Sprintf("Hi %s,\n\nYour confirmation code is: %s\n\nEnter it in the shop to activate your account.\n", name, job.Code)
	case ports.EmailPasswordReset:
		subject = "Reset your password"
		body = fmt.Sprintf("Hi %s,\n\nA password reset was requested for your account.\nFollow this link within one hour to choose a new password:\n\n%s\n\nIf you did not request this, you can ignore this message.\n", name, job.Link)
	default:
		return "", "", fmt.Errorf("unknown email kind %q", job.Kind)
	}
	return subject, body, nil
}
