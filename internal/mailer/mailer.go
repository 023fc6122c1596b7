// Package mailer delivers rendered reports over SMTP.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends HTML email through a single SMTP relay.
type Mailer struct {
	host     string
	port     int
	username string
	password string
}

// New creates a Mailer for the given relay and credentials.
func New(host string, port int, username, password string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// Send opens one SMTP session (STARTTLS upgrade, then login), delivers a
// single HTML message, and closes the session. The connection is released
// on every exit path; any transport or authentication failure comes back
// as an error rather than escaping the caller.
func (m *Mailer) Send(from, to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.host, m.port, m.username, m.password)

	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
