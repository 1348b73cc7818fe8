package mailer

import (
	"fmt"
	"net/smtp"

	"onboarding-backend/internal/common/logger"
)

// Mailer sends plain-text mail to a single recipient.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers mail over an authenticated SMTP connection.
type SMTPMailer struct {
	host     string
	port     int
	user     string
	password string
	fromName string
}

func NewSMTPMailer(host string, port int, user, password, fromName string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		fromName: fromName,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	from := fmt.Sprintf("%q <%s>", m.fromName, m.user)

	msg := []byte(
		"From: " + from + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body + "\r\n")

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return smtp.SendMail(addr, auth, m.user, []string{to}, msg)
}

// NoopMailer logs instead of sending. Used when SMTP_DISABLED is set.
type NoopMailer struct{}

func (NoopMailer) Send(to, subject, _ string) error {
	logger.Warn().Str("to", to).Str("subject", subject).Msg("SMTP disabled, mail not sent")
	return nil
}
