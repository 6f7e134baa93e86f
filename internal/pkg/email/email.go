// Package email sends notification mail over SMTP and dispatches it
// asynchronously so request handlers never block on mail delivery.
package email

import (
	"fmt"
	"net/smtp"

	"github.com/grupoidi/deptoweb/internal/pkg/logger"
)

// Sender delivers a single message
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPConfig carries the connection parameters of the mail relay
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPSender sends mail through a configured relay. When no host or
// credentials are configured it logs the message instead of sending,
// which keeps development setups working without a mail server.
type SMTPSender struct {
	config SMTPConfig
}

// NewSMTPSender creates a sender for the given relay configuration
func NewSMTPSender(config SMTPConfig) *SMTPSender {
	return &SMTPSender{config: config}
}

func (s *SMTPSender) devMode() bool {
	return s.config.Host == "" || s.config.Username == ""
}

// Send delivers one HTML message to a single recipient
func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	if s.devMode() {
		logger.Info().
			Str("to", to).
			Str("subject", subject).
			Msg("SMTP not configured, skipping email delivery")
		return nil
	}

	from := fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	msg := []byte(
		"From: " + from + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
			"\r\n" +
			htmlBody)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("error sending email to %s: %w", to, err)
	}

	return nil
}
