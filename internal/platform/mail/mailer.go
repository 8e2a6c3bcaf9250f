// Package mail sends outbound notification email over SMTP.
package mail

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/smtp"
)

// SMTPSender delivers messages through an SMTP server using implicit TLS.
// It is a fire-and-forget collaborator: callers must never fail a request
// because delivery failed.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
	to       string
}

// NewSMTPSender creates a sender with fixed (from, to) addresses; per-event
// content arrives as the subject and body.
func NewSMTPSender(host, port, username, password, from, to string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		to:       to,
	}
}

// Send delivers one message to the configured recipient.
func (s *SMTPSender) Send(subject, body string) error {
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", s.from) +
			fmt.Sprintf("To: %s\r\n", s.to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	addr := s.host + ":" + s.port

	// Implicit TLS, e.g. port 465.
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.host})
	if err != nil {
		return fmt.Errorf("smtp dial failed: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return fmt.Errorf("smtp client failed: %w", err)
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth failed: %w", err)
	}

	if err := client.Mail(s.from); err != nil {
		return err
	}
	if err := client.Rcpt(s.to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

// LogSender is the notifier used when SMTP is not configured. It records the
// message instead of delivering it, so local development needs no mail server.
type LogSender struct{}

// Send logs the would-be message and succeeds.
func (LogSender) Send(subject, body string) error {
	slog.Info("mail notification (smtp not configured)", "subject", subject)
	return nil
}
