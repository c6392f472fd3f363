package mailer

import (
	"fmt"
	"net"
	"net/smtp"
	"time"
)

// SMTP sends mail through a plain SMTP relay. Intended for local development
// against MailHog, which accepts unauthenticated connections on port 1025.
type SMTP struct {
	Host    string
	Port    int
	Sender  string
	Timeout time.Duration
}

func NewSMTP(host string, port int, sender string, timeout time.Duration) *SMTP {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SMTP{Host: host, Port: port, Sender: sender, Timeout: timeout}
}

// Send writes a minimal text/plain message to the relay.
func (s *SMTP) Send(to, subject, body string) error {
	addr := net.JoinHostPort(s.Host, fmt.Sprintf("%d", s.Port))

	conn, err := net.DialTimeout("tcp", addr, s.Timeout)
	if err != nil {
		return fmt.Errorf("smtp dial %s: %w", addr, err)
	}
	c, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer func() { _ = c.Close() }()

	if err := c.Mail(s.Sender); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n", s.Sender, to, subject, body)
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("smtp write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close body: %w", err)
	}
	return c.Quit()
}
