package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/noah-isme/child-therapy-api/pkg/config"
)

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers messages over SMTP with STARTTLS-capable plain auth.
type Mailer struct {
	cfg config.MailConfig
}

// New constructs a Mailer from configuration.
func New(cfg config.MailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Enabled reports whether delivery is configured.
func (m *Mailer) Enabled() bool {
	return m != nil && m.cfg.Enabled && m.cfg.Host != ""
}

// Send delivers a single message. Callers treat failures as fire-and-forget.
func (m *Mailer) Send(msg Message) error {
	if !m.Enabled() {
		return fmt.Errorf("mailer disabled")
	}

	var body strings.Builder
	fmt.Fprintf(&body, "From: %s <%s>\r\n", m.cfg.FromName, m.cfg.FromEmail)
	fmt.Fprintf(&body, "To: %s\r\n", msg.To)
	fmt.Fprintf(&body, "Subject: %s\r\n", msg.Subject)
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	body.WriteString("\r\n")
	body.WriteString(msg.HTML)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.FromEmail, []string{msg.To}, []byte(body.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}
