package adapter

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/notification/mailer/port"
)

// SMTPMailer delivers through a plain SMTP relay, no auth. Suitable for the
// usual in-cluster relay or a local mailhog during development.
type SMTPMailer struct {
	addr string
	from string
}

func NewSMTPMailer(addr, from string) *SMTPMailer {
	return &SMTPMailer{addr: addr, from: from}
}

var _ port.Mailer = (*SMTPMailer)(nil)

func (m *SMTPMailer) Send(ctx context.Context, mail port.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := buildMessage(m.from, mail)
	if err := smtp.SendMail(m.addr, nil, m.from, []string{mail.To}, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", mail.To, err)
	}
	return nil
}

func buildMessage(from string, mail port.Email) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", mail.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mail.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(mail.Body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
