package adapter

import (
	"context"
	"log/slog"
	"sync"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/notification/mailer/port"
)

// LogMailer writes mails to the log instead of delivering them. Used when no
// SMTP relay is configured and by tests, which inspect Sent().
type LogMailer struct {
	log *slog.Logger

	mu   sync.Mutex
	sent []port.Email
}

func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

var _ port.Mailer = (*LogMailer)(nil)

func (m *LogMailer) Send(_ context.Context, mail port.Email) error {
	m.log.Info("mail (log only)", "to", mail.To, "subject", mail.Subject)
	m.mu.Lock()
	m.sent = append(m.sent, mail)
	m.mu.Unlock()
	return nil
}

func (m *LogMailer) Sent() []port.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]port.Email, len(m.sent))
	copy(out, m.sent)
	return out
}
