package infra

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"

	"github.com/manu1624/saborovejero/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer delivers the daily report PDF.
type Mailer interface {
	SendReport(ctx context.Context, to, date string, pdf []byte) error
}

// SMTPMailer wraps SMTP configuration for sending emails with PDF attachments.
type SMTPMailer struct {
	host     string
	user     string
	password string
	addr     string
	business string
}

func NewMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		business: cfg.BusinessName,
	}
}

// SendReport emails the daily report PDF for a business date.
func (m *SMTPMailer) SendReport(_ context.Context, to, date string, pdf []byte) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Reporte diario %s - %s", date, m.business)
	e.Text = []byte(fmt.Sprintf("Adjunto encontrarás el reporte de ventas del día %s.", date))

	fileName := fmt.Sprintf("reporte_%s.pdf", date)
	if _, err := e.Attach(bytes.NewReader(pdf), fileName, "application/pdf"); err != nil {
		return fmt.Errorf("mailer: attach PDF: %w", err)
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
