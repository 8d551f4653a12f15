package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	sharedConfig "github.com/venda-inc/venda/internal/shared/config"
	"github.com/venda-inc/venda/internal/shared/logger"
)

// Mailer sends operational notification emails.
type Mailer interface {
	Send(to []string, subject, body string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	logger logger.Interface
}

func NewSMTPMailer(cfg sharedConfig.EmailConfig, log logger.Interface) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	return &SMTPMailer{
		dialer: dialer,
		from:   fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress),
		logger: log,
	}
}

func (m *SMTPMailer) Send(to []string, subject, body string) error {
	if len(to) == 0 {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Errorw("failed to send email", "error", err, "subject", subject)
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Infow("email sent", "subject", subject, "recipients", len(to))
	return nil
}
