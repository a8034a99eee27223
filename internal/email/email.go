package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/medicore/hospital-api/internal/config"
	"github.com/medicore/hospital-api/internal/model"
)

// Sender delivers transactional mail. Delivery is best effort; callers log
// failures and never surface them to patients.
type Sender interface {
	SendBookingConfirmation(appointment *model.Appointment) error
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSender returns an SMTP-backed sender, or a no-op sender when no SMTP
// host is configured (local development).
func NewSender(cfg config.SMTPConfig) Sender {
	if cfg.Host == "" {
		return &noopSender{}
	}
	return &smtpSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpSender) SendBookingConfirmation(appointment *model.Appointment) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", appointment.PatientEmail)
	m.SetHeader("Subject", "Your appointment request was received")

	body := fmt.Sprintf(
		"Dear %s,\n\nYour appointment on %s at %s has been recorded with status %s.\n\nMediCore Hospital",
		appointment.PatientName,
		appointment.Date,
		appointment.Time,
		appointment.Status,
	)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}

type noopSender struct{}

func (*noopSender) SendBookingConfirmation(*model.Appointment) error { return nil }
