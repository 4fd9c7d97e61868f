package services

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/SebastianCO11/Drone-System-Prototype/config"
)

// MailService sends the transactional mails the platform produces: delivery
// access codes at order creation and password-recovery codes.
type MailService interface {
	SendAccessCode(to, code string) error
	SendPasswordReset(to, code string) error
}

// SMTPMailService implements MailService over a plain SMTP relay
type SMTPMailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailService creates a mail service from the application configuration
func NewSMTPMailService(cfg *config.Config) *SMTPMailService {
	return &SMTPMailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.MailFrom,
	}
}

// SendAccessCode emails the 4-digit delivery code to the customer
func (s *SMTPMailService) SendAccessCode(to, code string) error {
	body := fmt.Sprintf(`
		<h2>Tu código de entrega</h2>
		<p>Utiliza este código para confirmar la entrega:</p>
		<h1 style="font-size: 40px; letter-spacing: 4px;">%s</h1>
	`, code)

	return s.send(to, "Código de entrega del dron", body)
}

// SendPasswordReset emails a one-time password-recovery code
func (s *SMTPMailService) SendPasswordReset(to, code string) error {
	body := fmt.Sprintf(`
		<h2>Recuperación de contraseña</h2>
		<p>Usa este código para restablecer tu contraseña:</p>
		<h1 style="font-size: 40px; letter-spacing: 4px;">%s</h1>
		<p>Si no solicitaste el cambio, ignora este correo.</p>
	`, code)

	return s.send(to, "Recuperación de contraseña", body)
}

func (s *SMTPMailService) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.from, "Drone Delivery"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
