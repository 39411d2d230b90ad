package mail

import (
	"errors"
	"fmt"
	"net/smtp"
	"regexp"
	"strings"

	"servana/config"
	"servana/utils"

	"go.uber.org/zap"
)

// ErrInvalidAddress is returned when a recipient or sender fails validation.
var ErrInvalidAddress = errors.New("invalid email address")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactMessage is the contact-form relay payload.
type ContactMessage struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Sender delivers marketplace email.
type Sender interface {
	SendContactEmail(msg ContactMessage) error
}

// SMTPSender implements Sender over a plain SMTP relay.
type SMTPSender struct {
	Host string
	Port string
	From string
}

// NewSender builds the SMTP sender from config.
func NewSender() *SMTPSender {
	return &SMTPSender{
		Host: config.AppConfig.SMTPHost,
		Port: config.AppConfig.SMTPPort,
		From: config.AppConfig.SMTPFrom,
	}
}

// SendContactEmail relays a contact-form message as HTML mail. The form's
// sender address goes into Reply-To; the envelope sender stays the
// configured relay identity so SPF keeps passing.
func (s *SMTPSender) SendContactEmail(msg ContactMessage) error {
	if !emailPattern.MatchString(msg.To) || !emailPattern.MatchString(msg.From) {
		return ErrInvalidAddress
	}
	if strings.TrimSpace(msg.Subject) == "" {
		return fmt.Errorf("subject is required")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.From)
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)

	addr := s.Host + ":" + s.Port
	if err := smtp.SendMail(addr, nil, s.From, []string{msg.To}, []byte(b.String())); err != nil {
		utils.GetLogger().Error("failed to send contact email",
			zap.String("to", msg.To), zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// sanitizeHeader strips CR/LF so form input cannot inject extra headers.
func sanitizeHeader(v string) string {
	v = strings.ReplaceAll(v, "\r", " ")
	return strings.ReplaceAll(v, "\n", " ")
}
