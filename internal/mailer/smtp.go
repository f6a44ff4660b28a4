package mailer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// Domain is used on the right-hand side of generated Message-Ids.
	Domain string
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPMailer struct {
	d      dialer
	domain string
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	domain := cfg.Domain
	if domain == "" {
		domain = cfg.Host
	}
	return &SMTPMailer{
		d:      gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		domain: domain,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, e Email) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(e.To) == 0 {
		return "", fmt.Errorf("email %q has no recipient", e.Subject)
	}

	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), m.domain)
	msg := buildMessage(e, id)
	if err := m.d.DialAndSend(msg); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}
	logrus.WithFields(logrus.Fields{"to": e.To, "subject": e.Subject, "message_id": id}).Info("email sent")
	return id, nil
}

func buildMessage(e Email, id string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("Message-Id", id)
	msg.SetHeader("From", e.From)
	msg.SetHeader("To", e.To...)
	if len(e.Cc) > 0 {
		msg.SetHeader("Cc", e.Cc...)
	}
	if len(e.Bcc) > 0 {
		msg.SetHeader("Bcc", e.Bcc...)
	}
	msg.SetHeader("Subject", e.Subject)
	msg.SetBody("text/plain", e.Text)
	if e.HTML != "" {
		msg.AddAlternative("text/html", e.HTML)
	}
	return msg
}
