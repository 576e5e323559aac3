package notification

import (
	"bytes"
	"context"
	"crypto/tls"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/dclhub/dcl-hub-backend/config"
)

//go:embed templates/confirmation.html
var templateFS embed.FS

var confirmationTmpl = template.Must(template.ParseFS(templateFS, "templates/confirmation.html"))

// EmailSender implements Channel using SMTP with STARTTLS
type EmailSender struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
	FromAddr string
}

// NewEmailChannel returns an SMTP sender, or a no-op channel when SMTP_HOST is unset.
func NewEmailChannel(cfg *config.Config) Channel {
	if cfg.SMTPHost == "" || cfg.SMTPFromEmail == "" {
		log.Warn().Msg("⚠️ SMTP not configured, confirmation emails disabled")
		return disabledChannel{name: "email"}
	}
	return &EmailSender{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		FromName: cfg.SMTPFromName,
		FromAddr: cfg.SMTPFromEmail,
	}
}

// Send renders the HTML template and sends the email
func (e *EmailSender) Send(ctx context.Context, to []string, subject string, body string) error {
	message, err := e.compose(to, subject, body)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%s", e.Host, e.Port)
	if err := e.sendMailWithTLS(addr, to, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Strs("to", to).Str("subject", subject).Msg("📧 Email sent")
	return nil
}

// compose builds the full RFC 5322 message.
func (e *EmailSender) compose(to []string, subject, body string) ([]byte, error) {
	var htmlBody bytes.Buffer
	if err := confirmationTmpl.Execute(&htmlBody, map[string]string{
		"Subject": subject,
		"Body":    body,
	}); err != nil {
		return nil, fmt.Errorf("failed to render email template: %w", err)
	}

	headers := []struct{ k, v string }{
		{"From", fmt.Sprintf("%s <%s>", e.FromName, e.FromAddr)},
		{"To", strings.Join(to, ", ")},
		{"Subject", subject},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/html; charset=\"UTF-8\""},
	}

	var msg strings.Builder
	for _, h := range headers {
		msg.WriteString(h.k + ": " + h.v + "\r\n")
	}
	msg.WriteString("\r\n")
	msg.Write(htmlBody.Bytes())
	return []byte(msg.String()), nil
}

func (e *EmailSender) sendMailWithTLS(addr string, to []string, message []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err = client.StartTLS(&tls.Config{ServerName: e.Host}); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}

	if e.Username != "" {
		auth := smtp.PlainAuth("", e.Username, e.Password, e.Host)
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}
	}

	if err = client.Mail(e.FromAddr); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, recipient := range to {
		if err = client.Rcpt(recipient); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", recipient, err)
		}
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = writer.Write(message); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}

	return client.Quit()
}
