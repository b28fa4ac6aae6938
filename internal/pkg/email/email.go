package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/arohak/timesheet-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// Notifier defines the interface for sending workflow emails
type Notifier interface {
	SendResetLink(to, resetLink, expiresAt string) error
	SendApprovalNotice(to, name string) error
}

type notifierImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewNotifier creates a new email notifier instance
func NewNotifier(cfg config.SMTPConfig) (Notifier, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &notifierImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type resetLinkEmailData struct {
	ResetLink string
	ExpiresAt string
}

// SendResetLink sends an approved password reset link to the user
func (s *notifierImpl) SendResetLink(to, resetLink, expiresAt string) error {
	data := resetLinkEmailData{
		ResetLink: resetLink,
		ExpiresAt: expiresAt,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "reset_link.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Password Reset Approved", body.String())
}

type approvalNoticeEmailData struct {
	Name string
}

// SendApprovalNotice tells a user their signup was approved
func (s *notifierImpl) SendApprovalNotice(to, name string) error {
	data := approvalNoticeEmailData{Name: name}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "signup_approved.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Your Account Has Been Approved", body.String())
}

func (s *notifierImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
