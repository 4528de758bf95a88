// Package mailer sends the transactional account emails over SMTP. It is the
// only place that ever sees a raw ledger token besides the issuing service.
package mailer

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/gomail.v2"

	portssvc "github.com/raghavposhaak/poshaak_backend/internal/core/ports/services"
	"github.com/raghavposhaak/poshaak_backend/internal/platform/config"
)

// SMTPMailer implements portssvc.MailerSvc over gomail. Send failures are
// returned to the caller untouched; there is no retry here.
type SMTPMailer struct {
	dialer          *gomail.Dialer
	from            string
	frontendBaseURL string
}

// NewSMTPMailer constructs the mailer from config. It is injected into the
// auth service at startup, never a package singleton.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer:          gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:            cfg.EmailFrom,
		frontendBaseURL: strings.TrimRight(cfg.FrontendBaseURL, "/"),
	}
}

var _ portssvc.MailerSvc = (*SMTPMailer)(nil)

func (m *SMTPMailer) send(toEmail, subject, textBody, htmlBody string) error {
	if m.from == "" {
		return fmt.Errorf("mail sender address not configured (EMAIL_FROM)")
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	msg.AddAlternative("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}

func (m *SMTPMailer) link(path, rawToken, userID string) string {
	return fmt.Sprintf("%s%s?token=%s&id=%s",
		m.frontendBaseURL, path, url.QueryEscape(rawToken), url.QueryEscape(userID))
}

// SendVerificationEmail mails the email-verification link. The raw token is
// transmitted to the user exactly once, here.
func (m *SMTPMailer) SendVerificationEmail(_ context.Context, toEmail string, userID string, rawToken string) error {
	verifyURL := m.link("/verify-email", rawToken, userID)

	text := fmt.Sprintf(`Welcome to Raghav Poshaak!

Please verify your email by clicking the link below:

%s

This link expires in 24 hours.

If you didn't create an account, you can ignore this email.`, verifyURL)

	html := fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; line-height:1.5;">
        <h2>Welcome to Raghav Poshaak</h2>
        <p>Thank you for registering. Please verify your email by clicking the button below:</p>
        <p>
          <a href="%[1]s" style="display:inline-block;padding:12px 20px;background:#111827;color:#fff;border-radius:8px;text-decoration:none;">
            Verify Email
          </a>
        </p>
        <p style="font-size:0.9rem;color:#555;">
          If the button doesn't work, copy and paste this link into your browser:
          <br/><a href="%[1]s">%[1]s</a>
        </p>
        <p style="font-size:0.85rem;color:#777;">This link expires in 24 hours.</p>
      </div>`, verifyURL)

	return m.send(toEmail, "Verify your Raghav Poshaak account", text, html)
}

// SendPasswordResetEmail mails the password-reset link.
func (m *SMTPMailer) SendPasswordResetEmail(_ context.Context, toEmail string, userID string, rawToken string) error {
	resetURL := m.link("/resetPassword", rawToken, userID)

	text := fmt.Sprintf(`You requested to reset your password.

Click the link below to create a new password:
%s

This link will expire in 15 minutes.

If you did not request a password reset, please ignore this email.`, resetURL)

	html := fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; line-height: 1.5;">
        <h2>Password Reset Request</h2>
        <p>You requested to reset your <strong>Raghav Poshaak</strong> account password.</p>
        <p>Click the button below to reset your password:</p>
        <p>
          <a href="%[1]s"
             style="display:inline-block;padding:12px 20px;background:#111827;color:#fff;border-radius:6px;text-decoration:none;font-weight:bold;">
            Reset Password
          </a>
        </p>
        <p style="font-size:0.9rem;color:#555;">
          If the button doesn't work, copy and paste this link into your browser:
          <br />
          <a href="%[1]s" style="color:#2563eb;">%[1]s</a>
        </p>
        <p style="font-size:0.85rem;color:#777;">This link will expire in <strong>15 minutes</strong>.</p>
        <p style="font-size:0.85rem;color:#777;">If you did not request a password reset, please ignore this email.</p>
      </div>`, resetURL)

	return m.send(toEmail, "Reset Your Raghav Poshaak Account Password", text, html)
}
