package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"clicksafe/pkg/utils"
)

// SMTPDispatcher sends the passcode over SMTP with PLAIN auth.
type SMTPDispatcher struct {
	config utils.EmailConfig
}

func NewSMTPDispatcher(config utils.EmailConfig) *SMTPDispatcher {
	return &SMTPDispatcher{config: config}
}

func (d *SMTPDispatcher) Dispatch(_ context.Context, to string, purpose Purpose, code string) error {
	subject, heading, intro := template(purpose)

	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding: 20px;">
  <h2>%s</h2>
  <p>%s</p>
  <h1 style="color: #5b21b6; letter-spacing: 5px;">%s</h1>
  <p>This code will expire in 10 minutes.</p>
  <p>If you didn't request this code, please ignore this email.</p>
</div>`, heading, intro, code)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		d.config.From, to, subject, body)

	addr := fmt.Sprintf("%s:%d", d.config.Host, d.config.Port)
	auth := smtp.PlainAuth("", d.config.User, d.config.Password, d.config.Host)

	if err := smtp.SendMail(addr, auth, d.config.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send %s mail to %s: %w", purpose, to, err)
	}

	return nil
}

func template(purpose Purpose) (subject, heading, intro string) {
	if purpose == PurposePasswordReset {
		return "ClickSafe - Password Reset OTP",
			"ClickSafe Password Reset",
			"Your password reset OTP code is:"
	}
	return "ClickSafe - Email Verification OTP",
		"ClickSafe Email Verification",
		"Your OTP code is:"
}
