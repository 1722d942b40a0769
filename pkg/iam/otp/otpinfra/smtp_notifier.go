package otpinfra

import (
	"context"
	"fmt"
	"net/smtp"
	"os"
	"time"

	"github.com/carevo/platform/pkg/iam/otp"
	"github.com/carevo/platform/pkg/kernel"
	"github.com/carevo/platform/pkg/logx"
)

const otpEmailTemplate = `<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <h2 style="color: #1f2937;">Password Reset Request</h2>
      <p>You have requested to reset your password for your Placement Cell account.</p>
      <p>Your One-Time Password (OTP) is:</p>
      <div style="background-color: #f3f4f6; padding: 20px; text-align: center; border-radius: 8px; margin: 20px 0;">
        <h1 style="color: #1f2937; font-size: 32px; letter-spacing: 8px; margin: 0;">%s</h1>
      </div>
      <p><strong>This OTP will expire in %d minutes.</strong></p>
      <p>If you did not request this password reset, please ignore this email.</p>
      <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 30px 0;">
      <p style="color: #6b7280; font-size: 12px;">
        This is an automated message from Placement Cell. Please do not reply to this email.
      </p>
    </div>
  </body>
</html>`

// SMTPConfig carries mail delivery settings.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

// SMTPConfigFromEnv reads mail settings from the environment. Host and port
// default to Gmail.
func SMTPConfigFromEnv() SMTPConfig {
	cfg := SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("EMAIL_USER"),
		Password: os.Getenv("EMAIL_PASSWORD"),
	}
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	return cfg
}

// Configured reports whether credentials are present.
func (c SMTPConfig) Configured() bool {
	return c.Username != "" && c.Password != ""
}

// SMTPNotifier delivers OTP codes by email. Without configured credentials
// it logs the code instead, which keeps local development working without a
// mail account.
type SMTPNotifier struct {
	cfg SMTPConfig
}

func NewSMTPNotifier(cfg SMTPConfig) otp.Notifier {
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) SendOTP(ctx context.Context, email kernel.Email, code string, ttl time.Duration) error {
	if !n.cfg.Configured() {
		logx.Warnf("Email credentials not configured, OTP for %s: %s", email, code)
		return nil
	}

	subject := "Password Reset OTP - Placement Cell"
	body := fmt.Sprintf(otpEmailTemplate, code, int(ttl.Minutes()))
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		n.cfg.Username, email, subject, body,
	))

	addr := n.cfg.Host + ":" + n.cfg.Port
	authn := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	if err := smtp.SendMail(addr, authn, n.cfg.Username, []string{email.String()}, msg); err != nil {
		logx.Errorf("Failed to send OTP email to %s: %v", email, err)
		return fmt.Errorf("send otp email: %w", err)
	}

	logx.Infof("OTP email sent to %s", email)
	return nil
}
