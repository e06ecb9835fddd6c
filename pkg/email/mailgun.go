package email

import (
	"context"
	"fmt"
	"time"

	"recruitme/pkg/config"
	"recruitme/pkg/logger"

	"github.com/mailgun/mailgun-go/v4"
)

const sendTimeout = 10 * time.Second

type mailgunSender struct {
	mg     *mailgun.MailgunImpl
	cfg    *config.Config
	logger *logger.Logger
}

func NewMailgunSender(cfg *config.Config, log *logger.Logger) Sender {
	return &mailgunSender{
		mg:     mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
		cfg:    cfg,
		logger: log,
	}
}

func (s *mailgunSender) SendPasswordReset(ctx context.Context, to, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.AppURL, token)

	subject := "Reset your RecruitMe password"
	text := fmt.Sprintf("Reset your password\n\n"+
		"You requested to reset your password for your RecruitMe account.\n\n"+
		"Click this link to reset your password (expires in 1 hour):\n%s\n\n"+
		"If you didn't request this, you can safely ignore this email.", resetURL)
	html := fmt.Sprintf("<h1>Reset your password</h1>"+
		"<p>You requested to reset your password for your RecruitMe account.</p>"+
		"<p>Click the link below to reset your password. This link will expire in 1 hour.</p>"+
		"<p><a href=%q>Reset Password</a></p>"+
		"<p>If you didn't request this, you can safely ignore this email. "+
		"Your password won't change unless you click the link above.</p>", resetURL)

	return s.send(ctx, to, subject, text, html)
}

func (s *mailgunSender) SendEmailVerification(ctx context.Context, to, token string) error {
	verifyURL := fmt.Sprintf("%s/verify-email?token=%s", s.cfg.AppURL, token)

	subject := "Verify your RecruitMe email"
	text := fmt.Sprintf("Verify your RecruitMe email\n\n"+
		"Thanks for signing up. Verify your email to publish your recruitment profile.\n\n"+
		"Click this link to verify (expires in 24 hours):\n%s\n\n"+
		"If you didn't create an account, you can safely ignore this email.", verifyURL)
	html := fmt.Sprintf("<h1>Verify your email</h1>"+
		"<p>Thanks for signing up for RecruitMe. Verify your email to publish your "+
		"recruitment profile and get a shareable link.</p>"+
		"<p>Click the link below to verify. This link will expire in 24 hours.</p>"+
		"<p><a href=%q>Verify email</a></p>"+
		"<p>If you didn't create an account, you can safely ignore this email.</p>", verifyURL)

	return s.send(ctx, to, subject, text, html)
}

func (s *mailgunSender) send(ctx context.Context, to, subject, text, html string) error {
	message := s.mg.NewMessage(s.cfg.MailgunFrom, subject, text, to)
	message.SetHtml(html)

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	_, id, err := s.mg.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("Sent email %q to %s (message id %s)", subject, to, id)
	return nil
}
