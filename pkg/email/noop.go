package email

import (
	"context"

	"recruitme/pkg/logger"
)

type noopSender struct {
	logger *logger.Logger
}

// NewNoopSender returns a Sender that logs instead of delivering.
// Wired in when Mailgun credentials are not configured.
func NewNoopSender(log *logger.Logger) Sender {
	return &noopSender{logger: log}
}

func (s *noopSender) SendPasswordReset(ctx context.Context, to, token string) error {
	s.logger.Warn("Email not configured, skipping password reset email to %s", to)
	return nil
}

func (s *noopSender) SendEmailVerification(ctx context.Context, to, token string) error {
	s.logger.Warn("Email not configured, skipping verification email to %s", to)
	return nil
}
