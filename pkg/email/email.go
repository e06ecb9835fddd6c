package email

import (
	"context"
)

// Sender delivers transactional mail. The composition root wires either
// the Mailgun implementation or the noop one; business logic never
// checks whether email is configured.
type Sender interface {
	SendPasswordReset(ctx context.Context, to, token string) error
	SendEmailVerification(ctx context.Context, to, token string) error
}
