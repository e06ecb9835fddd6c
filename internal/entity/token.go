package entity

import "time"

// Token kinds for single-use credential tokens sent by email.
const (
	TokenKindPasswordReset     = "password_reset"
	TokenKindEmailVerification = "email_verification"
)

// Token lifetimes.
const (
	PasswordResetTokenTTL     = time.Hour
	EmailVerificationTokenTTL = 24 * time.Hour
)

// AuthToken is a single-use token for password reset or email
// verification. Issuing a new token invalidates the user's previous
// tokens of the same kind.
type AuthToken struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Kind      string     `json:"kind"`
	Token     string     `json:"-"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func (t *AuthToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

func (t *AuthToken) Used() bool {
	return t.UsedAt != nil
}
