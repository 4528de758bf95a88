package domain

import "time"

// TokenType enumerates the one-time token kinds held in the ledger.
type TokenType string

const (
	TokenTypeEmailVerify   TokenType = "email_verify"
	TokenTypePasswordReset TokenType = "password_reset"
)

// Token is a ledger entry for a one-time credential. Only the SHA-256 hash of
// the raw value is ever stored; the raw value is mailed to the user once and
// then discarded.
type Token struct {
	TokenID    string     `json:"tokenID"`
	UserID     string     `json:"userID"`
	TokenHash  string     `json:"-"`
	Type       TokenType  `json:"type"`
	Used       bool       `json:"used"`
	ExpiresAt  time.Time  `json:"expiresAt"`
	CreatedAt  time.Time  `json:"createdAt"`
	ConsumedAt *time.Time `json:"consumedAt,omitempty"`
}

// IsExpired checks if the token has expired.
func (t *Token) IsExpired() bool {
	return t.ExpiresAt.Before(time.Now())
}
