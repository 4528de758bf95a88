package models

import (
	"database/sql"
	"time"
)

// Token is the database representation of a one-time token ledger entry.
type Token struct {
	TokenID    string       `db:"token_id"`
	UserID     string       `db:"user_id"`
	TokenHash  string       `db:"token_hash"`
	Type       string       `db:"type"`
	Used       bool         `db:"used"`
	ExpiresAt  time.Time    `db:"expires_at"`
	CreatedAt  time.Time    `db:"created_at"`
	ConsumedAt sql.NullTime `db:"consumed_at"`
}
