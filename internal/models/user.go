package models

import (
	"database/sql"
	"time"
)

// User is the database representation of a storefront account.
// Nullable columns use sql.Null* types; the domain layer works with plain
// strings and treats empty as unset.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	Name         string         `db:"name"`
	Phone        sql.NullString `db:"phone"`
	GoogleID     sql.NullString `db:"google_id"`
	PasswordHash sql.NullString `db:"password_hash"`
	Role         string         `db:"role"`
	IsVerified   bool           `db:"is_verified"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}
