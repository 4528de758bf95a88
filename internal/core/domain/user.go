package domain

import "time"

// UserRole enumerates the flat role field on a user account.
type UserRole string

const (
	RoleUser    UserRole = "user"
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
)

// AuthProvider identifies a third-party identity provider.
type AuthProvider string

const ProviderGoogle AuthProvider = "google"

// User represents a storefront account in the domain.
// PasswordHash is empty for accounts created through OAuth linking that never
// set a password.
type User struct {
	UserID       string     `json:"userID"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone,omitempty"`
	GoogleID     string     `json:"-"`
	PasswordHash string     `json:"-"` // Never expose the hash in JSON responses
	Role         UserRole   `json:"role"`
	IsVerified   bool       `json:"isVerified"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// IsRole reports whether the user has the given role.
func (u *User) IsRole(role UserRole) bool {
	return u.Role == role
}

// GoogleUserInfo holds the profile fields returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
