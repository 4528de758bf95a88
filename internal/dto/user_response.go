package dto

import (
	"time"

	"github.com/raghavposhaak/poshaak_backend/internal/core/domain"
)

// UserResponse is the outward shape of a user. The password hash never leaves
// the store; the Google subject id is likewise internal.
type UserResponse struct {
	UserID     string    `json:"userId"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its outward representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:     user.UserID,
		Username:   user.Username,
		Email:      user.Email,
		Name:       user.Name,
		Phone:      user.Phone,
		Role:       string(user.Role),
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}

// SignupResponse returns the new account's id so the client can poll
// verification status.
type SignupResponse struct {
	UserID string `json:"userId"`
}

// UsernameAvailabilityResponse reports whether a username is free.
type UsernameAvailabilityResponse struct {
	Available bool `json:"available"`
}
