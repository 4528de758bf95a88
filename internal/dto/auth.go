package dto

// SignupRequest carries the fields required to register an account.
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,max=100"`
	Phone    string `json:"phone" binding:"omitempty"`
}

// LoginRequest accepts either a username or an email as the identifier.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// Identifier returns whichever of username/email was provided, preferring
// username when both are present.
func (r LoginRequest) Identifier() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

// ResendVerificationRequest asks for a fresh email-verification link.
type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPasswordRequest accepts either an email or a username.
type ForgotPasswordRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Identifier returns whichever of email/username was provided, preferring
// email when both are present.
func (r ForgotPasswordRequest) Identifier() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

// ResetPasswordRequest carries the replacement password; the token and user id
// arrive as query parameters, mirroring the emailed link.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// ChangePasswordRequest is the authenticated password-change body.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// UpdateUsernameRequest changes the account's unique handle.
type UpdateUsernameRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
}

// UpdateNameRequest changes the display name.
type UpdateNameRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdatePhoneRequest changes the phone number; an empty value clears it.
type UpdatePhoneRequest struct {
	Phone string `json:"phone"`
}

// DeleteAccountRequest confirms account deletion with the current password.
type DeleteAccountRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
}

// GoogleLoginRequest carries a Google ID token obtained by the frontend.
type GoogleLoginRequest struct {
	Token string `json:"token" binding:"required"`
}

// ExchangeCodeRequest carries an OAuth authorization code from the redirect flow.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
