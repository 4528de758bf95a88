package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/raghavposhaak/poshaak_backend/internal/core/ports/services"
	"github.com/raghavposhaak/poshaak_backend/internal/dto"
	"github.com/raghavposhaak/poshaak_backend/internal/platform/config"
)

// authHandler handles the public authentication endpoints.
type authHandler struct {
	cfg         *config.Config
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(cfg *config.Config, authService portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{
		cfg:         cfg,
		authService: authService,
	}
}

// registerAuthRoutes sets up the public /api/auth routes.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(cfg, authService)

	rg.POST("/signup", h.signup)
	rg.GET("/verify-email", h.verifyEmail)
	rg.POST("/resend-verification", h.resendVerification)
	rg.POST("/login", h.login)
	rg.POST("/forgot-password", h.forgotPassword)
	rg.POST("/reset-password", h.resetPassword)
	rg.POST("/logout", h.logout)
	rg.GET("/check-username", h.checkUsername)
}

// signup godoc
// @Summary Register a new account
// @Description Creates an unverified user and emails a verification link.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Registration details"
// @Success 201 {object} dto.Response{data=dto.SignupResponse}
// @Failure 400 {object} dto.Response "Missing fields or duplicate email/username"
// @Failure 500 {object} dto.Response
// @Router /api/auth/signup [post]
func (h *authHandler) signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "All required fields are not provided")
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, "User registered successfully. Please verify your email.", dto.SignupResponse{UserID: user.UserID})
}

// verifyEmail godoc
// @Summary Verify an email address
// @Description Consumes the emailed verification token and marks the account verified.
// @Tags auth
// @Produce json
// @Param token query string true "Raw verification token"
// @Param id query string true "User id"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Invalid, expired or used link"
// @Failure 404 {object} dto.Response "User missing"
// @Router /api/auth/verify-email [get]
func (h *authHandler) verifyEmail(c *gin.Context) {
	rawToken := c.Query("token")
	userID := c.Query("id")
	if rawToken == "" || userID == "" {
		sendError(c, http.StatusBadRequest, "Invalid or expired verification link.")
		return
	}

	if err := h.authService.VerifyEmail(c.Request.Context(), userID, rawToken); err != nil {
		sendServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, "Email verified successfully.", nil)
}

// resendVerification godoc
// @Summary Resend the verification email
// @Description Issues a fresh verification link. The response does not reveal whether the account exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param resend body dto.ResendVerificationRequest true "Account email"
// @Success 200 {object} dto.Response
// @Failure 429 {object} dto.Response "Cooldown active"
// @Router /api/auth/resend-verification [post]
func (h *authHandler) resendVerification(c *gin.Context) {
	var req dto.ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Email required.")
		return
	}

	if err := h.authService.ResendVerification(c.Request.Context(), req.Email); err != nil {
		sendServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, "If an account exists for that email, a verification email has been sent.", nil)
}

// login godoc
// @Summary Log in
// @Description Authenticates by username or email and sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credentials (username or email, plus password)"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 401 {object} dto.Response "Invalid credentials"
// @Failure 403 {object} dto.Response "Email not verified"
// @Router /api/auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Identifier()) == "" {
		sendError(c, http.StatusBadRequest, "Username or email and password are required.")
		return
	}

	user, token, _, err := h.authService.Login(c.Request.Context(), req.Identifier(), req.Password)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	setSessionCookie(c, h.cfg, token)
	sendSuccess(c, http.StatusOK, "Logged in successfully.", dto.ToUserResponse(user))
}

// forgotPassword godoc
// @Summary Request a password reset
// @Description Emails a reset link. The response does not reveal whether the account exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgot body dto.ForgotPasswordRequest true "Account email or username"
// @Success 200 {object} dto.Response
// @Failure 429 {object} dto.Response "Cooldown active"
// @Router /api/auth/forgot-password [post]
func (h *authHandler) forgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Identifier()) == "" {
		sendError(c, http.StatusBadRequest, "Email or username required.")
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req.Identifier()); err != nil {
		sendServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, "If an account exists, a password reset email has been sent.", nil)
}

// resetPassword godoc
// @Summary Reset a forgotten password
// @Description Consumes the emailed reset token and stores the new password.
// @Tags auth
// @Accept json
// @Produce json
// @Param token query string true "Raw reset token"
// @Param id query string true "User id"
// @Param reset body dto.ResetPasswordRequest true "New password"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Invalid, expired or used link, or weak password"
// @Failure 404 {object} dto.Response "User missing"
// @Router /api/auth/reset-password [post]
func (h *authHandler) resetPassword(c *gin.Context) {
	rawToken := c.Query("token")
	userID := c.Query("id")
	if rawToken == "" || userID == "" {
		sendError(c, http.StatusBadRequest, "Invalid or expired reset link.")
		return
	}

	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "New password is required and must be at least 8 characters.")
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), userID, rawToken, req.NewPassword); err != nil {
		sendServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, "Password has been reset successfully.", nil)
}

// logout godoc
// @Summary Log out
// @Description Clears the session cookie. The credential itself stays valid until expiry.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Router /api/auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	clearSessionCookie(c, h.cfg)
	sendSuccess(c, http.StatusOK, "Logged out successfully.", nil)
}

// checkUsername godoc
// @Summary Check username availability
// @Tags auth
// @Produce json
// @Param username query string true "Username to check"
// @Success 200 {object} dto.Response{data=dto.UsernameAvailabilityResponse}
// @Failure 400 {object} dto.Response
// @Router /api/auth/check-username [get]
func (h *authHandler) checkUsername(c *gin.Context) {
	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		sendError(c, http.StatusBadRequest, "Username is required.")
		return
	}

	available, err := h.authService.IsUsernameAvailable(c.Request.Context(), username)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, "Username availability checked.", dto.UsernameAvailabilityResponse{Available: available})
}
