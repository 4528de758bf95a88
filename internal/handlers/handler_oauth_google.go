package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/raghavposhaak/poshaak_backend/internal/core/ports/services"
	"github.com/raghavposhaak/poshaak_backend/internal/dto"
	"github.com/raghavposhaak/poshaak_backend/internal/middleware"
	"github.com/raghavposhaak/poshaak_backend/internal/platform/config"
)

// googleOAuthHandler handles Google OAuth login requests. Both endpoints end
// in the same OAuth login path: the SPA flow posts an ID token directly, the
// redirect flow posts an authorization code that is exchanged for one first.
type googleOAuthHandler struct {
	cfg                *config.Config
	authService        portssvc.AuthSvcFacade
	googleOAuthService portssvc.GoogleOAuthSvcFacade
}

func newGoogleOAuthHandler(cfg *config.Config, authService portssvc.AuthSvcFacade, googleOAuthService portssvc.GoogleOAuthSvcFacade) *googleOAuthHandler {
	return &googleOAuthHandler{
		cfg:                cfg,
		authService:        authService,
		googleOAuthService: googleOAuthService,
	}
}

// registerGoogleOAuthRoutes sets up the public Google login endpoints.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newGoogleOAuthHandler(cfg, services.Auth, services.GoogleOAuth)

	google := rg.Group("/google")
	{
		google.POST("", h.loginWithIDToken)
		google.POST("/exchange-code", h.exchangeCode)
	}
}

// loginWithIDToken godoc
// @Summary Log in with a Google ID token
// @Description Validates the ID token, finds or creates the account, and sets the session cookie.
// @Tags oauth
// @Accept json
// @Produce json
// @Param body body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response "Missing or invalid ID token"
// @Router /api/auth/google [post]
func (h *googleOAuthHandler) loginWithIDToken(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Google ID token is required.")
		return
	}

	h.completeLogin(c, req.Token)
}

// exchangeCode godoc
// @Summary Log in with a Google authorization code
// @Description Exchanges the code for Google tokens, then logs in with the resulting ID token.
// @Tags oauth
// @Accept json
// @Produce json
// @Param body body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response "Invalid or expired authorization code"
// @Failure 502 {object} dto.Response "Google unreachable"
// @Router /api/auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCode(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Authorization code is required.")
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") || strings.Contains(strings.ToLower(err.Error()), "bad request") {
			sendError(c, http.StatusBadRequest, "Invalid or expired authorization code provided by Google.")
			return
		}
		sendError(c, http.StatusBadGateway, "Failed to communicate with Google OAuth service.")
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		sendError(c, http.StatusInternalServerError, "Failed to retrieve ID token from Google.")
		return
	}

	h.completeLogin(c, idTokenString)
}

// completeLogin runs the shared tail of both flows: validate the ID token,
// find/link/create the account, and issue the session.
func (h *googleOAuthHandler) completeLogin(c *gin.Context, idTokenString string) {
	user, token, _, err := h.authService.LoginWithGoogle(c.Request.Context(), idTokenString)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	setSessionCookie(c, h.cfg, token)
	sendSuccess(c, http.StatusOK, "Logged in successfully.", dto.ToUserResponse(user))
}
