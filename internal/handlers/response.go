package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raghavposhaak/poshaak_backend/internal/apperrors"
	"github.com/raghavposhaak/poshaak_backend/internal/core/domain"
	"github.com/raghavposhaak/poshaak_backend/internal/dto"
	"github.com/raghavposhaak/poshaak_backend/internal/middleware"
	"github.com/raghavposhaak/poshaak_backend/internal/platform/config"
)

// sendSuccess writes the uniform success envelope.
func sendSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.NewResponse(true, message, data))
}

// sendError writes the uniform failure envelope.
func sendError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.NewErrorResponse(message))
}

// sendServiceError maps a service error onto the envelope. AppErrors carry
// their own status and client-safe message; anything else becomes a 500 and
// is logged with the underlying cause.
func sendServiceError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= http.StatusInternalServerError {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Request failed", slog.String("error", appErr.Error()))
		}
		sendError(c, appErr.Code, appErr.Message)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Error("Request failed", slog.String("error", err.Error()))
	sendError(c, http.StatusInternalServerError, "Internal server error")
}

// middlewareUser pulls the authenticated user set by the session middleware.
// A missing user means the middleware was bypassed; respond 401 and stop.
func middlewareUser(c *gin.Context) (*domain.User, bool) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		sendError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return nil, false
	}
	return user, true
}

// setSessionCookie attaches the session token as an httpOnly cookie. Secure
// is set only in production so local HTTP development keeps working.
func setSessionCookie(c *gin.Context, cfg *config.Config, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.SessionCookieName, token, int(cfg.SessionExpiryDuration.Seconds()), "/", "", cfg.IsProduction, true)
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(c *gin.Context, cfg *config.Config) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.SessionCookieName, "", -1, "/", "", cfg.IsProduction, true)
}
