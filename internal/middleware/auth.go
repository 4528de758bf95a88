package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/raghavposhaak/poshaak_backend/internal/apperrors"
	portssvc "github.com/raghavposhaak/poshaak_backend/internal/core/ports/services"
	"github.com/raghavposhaak/poshaak_backend/internal/dto"
)

// SessionAuthMiddleware creates a Gin middleware handler that validates the
// session credential. The credential is read from the Authorization bearer
// header first, then from the session cookie; the header takes precedence
// when both are present. On success the current user, re-fetched from the
// store, is placed in the request context.
func SessionAuthMiddleware(sessionService portssvc.SessionSvcFacade, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				logger.Warn("Authorization header format invalid")
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authorization header format must be Bearer {token}"))
				return
			}
			tokenString = parts[1]
		} else if cookieToken, err := c.Cookie(cookieName); err == nil {
			tokenString = cookieToken
		}

		if tokenString == "" {
			logger.Warn("Session credential missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Access denied. No token provided."))
			return
		}

		user, err := sessionService.ValidateSessionToken(c.Request.Context(), tokenString)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Session validation failed", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid or expired token."))
				return
			}
			logger.Error("Session validation errored", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error."))
			return
		}

		// Store the user in both the Gin context and the standard context,
		// and enrich the request logger with the user id.
		c.Set(string(userIDKey), user.UserID)
		c.Set(string(userKey), user)

		enrichedLogger := logger.With(slog.String("user_id", user.UserID))
		ctx := context.WithValue(c.Request.Context(), userIDKey, user.UserID)
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
