package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/raghavposhaak/poshaak_backend/internal/core/domain"
)

// userIDKey and userKey store the authenticated user in the request context.
const (
	userIDKey = contextKey("userID")
	userKey   = contextKey("user")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if v := c.Request.Context().Value(userIDKey); v != nil {
			return v.(string), true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

// GetUserFromContext retrieves the authenticated user resolved by the session
// middleware. The password hash is already excluded from outward forms; the
// domain value here is the freshly fetched record.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	userVal, exists := c.Get(string(userKey))
	if !exists {
		return nil, false
	}
	user, ok := userVal.(*domain.User)
	if !ok {
		return nil, false
	}
	return user, true
}
