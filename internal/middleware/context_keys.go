package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/pingufin/fxdesk/internal/core/domain"
)

const (
	userIDKey      = contextKey("userID")
	currentUserKey = contextKey("currentUser")
)

// GetUserIDFromContext retrieves the authenticated user ID set by AuthMiddleware.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetCurrentUserFromContext retrieves the resolved acting user set by
// CurrentUserMiddleware.
func GetCurrentUserFromContext(c *gin.Context) (domain.User, bool) {
	userVal, exists := c.Get(string(currentUserKey))
	if !exists {
		return domain.User{}, false
	}
	user, ok := userVal.(domain.User)
	if !ok {
		return domain.User{}, false
	}
	return user, true
}
