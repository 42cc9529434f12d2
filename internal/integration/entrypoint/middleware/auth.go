// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/atelier-crm/backend/internal/application/adapter"
	domainerror "github.com/atelier-crm/backend/internal/domain/error"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/dto"
)

const (
	// userIDKey holds the authenticated user's ID in the Gin context.
	userIDKey = "user_id"
	// userEmailKey holds the authenticated user's email in the Gin context.
	userEmailKey = "user_email"
)

// AuthMiddleware guards routes behind JWT access-token validation.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate returns the Gin handler enforcing a valid Bearer token. On
// success the user's ID and email are placed in the request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, code, msg := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortUnauthorized(c, code, msg)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, domainerror.ErrCodeInvalidToken, "Invalid or expired token")
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(userEmailKey, claims.Email)
		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header, returning
// the error code and message to send when it is absent or malformed.
func bearerToken(header string) (string, domainerror.AuthErrorCode, string) {
	switch {
	case header == "":
		return "", domainerror.ErrCodeMissingToken, "Authorization header is required"
	case !strings.HasPrefix(header, "Bearer "):
		return "", domainerror.ErrCodeInvalidToken, "Invalid authorization header format"
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "", domainerror.ErrCodeMissingToken, "Token is required"
	}
	return token, "", ""
}

func abortUnauthorized(c *gin.Context, code domainerror.AuthErrorCode, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: msg,
		Code:  string(code),
	})
}

// GetUserIDFromContext extracts the authenticated user's ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetUserEmailFromContext extracts the authenticated user's email from the Gin context.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get(userEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
