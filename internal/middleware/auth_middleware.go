package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okan/enrollment/internal/pkg/apperrors"
	"github.com/okan/enrollment/internal/pkg/auth"
	"github.com/okan/enrollment/internal/pkg/render"
)

// ContextKeyUsername is the gin context key holding the authenticated caller.
const ContextKeyUsername = "username"

// AuthMiddleware guards the student routes with bearer-token authentication.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth validates the Authorization header. The Bearer scheme marker is
// optional; missing, expired and malformed tokens are reported separately,
// all as 401.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			render.AbortMessage(c, http.StatusUnauthorized, "token missing")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			render.AbortMessage(c, http.StatusUnauthorized, "token missing")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrTokenExpired):
				render.AbortMessage(c, http.StatusUnauthorized, "token expired")
			case errors.Is(err, apperrors.ErrTokenMissing):
				render.AbortMessage(c, http.StatusUnauthorized, "token missing")
			default:
				render.AbortMessage(c, http.StatusUnauthorized, "invalid token")
			}
			return
		}

		c.Set(ContextKeyUsername, claims.Username)
		c.Next()
	}
}
