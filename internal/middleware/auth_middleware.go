package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/graphblog/api/internal/database/service"
)

type contextKey string

const claimsKey contextKey = "currentUser"

// ClaimsFromContext returns the verified token claims attached by
// BuildContext, or false for an anonymous request.
func ClaimsFromContext(ctx context.Context) (*service.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*service.Claims)
	return claims, ok
}

// ContextWithClaims attaches claims to ctx. Exported for tests that
// exercise resolvers without going through HTTP.
func ContextWithClaims(ctx context.Context, claims *service.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// AuthMiddleware builds the per-request auth context
type AuthMiddleware struct {
	service      service.AuthService
	bearerPrefix bool
	logger       *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware instance
func NewAuthMiddleware(service service.AuthService, bearerPrefix bool, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		service:      service,
		bearerPrefix: bearerPrefix,
		logger:       logger,
	}
}

// BuildContext verifies the Authorization header and attaches the
// decoded claims to the request context. A missing header yields an
// anonymous context; a present but unverifiable token fails the whole
// request before any resolver runs.
func (m *AuthMiddleware) BuildContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		// The raw header is the token unless a Bearer scheme prefix is
		// configured.
		token := header
		if m.bearerPrefix {
			token = strings.TrimPrefix(header, "Bearer ")
		}

		claims, err := m.service.VerifyToken(token)
		if err != nil {
			m.logger.Warn("⚠️ [Middleware] Token verification failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx := ContextWithClaims(c.Request.Context(), claims)
		c.Request = c.Request.WithContext(ctx)

		m.logger.Debug("✅ [Middleware] Token verified", "user_id", claims.UserID)
		c.Next()
	}
}
