package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dclhub/dcl-hub-backend/config"
	"github.com/dclhub/dcl-hub-backend/internal/auth"
)

// bearerToken returns the token from "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// PublicKeyAuth guards the public submission endpoints. Browsers send the
// publishable anon key as a bearer token.
func PublicKeyAuth(cfg *config.Config) gin.HandlerFunc {
	want := []byte(cfg.PublicAnonKey)
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok || len(want) == 0 || subtle.ConstantTimeCompare([]byte(token), want) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// AdminAuth validates admin JWTs and stores the claims under "admin_claims".
func AdminAuth(authSvc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}
		claims, err := authSvc.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set("admin_claims", claims)
		c.Next()
	}
}
