package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"

	"github.com/clinicdesk/clinic-api/internal/model"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextDoctorID    = "doctorID"
	ContextDoctorEmail = "doctorEmail"
)

// TokenVerifier is the slice of the auth service the guard needs.
type TokenVerifier interface {
	VerifyToken(token string) (*model.TokenClaims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	claims   *gocache.Cache
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		// Entries expire with the tokens themselves; the janitor sweep just
		// reclaims memory.
		claims: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

// Authenticate verifies the bearer token and exposes the doctor identity to
// the handler. Verified claims are cached for the token's remaining life so
// repeated calls with the same token skip signature checks.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "no token provided"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization format"})
			return
		}
		tokenString := parts[1]

		claims, ok := m.cachedClaims(tokenString)
		if !ok {
			var err error
			claims, err = m.verifier.VerifyToken(tokenString)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
				return
			}
			if ttl := time.Until(claims.ExpiresAt); ttl > 0 {
				m.claims.Set(tokenString, claims, ttl)
			}
		}

		c.Set(ContextDoctorID, claims.DoctorID)
		c.Set(ContextDoctorEmail, claims.Email)
		c.Next()
	}
}

func (m *AuthMiddleware) cachedClaims(token string) (*model.TokenClaims, bool) {
	v, ok := m.claims.Get(token)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*model.TokenClaims)
	return claims, ok
}
