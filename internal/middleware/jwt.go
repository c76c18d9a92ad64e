package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/child-therapy-api/internal/models"
	appErrors "github.com/noah-isme/child-therapy-api/pkg/errors"
	"github.com/noah-isme/child-therapy-api/pkg/response"
)

// ContextUserKey is the gin context key holding the authenticated claims.
const ContextUserKey = "auth_user"

type tokenValidator interface {
	ValidateToken(token string) (*models.JWTClaims, error)
}

// JWT authenticates requests via the Authorization bearer header and stores
// the claims in the request context.
func JWT(auth tokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "missing authorization header"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "malformed authorization header"))
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

// RequireRoles rejects authenticated callers whose role is not listed.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "insufficient role"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// ClaimsFrom extracts the authenticated claims from the gin context.
func ClaimsFrom(c *gin.Context) (*models.JWTClaims, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*models.JWTClaims)
	return claims, ok
}
