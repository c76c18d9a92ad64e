package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/child-therapy-api/internal/middleware"
	"github.com/noah-isme/child-therapy-api/internal/models"
	appErrors "github.com/noah-isme/child-therapy-api/pkg/errors"
	"github.com/noah-isme/child-therapy-api/pkg/response"
)

// currentUser extracts the authenticated claims, writing the 401 itself when
// they are missing. Callers must return immediately on !ok.
func currentUser(c *gin.Context) (*models.JWTClaims, bool) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return nil, false
	}
	return claims, true
}

func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return false
	}
	return true
}
