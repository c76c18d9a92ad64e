package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/child-therapy-api/internal/models"
	appErrors "github.com/noah-isme/child-therapy-api/pkg/errors"
)

type stubValidator struct {
	claims *models.JWTClaims
	err    error
}

func (s *stubValidator) ValidateToken(string) (*models.JWTClaims, error) {
	return s.claims, s.err
}

func newJWTRouter(v tokenValidator, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{JWT(v)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		claims, _ := ClaimsFrom(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestJWTMissingHeader(t *testing.T) {
	r := newJWTRouter(&stubValidator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMalformedHeader(t *testing.T) {
	r := newJWTRouter(&stubValidator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTInvalidToken(t *testing.T) {
	r := newJWTRouter(&stubValidator{err: appErrors.ErrUnauthorized})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTValidTokenSetsClaims(t *testing.T) {
	r := newJWTRouter(&stubValidator{claims: &models.JWTClaims{UserID: "u1", Role: models.RoleDoctor}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestRequireRoles(t *testing.T) {
	validator := &stubValidator{claims: &models.JWTClaims{UserID: "p1", Role: models.RoleParent}}

	r := newJWTRouter(validator, RequireRoles(models.RoleDoctor))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	r = newJWTRouter(validator, RequireRoles(models.RoleDoctor, models.RoleParent))
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
