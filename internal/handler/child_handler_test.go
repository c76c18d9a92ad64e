package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/child-therapy-api/internal/middleware"
	"github.com/noah-isme/child-therapy-api/internal/models"
	"github.com/noah-isme/child-therapy-api/internal/service"
	"github.com/noah-isme/child-therapy-api/pkg/response"
)

func newChildRouter(store *stubChildStore, claims *models.JWTClaims) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewChildHandler(service.NewChildService(store, nil, nil, zap.NewNop()))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set(middleware.ContextUserKey, claims)
		}
		c.Next()
	})
	r.GET("/children/:id", h.Get)
	r.GET("/doctor/children", h.ListForDoctor)
	r.GET("/parent/children", h.ListForParent)
	return r
}

func TestGetChildForAssignedDoctor(t *testing.T) {
	store := &stubChildStore{child: &models.Child{ID: "c1", ChildCode: "P-2026-0042", Name: "Mia", AssignedDoctorID: "d1"}}
	r := newChildRouter(store, &models.JWTClaims{UserID: "d1", Role: models.RoleDoctor})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/children/c1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Mia", data["name"])
	assert.Equal(t, "P-2026-0042", data["child_code"])
}

func TestGetChildForbiddenForUnlinkedParent(t *testing.T) {
	store := &stubChildStore{child: &models.Child{ID: "c1", AssignedDoctorID: "d1"}}
	r := newChildRouter(store, &models.JWTClaims{UserID: "p1", Role: models.RoleParent})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/children/c1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetChildNotFound(t *testing.T) {
	r := newChildRouter(&stubChildStore{}, &models.JWTClaims{UserID: "d1", Role: models.RoleDoctor})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/children/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListChildrenRequireAuthentication(t *testing.T) {
	r := newChildRouter(&stubChildStore{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/doctor/children", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
