package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/child-therapy-api/internal/dto"
	"github.com/noah-isme/child-therapy-api/internal/service"
	"github.com/noah-isme/child-therapy-api/pkg/response"
)

// SessionHandler exposes therapy session logging and read endpoints.
type SessionHandler struct {
	sessions   *service.SessionService
	dashboards *service.DashboardService
}

// NewSessionHandler constructs a session handler.
func NewSessionHandler(sessions *service.SessionService, dashboards *service.DashboardService) *SessionHandler {
	return &SessionHandler{sessions: sessions, dashboards: dashboards}
}

// Create godoc
// @Summary      Log session
// @Description  Appends a therapy session with per-domain assessments
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  dto.CreateSessionRequest  true  "Session details"
// @Success      201  {object}  response.Envelope{data=dto.CreateSessionResponse}
// @Failure      404  {object}  response.Envelope
// @Router       /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.sessions.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.dashboards != nil {
		h.dashboards.InvalidateForChild(c.Request.Context(), claims.UserID)
	}
	response.Created(c, resp)
}

// ListByChild godoc
// @Summary      List sessions
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Child ID"
// @Success      200  {object}  response.Envelope{data=[]dto.SessionResponse}
// @Failure      403  {object}  response.Envelope
// @Router       /children/{id}/sessions [get]
func (h *SessionHandler) ListByChild(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	sessions, err := h.sessions.ListByChild(c.Request.Context(), claims.UserID, claims.Role, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions, nil)
}

// Get godoc
// @Summary      Get session
// @Description  Returns one session with flat per-domain quick scores
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Session ID"
// @Success      200  {object}  response.Envelope{data=dto.SessionDetail}
// @Failure      404  {object}  response.Envelope
// @Router       /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	detail, err := h.sessions.GetSession(c.Request.Context(), claims.UserID, claims.Role, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}
