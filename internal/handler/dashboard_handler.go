package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/child-therapy-api/internal/service"
	"github.com/noah-isme/child-therapy-api/pkg/response"
)

// DashboardHandler exposes caseload summary endpoints.
type DashboardHandler struct {
	dashboards *service.DashboardService
}

// NewDashboardHandler constructs a dashboard handler.
func NewDashboardHandler(dashboards *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

// Doctor godoc
// @Summary      Doctor dashboard
// @Tags         dashboards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=dto.DoctorDashboard}
// @Router       /doctor/dashboard [get]
func (h *DashboardHandler) Doctor(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboards.DoctorDashboard(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dashboard, nil)
}

// Parent godoc
// @Summary      Parent dashboard
// @Tags         dashboards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=dto.ParentDashboard}
// @Router       /parent/dashboard [get]
func (h *DashboardHandler) Parent(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboards.ParentDashboard(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dashboard, nil)
}
