package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/child-therapy-api/internal/service"
	appErrors "github.com/noah-isme/child-therapy-api/pkg/errors"
	"github.com/noah-isme/child-therapy-api/pkg/response"
)

// ReportHandler exposes the weekly and monthly progress report endpoints.
// Reports are recomputed on every request.
type ReportHandler struct {
	reports  *service.ProgressService
	children *service.ChildService
}

// NewReportHandler constructs a report handler.
func NewReportHandler(reports *service.ProgressService, children *service.ChildService) *ReportHandler {
	return &ReportHandler{reports: reports, children: children}
}

// Weekly godoc
// @Summary      Weekly report
// @Description  Aggregates the trailing 7-day window of sessions for a child
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        childId  path  string  true  "Child ID"
// @Success      200  {object}  response.Envelope{data=dto.WeeklyReport}
// @Failure      403  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /reports/weekly/{childId} [get]
func (h *ReportHandler) Weekly(c *gin.Context) {
	childID, ok := h.authorize(c)
	if !ok {
		return
	}

	report, err := h.reports.BuildWeeklyReport(c.Request.Context(), childID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report, nil)
}

// Monthly godoc
// @Summary      Monthly report
// @Description  Aggregates a calendar month with weekly trends and recommendations
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        childId  path   string  true   "Child ID"
// @Param        month    query  int     false  "Month 1-12, defaults to current"
// @Param        year     query  int     false  "Year, defaults to current"
// @Success      200  {object}  response.Envelope{data=dto.MonthlyReport}
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /reports/monthly/{childId} [get]
func (h *ReportHandler) Monthly(c *gin.Context) {
	childID, ok := h.authorize(c)
	if !ok {
		return
	}

	month, year, ok := monthYearParams(c)
	if !ok {
		return
	}

	report, err := h.reports.BuildMonthlyReport(c.Request.Context(), childID, month, year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report, nil)
}

// MonthlyPDF godoc
// @Summary      Monthly report PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        childId  path   string  true   "Child ID"
// @Param        month    query  int     false  "Month 1-12, defaults to current"
// @Param        year     query  int     false  "Year, defaults to current"
// @Success      200  {file}  binary
// @Failure      404  {object}  response.Envelope
// @Router       /reports/monthly/{childId}/pdf [get]
func (h *ReportHandler) MonthlyPDF(c *gin.Context) {
	childID, ok := h.authorize(c)
	if !ok {
		return
	}

	month, year, ok := monthYearParams(c)
	if !ok {
		return
	}

	report, err := h.reports.BuildMonthlyReport(c.Request.Context(), childID, month, year)
	if err != nil {
		response.Error(c, err)
		return
	}

	pdf, err := h.reports.RenderMonthlyPDF(report)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("progress-report-%s-%d-%02d.pdf", report.ChildID, report.Year, report.Month)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *ReportHandler) authorize(c *gin.Context) (string, bool) {
	claims, ok := currentUser(c)
	if !ok {
		return "", false
	}

	childID := c.Param("childId")
	if _, err := h.children.AuthorizeAccess(c.Request.Context(), claims.UserID, claims.Role, childID); err != nil {
		response.Error(c, err)
		return "", false
	}
	return childID, true
}

func monthYearParams(c *gin.Context) (month, year int, ok bool) {
	var err error
	if raw := c.Query("month"); raw != "" {
		if month, err = strconv.Atoi(raw); err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "month must be an integer"))
			return 0, 0, false
		}
	}
	if raw := c.Query("year"); raw != "" {
		if year, err = strconv.Atoi(raw); err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "year must be an integer"))
			return 0, 0, false
		}
	}
	return month, year, true
}
