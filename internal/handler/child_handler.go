package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/child-therapy-api/internal/dto"
	"github.com/noah-isme/child-therapy-api/internal/service"
	"github.com/noah-isme/child-therapy-api/pkg/response"
)

// ChildHandler exposes child profile and linking endpoints.
type ChildHandler struct {
	children *service.ChildService
}

// NewChildHandler constructs a child handler.
func NewChildHandler(children *service.ChildService) *ChildHandler {
	return &ChildHandler{children: children}
}

// Create godoc
// @Summary      Create child
// @Description  Registers a child under the calling doctor, optionally provisioning the parent account
// @Tags         children
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  dto.CreateChildRequest  true  "Child details"
// @Success      201  {object}  response.Envelope{data=dto.CreateChildResponse}
// @Router       /children [post]
func (h *ChildHandler) Create(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateChildRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.children.CreateChild(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

// Get godoc
// @Summary      Get child
// @Description  Returns a child profile the caller is allowed to see
// @Tags         children
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Child ID"
// @Success      200  {object}  response.Envelope{data=dto.ChildResponse}
// @Failure      403  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /children/{id} [get]
func (h *ChildHandler) Get(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	child, err := h.children.AuthorizeAccess(c.Request.Context(), claims.UserID, claims.Role, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.ChildResponse{
		ID:        child.ID,
		ChildCode: child.ChildCode,
		Name:      child.Name,
		Age:       child.Age,
		Gender:    child.Gender,
		Diagnosis: child.Diagnosis,
		CreatedAt: child.CreatedAt,
	}, nil)
}

// ListForDoctor godoc
// @Summary      List assigned children
// @Tags         children
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=[]dto.ChildResponse}
// @Router       /doctor/children [get]
func (h *ChildHandler) ListForDoctor(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	children, err := h.children.ListForDoctor(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, children, nil)
}

// ListForParent godoc
// @Summary      List linked children
// @Tags         children
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=[]dto.ChildResponse}
// @Router       /parent/children [get]
func (h *ChildHandler) ListForParent(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	children, err := h.children.ListForParent(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, children, nil)
}

// VerifyCode godoc
// @Summary      Verify child code
// @Tags         children
// @Accept       json
// @Produce      json
// @Param        request  body  dto.VerifyCodeRequest  true  "Code"
// @Success      200  {object}  response.Envelope{data=dto.VerifyCodeResponse}
// @Router       /children/verify-code [post]
func (h *ChildHandler) VerifyCode(c *gin.Context) {
	var req dto.VerifyCodeRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.children.VerifyCode(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// Link godoc
// @Summary      Link child
// @Description  Attaches the child behind the code to the calling parent
// @Tags         children
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  dto.LinkChildRequest  true  "Child code"
// @Success      200  {object}  response.Envelope{data=dto.LinkChildResponse}
// @Failure      404  {object}  response.Envelope
// @Router       /parent/link-child [post]
func (h *ChildHandler) Link(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.LinkChildRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.children.LinkByCode(c.Request.Context(), claims.UserID, req.ChildCode)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}
