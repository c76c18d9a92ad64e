package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/child-therapy-api/internal/dto"
	"github.com/noah-isme/child-therapy-api/internal/service"
	"github.com/noah-isme/child-therapy-api/pkg/response"
)

// AuthHandler exposes login and registration endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary      Login
// @Description  Authenticates a doctor or parent and returns a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  dto.LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Envelope{data=dto.LoginResponse}
// @Failure      401  {object}  response.Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// RegisterDoctor godoc
// @Summary      Register doctor
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  dto.RegisterDoctorRequest  true  "Doctor details"
// @Success      201  {object}  response.Envelope{data=dto.UserResponse}
// @Failure      409  {object}  response.Envelope
// @Router       /auth/register/doctor [post]
func (h *AuthHandler) RegisterDoctor(c *gin.Context) {
	var req dto.RegisterDoctorRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.auth.RegisterDoctor(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

// RegisterParent godoc
// @Summary      Register parent
// @Description  Creates a parent account, optionally linking a child by code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  dto.RegisterParentRequest  true  "Parent details"
// @Success      201  {object}  response.Envelope{data=dto.UserResponse}
// @Failure      404  {object}  response.Envelope
// @Failure      409  {object}  response.Envelope
// @Router       /auth/register/parent [post]
func (h *AuthHandler) RegisterParent(c *gin.Context) {
	var req dto.RegisterParentRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.auth.RegisterParent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}
