package admin

import (
	"errors"
	"net/http"

	"github.com/Amin-Golden/GymWeb/internal/api"
	"github.com/Amin-Golden/GymWeb/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Login godoc
// @Summary      Admin login
// @Description  Authenticates an operator and returns access and refresh tokens.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body admin.LoginRequest true "Credentials"
// @Success      200 {object} admin.LoginResponse
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      429 {object} api.ErrorResponse
// @Router       /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !api.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			api.Error(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		api.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body admin.RefreshRequest true "Refresh token"
// @Success      200 {object} admin.RefreshResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /api/auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if !api.BindJSON(c, &req) {
		return
	}

	token, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		api.Error(c, http.StatusUnauthorized, "Invalid refresh token")
		return
	}
	c.JSON(http.StatusOK, RefreshResponse{Token: token})
}

// Me godoc
// @Summary      Current admin
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} admin.Admin
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	id, ok := auth.GetAdminID(c)
	if !ok {
		api.Error(c, http.StatusUnauthorized, "Access token required")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.Error(c, http.StatusNotFound, "Admin not found")
			return
		}
		api.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}
