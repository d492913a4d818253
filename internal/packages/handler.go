package packages

import (
	"errors"
	"net/http"

	"github.com/Amin-Golden/GymWeb/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// @Summary      List packages
// @Tags         packages
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} packages.PackageWithCounts
// @Router       /api/packages [get]
func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		api.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Get package with its instructors
// @Tags         packages
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Package ID"
// @Success      200 {object} packages.PackageDetails
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/packages/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	p, err := h.repo.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	instructors, err := h.repo.ListInstructors(ctx, id)
	if err != nil {
		api.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, PackageDetails{PackageWithCounts: *p, Instructors: instructors})
}

// @Summary      Create package
// @Tags         packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body packages.CreateRequest true "Package"
// @Success      201 {object} packages.Package
// @Failure      400 {object} api.ValidationErrorResponse
// @Router       /api/packages [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if !api.BindJSON(c, &req) {
		return
	}
	p, err := h.repo.Create(c.Request.Context(), req)
	if err != nil {
		api.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary      Update package
// @Tags         packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Package ID"
// @Param        request body packages.UpdateRequest true "Fields to change"
// @Success      200 {object} packages.Package
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/packages/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	var req UpdateRequest
	if !api.BindJSON(c, &req) {
		return
	}
	p, err := h.repo.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Delete package
// @Tags         packages
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Package ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /api/packages/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	api.Message(c, "Package deleted successfully")
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		api.Error(c, http.StatusNotFound, "Package not found")
	case errors.Is(err, ErrInUse):
		api.Error(c, http.StatusConflict, "Package is still used by memberships or instructors")
	default:
		api.ServerError(c, err)
	}
}
