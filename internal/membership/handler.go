package membership

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

// @Summary      List memberships
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} membership.Details
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/memberships [get]
func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		api.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Get membership with its training sessions
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Membership ID"
// @Success      200 {object} membership.DetailsWithSessions
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/memberships/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	m, err := h.repo.GetByID(ctx, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	sessions, err := h.repo.ListSessions(ctx, id)
	if err != nil {
		api.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, DetailsWithSessions{Details: *m, Sessions: sessions})
}

// @Summary      Create membership
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body membership.CreateRequest true "Membership payload"
// @Success      201 {object} membership.Details
// @Failure      400 {object} api.ValidationErrorResponse
// @Router       /api/memberships [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if !api.BindJSON(c, &req) {
		return
	}

	start, _ := api.ParseTime(req.StartDate)
	end, _ := api.ParseTime(req.EndDate)
	paid, _ := api.ParseTime(req.PaymentDate)
	if end.Before(start) {
		api.Error(c, http.StatusBadRequest, "End date must not be before start date")
		return
	}

	params := CreateParams{
		ClientID:     req.ClientID.Int64(),
		PackageID:    req.PackageID.Int64(),
		InstructorID: req.InstructorID.Int64(),
		Status:       req.Status,
		StartDate:    start,
		EndDate:      end,
		PaymentDate:  paid,
		IsPaid:       *req.IsPaid,
		Description:  req.Description,
	}
	if req.RemainSessions != nil {
		params.RemainSessions = *req.RemainSessions
	}

	m, err := h.repo.Create(c.Request.Context(), params)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// @Summary      Update membership
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Membership ID"
// @Param        request body membership.UpdateRequest true "Fields to change"
// @Success      200 {object} membership.Details
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/memberships/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	var req UpdateRequest
	if !api.BindJSON(c, &req) {
		return
	}

	params := UpdateParams{
		Status:         req.Status,
		IsPaid:         req.IsPaid,
		Description:    req.Description,
		RemainSessions: req.RemainSessions,
		ClientID:       optionalID(req.ClientID),
		PackageID:      optionalID(req.PackageID),
		InstructorID:   optionalID(req.InstructorID),
	}
	params.StartDate, _ = api.ParseOptionalTime(req.StartDate)
	params.EndDate, _ = api.ParseOptionalTime(req.EndDate)
	params.PaymentDate, _ = api.ParseOptionalTime(req.PaymentDate)

	m, err := h.repo.Update(c.Request.Context(), id, params)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary      Delete membership
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Membership ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/memberships/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	api.Message(c, "Membership deleted successfully")
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		api.Error(c, http.StatusNotFound, "Membership not found")
	case errors.Is(err, ErrInvalidReference):
		api.Error(c, http.StatusBadRequest, "Client, package or instructor does not exist")
	default:
		api.ServerError(c, err)
	}
}

func optionalID(id *api.ID) *int64 {
	if id == nil {
		return nil
	}
	v := id.Int64()
	return &v
}
