package client

import (
	"errors"
	"net/http"

	"github.com/Amin-Golden/GymWeb/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary      List clients
// @Description  Newest first, each with its memberships.
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} client.ClientWithMemberships
// @Router       /api/clients [get]
func (h *Handler) List(c *gin.Context) {
	clients, err := h.service.List(c.Request.Context())
	if err != nil {
		api.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// Get godoc
// @Summary      Get client
// @Description  Includes memberships, payments and the latest gym visits.
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Client ID"
// @Success      200 {object} client.ClientDetails
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	details, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// Create godoc
// @Summary      Register client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body client.CreateRequest true "Client"
// @Success      201 {object} client.Client
// @Failure      400 {object} api.ValidationErrorResponse
// @Router       /api/clients [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if !api.BindJSON(c, &req) {
		return
	}

	dob, _ := api.ParseTime(req.DOB)
	created, err := h.service.Create(c.Request.Context(), Params{
		FName:        &req.FName,
		LName:        req.LName,
		DOB:          &dob,
		IsMale:       req.IsMale,
		Email:        req.Email,
		PhoneNumber:  &req.PhoneNumber,
		SocialNumber: &req.SocialNumber,
		Description:  req.Description,
		Locker:       req.Locker,
		Weight:       req.Weight,
		Height:       req.Height,
	})
	if err != nil {
		api.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary      Update client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Client ID"
// @Param        request body client.UpdateRequest true "Fields to change"
// @Success      200 {object} client.Client
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/clients/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	var req UpdateRequest
	if !api.BindJSON(c, &req) {
		return
	}

	p := Params{
		FName:        req.FName,
		LName:        req.LName,
		IsMale:       req.IsMale,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		SocialNumber: req.SocialNumber,
		Description:  req.Description,
		Locker:       req.Locker,
		Weight:       req.Weight,
		Height:       req.Height,
	}
	p.DOB, _ = api.ParseOptionalTime(req.DOB)

	updated, err := h.service.Update(c.Request.Context(), id, p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary      Delete client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Client ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /api/clients/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	api.Message(c, "Client deleted successfully")
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		api.Error(c, http.StatusNotFound, "Client not found")
	case errors.Is(err, ErrHasVisits):
		api.Error(c, http.StatusConflict, "Client has gym session history and cannot be deleted")
	default:
		api.ServerError(c, err)
	}
}
