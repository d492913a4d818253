package visit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Amin-Golden/GymWeb/internal/api"
	"github.com/Amin-Golden/GymWeb/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Enter godoc
// @Summary      Register gym entrance
// @Description  Opens a visit for a client with a paid, unexpired membership.
// @Tags         gym-sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body visit.EnterRequest true "Entering client"
// @Success      201 {object} visit.VisitWithClient
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/gym-sessions [post]
func (h *Handler) Enter(c *gin.Context) {
	var req EnterRequest
	if !api.BindJSON(c, &req) {
		return
	}

	v, err := h.service.Enter(c.Request.Context(), req.ClientID.Int64(), req.LockerNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.withClient(c, v))
}

// Exit godoc
// @Summary      Register gym exit
// @Tags         gym-sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Gym session ID"
// @Success      200 {object} visit.VisitWithClient
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/gym-sessions/{id}/exit [put]
func (h *Handler) Exit(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	v, err := h.service.Exit(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.withClient(c, v))
}

// ExitClient godoc
// @Summary      Register gym exit by client
// @Description  Closes the open visit of the given client.
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Client ID"
// @Success      200 {object} visit.VisitWithClient
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/clients/{id}/exit [put]
func (h *Handler) ExitClient(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	v, err := h.service.ExitClient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.withClient(c, v))
}

// List godoc
// @Summary      List gym sessions
// @Tags         gym-sessions
// @Produce      json
// @Security     BearerAuth
// @Param        active query bool false "Only clients currently inside"
// @Success      200 {array} visit.VisitWithClient
// @Router       /api/gym-sessions [get]
func (h *Handler) List(c *gin.Context) {
	activeOnly := false
	if raw := c.Query("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			api.Error(c, http.StatusBadRequest, "Invalid active flag")
			return
		}
		activeOnly = v
	}

	visits, err := h.service.List(c.Request.Context(), activeOnly)
	if err != nil {
		api.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, visits)
}

// Get godoc
// @Summary      Get gym session
// @Tags         gym-sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Gym session ID"
// @Success      200 {object} visit.VisitWithClient
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/gym-sessions/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}

	v, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrClientNotFound):
		api.Error(c, http.StatusNotFound, "Client not found")
	case errors.Is(err, ErrNoActiveMembership):
		api.Error(c, http.StatusBadRequest, "Client does not have an active membership")
	case errors.Is(err, ErrAlreadyPresent):
		api.Error(c, http.StatusBadRequest, "Client is already in the gym")
	case errors.Is(err, ErrVisitNotFound):
		api.Error(c, http.StatusNotFound, "Gym session not found")
	case errors.Is(err, ErrNotInside):
		api.Error(c, http.StatusNotFound, "Client is not in the gym")
	default:
		api.ServerError(c, err)
	}
}

// withClient attaches the client summary to a visit that was just written.
// The transition is already committed, so a failed read still answers with
// the bare visit.
func (h *Handler) withClient(c *gin.Context, v *Visit) *VisitWithClient {
	full, err := h.service.Get(c.Request.Context(), v.ID.Int64())
	if err != nil {
		logger.WithError(err).Warn("visit re-read failed", "visit_id", v.ID.String())
		return &VisitWithClient{Visit: *v}
	}
	return full
}
