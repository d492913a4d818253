package payment

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

// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} payment.PaymentWithClient
// @Router       /api/payments [get]
func (h *Handler) List(c *gin.Context) {
	payments, err := h.repo.List(c.Request.Context())
	if err != nil {
		api.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// @Summary      Get payment
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payment ID"
// @Success      200 {object} payment.PaymentWithClient
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/payments/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	p, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Record payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body payment.CreateRequest true "Payment"
// @Success      201 {object} payment.PaymentWithClient
// @Failure      400 {object} api.ValidationErrorResponse
// @Router       /api/payments [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if !api.BindJSON(c, &req) {
		return
	}
	p, err := h.repo.Create(c.Request.Context(), req.ClientID.Int64(), req.PaymentType, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary      Update payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payment ID"
// @Param        request body payment.UpdateRequest true "Fields to change"
// @Success      200 {object} payment.PaymentWithClient
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/payments/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	var req UpdateRequest
	if !api.BindJSON(c, &req) {
		return
	}

	var clientID *int64
	if req.ClientID != nil {
		v := req.ClientID.Int64()
		clientID = &v
	}
	p, err := h.repo.Update(c.Request.Context(), id, clientID, req.PaymentType, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Delete payment
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payment ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/payments/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	api.Message(c, "Payment deleted successfully")
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		api.Error(c, http.StatusNotFound, "Payment not found")
	case errors.Is(err, ErrUnknownClient):
		api.Error(c, http.StatusBadRequest, "Client does not exist")
	default:
		api.ServerError(c, err)
	}
}
