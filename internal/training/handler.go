package training

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

// @Summary      List training sessions
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} training.SessionDetails
// @Router       /api/sessions [get]
func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		api.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Get training session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Success      200 {object} training.SessionDetails
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/sessions/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	s, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary      Schedule training session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body training.CreateRequest true "Session"
// @Success      201 {object} training.SessionDetails
// @Failure      400 {object} api.ValidationErrorResponse
// @Router       /api/sessions [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if !api.BindJSON(c, &req) {
		return
	}

	instructorID := req.InstructorID.Int64()
	membershipID := req.MembershipID.Int64()
	at, _ := api.ParseTime(req.DestinationDate)
	s, err := h.repo.Create(c.Request.Context(), Params{
		InstructorID:    &instructorID,
		MembershipID:    &membershipID,
		DestinationDate: &at,
		IsAttended:      req.IsAttended,
		Description:     req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// @Summary      Update training session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Param        request body training.UpdateRequest true "Fields to change"
// @Success      200 {object} training.SessionDetails
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/sessions/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	var req UpdateRequest
	if !api.BindJSON(c, &req) {
		return
	}

	p := Params{IsAttended: req.IsAttended, Description: req.Description}
	if req.InstructorID != nil {
		v := req.InstructorID.Int64()
		p.InstructorID = &v
	}
	if req.MembershipID != nil {
		v := req.MembershipID.Int64()
		p.MembershipID = &v
	}
	p.DestinationDate, _ = api.ParseOptionalTime(req.DestinationDate)

	s, err := h.repo.Update(c.Request.Context(), id, p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary      Delete training session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/sessions/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	api.Message(c, "Session deleted successfully")
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		api.Error(c, http.StatusNotFound, "Session not found")
	case errors.Is(err, ErrInvalidReference):
		api.Error(c, http.StatusBadRequest, "Instructor or membership does not exist")
	default:
		api.ServerError(c, err)
	}
}
