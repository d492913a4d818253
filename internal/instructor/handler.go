package instructor

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

// @Summary      List instructors
// @Tags         instructors
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} instructor.InstructorWithPackage
// @Router       /api/instructors [get]
func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		api.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Get instructor
// @Tags         instructors
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Instructor ID"
// @Success      200 {object} instructor.InstructorWithPackage
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/instructors/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	i, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, i)
}

// @Summary      Create instructor
// @Tags         instructors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body instructor.CreateRequest true "Instructor"
// @Success      201 {object} instructor.InstructorWithPackage
// @Failure      400 {object} api.ValidationErrorResponse
// @Router       /api/instructors [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if !api.BindJSON(c, &req) {
		return
	}

	packageID := req.PackageID.Int64()
	dob, _ := api.ParseTime(req.DOB)
	i, err := h.repo.Create(c.Request.Context(), Params{
		PackageID:   &packageID,
		FName:       &req.FName,
		LName:       req.LName,
		DOB:         &dob,
		IsMale:      req.IsMale,
		Salary:      &req.Salary,
		Email:       req.Email,
		Title:       &req.Title,
		Description: req.Description,
		PhoneNumber: &req.PhoneNumber,
		ImagePath:   req.ImagePath,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, i)
}

// @Summary      Update instructor
// @Tags         instructors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Instructor ID"
// @Param        request body instructor.UpdateRequest true "Fields to change"
// @Success      200 {object} instructor.InstructorWithPackage
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/instructors/{id} [put]
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
		FName:       req.FName,
		LName:       req.LName,
		IsMale:      req.IsMale,
		Salary:      req.Salary,
		Email:       req.Email,
		Title:       req.Title,
		Description: req.Description,
		PhoneNumber: req.PhoneNumber,
		ImagePath:   req.ImagePath,
	}
	if req.PackageID != nil {
		v := req.PackageID.Int64()
		p.PackageID = &v
	}
	p.DOB, _ = api.ParseOptionalTime(req.DOB)

	i, err := h.repo.Update(c.Request.Context(), id, p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, i)
}

// @Summary      Delete instructor
// @Tags         instructors
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Instructor ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /api/instructors/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	api.Message(c, "Instructor deleted successfully")
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		api.Error(c, http.StatusNotFound, "Instructor not found")
	case errors.Is(err, ErrUnknownPackage):
		api.Error(c, http.StatusBadRequest, "Package does not exist")
	case errors.Is(err, ErrInUse):
		api.Error(c, http.StatusConflict, "Instructor is still assigned to memberships or sessions")
	default:
		api.ServerError(c, err)
	}
}
