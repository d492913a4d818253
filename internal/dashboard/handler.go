package dashboard

import (
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

// Stats godoc
// @Summary      Dashboard counters
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dashboard.Stats
// @Router       /api/dashboard/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		api.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RecentActivity godoc
// @Summary      Latest records and clients currently inside
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dashboard.RecentActivity
// @Router       /api/dashboard/recent-activity [get]
func (h *Handler) RecentActivity(c *gin.Context) {
	activity, err := h.service.RecentActivity(c.Request.Context())
	if err != nil {
		api.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}
