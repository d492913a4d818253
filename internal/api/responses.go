package api

import (
	"net/http"

	"github.com/Amin-Golden/GymWeb/internal/logger"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Message string `json:"message" example:"Client not found"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Client deleted successfully"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message,omitempty" example:"Gym Management API is running"`
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Message: message})
}

// ServerError logs err and answers with a generic 500.
func ServerError(c *gin.Context, err error) {
	logger.WithError(err).Error("request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Server error"})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}
