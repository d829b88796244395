package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/literary-depot/internal/interface/http/dto"
	"github.com/xiebiao/literary-depot/pkg/response"
)

// HealthHandler reports liveness. It does not check the database.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, dto.HealthResponse{
		Status:  "healthy",
		Message: "Literary Depot API is running",
	})
}
