package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prepwise-backend/internal/service"
)

type ProgressController struct {
	progressService service.ProgressService
}

func NewProgressController(progressService service.ProgressService) *ProgressController {
	return &ProgressController{progressService: progressService}
}

// GetProgress handles GET /api/progress/:user_id
func (pc *ProgressController) GetProgress(c *gin.Context) {
	userID := c.Param("user_id")
	c.JSON(http.StatusOK, pc.progressService.GetProgress(userID))
}
