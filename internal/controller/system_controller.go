package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"prepwise-backend/internal/metrics"
)

type SystemController struct {
	metrics *metrics.Metrics
}

func NewSystemController(m *metrics.Metrics) *SystemController {
	return &SystemController{metrics: m}
}

// Root handles GET /
func (sc *SystemController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Interview Preparation API",
		"endpoints": gin.H{
			"generate_questions": "/api/questions/generate",
			"submit_answer":      "/api/answers/submit",
			"mock_interview":     "/api/mock-interview/start",
			"interview_tips":     "/api/interview-tips/{question_type}",
			"progress":           "/api/progress/{user_id}",
		},
	})
}

// Health handles GET /health
func (sc *SystemController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Stats handles GET /api/stats
func (sc *SystemController) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, sc.metrics.Snapshot())
}
