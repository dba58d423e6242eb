package controller

import (
	"github.com/gin-gonic/gin"
)

// Controllers groups the handler sets the router mounts.
type Controllers struct {
	Question  *QuestionController
	Interview *InterviewController
	Progress  *ProgressController
	System    *SystemController
	Auth      *AuthController // nil unless token auth is enabled
}

// RegisterRoutes mounts every endpoint on the engine.
func RegisterRoutes(r *gin.Engine, ctrl Controllers) {
	r.GET("/", ctrl.System.Root)
	r.GET("/health", ctrl.System.Health)

	if ctrl.Auth != nil {
		auth := r.Group("/auth")
		{
			auth.POST("/token", ctrl.Auth.Token)
			auth.POST("/refresh", ctrl.Auth.Refresh)
		}
	}

	api := r.Group("/api")
	{
		api.POST("/questions/generate", ctrl.Question.GenerateQuestions)
		api.POST("/answers/submit", ctrl.Question.SubmitAnswer)
		api.GET("/interview-tips/:question_type", ctrl.Question.InterviewTips)

		mock := api.Group("/mock-interview")
		{
			mock.POST("/start", ctrl.Interview.Start)
			mock.POST("/:id/begin", ctrl.Interview.Begin)
			mock.POST("/:id/submit-answer", ctrl.Interview.SubmitAnswer)
			mock.POST("/:id/complete", ctrl.Interview.Complete)
			mock.GET("/:id/report", ctrl.Interview.Report)
		}

		api.GET("/progress/:user_id", ctrl.Progress.GetProgress)
		api.GET("/stats", ctrl.System.Stats)
	}
}
