package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"prepwise-backend/internal/model"
	"prepwise-backend/internal/repository"
	"prepwise-backend/internal/service"
)

type InterviewController struct {
	interviewService service.InterviewService
	reportService    service.ReportService
}

func NewInterviewController(interviewService service.InterviewService, reportService service.ReportService) *InterviewController {
	return &InterviewController{
		interviewService: interviewService,
		reportService:    reportService,
	}
}

// Start handles POST /api/mock-interview/start
func (ic *InterviewController) Start(c *gin.Context) {
	var req model.MockInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if !req.Normalize() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid question_types, difficulty, or duration_minutes"})
		return
	}

	interview := ic.interviewService.Start(c.Request.Context(), req)
	c.JSON(http.StatusOK, interview)
}

// Begin handles POST /api/mock-interview/:id/begin
func (ic *InterviewController) Begin(c *gin.Context) {
	interviewID := c.Param("id")

	if err := ic.interviewService.Begin(c.Request.Context(), interviewID); err != nil {
		respondNotFoundOrError(c, err, "Interview not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Interview started",
		"interview_id": interviewID,
	})
}

// SubmitAnswer handles POST /api/mock-interview/:id/submit-answer
func (ic *InterviewController) SubmitAnswer(c *gin.Context) {
	interviewID := c.Param("id")

	var sub model.AnswerSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	// The 404 text distinguishes an unknown interview from an unknown
	// question, so resolve the interview first.
	if _, err := ic.interviewService.Get(interviewID); err != nil {
		respondNotFoundOrError(c, err, "Interview not found")
		return
	}

	feedback, err := ic.interviewService.SubmitAnswer(c.Request.Context(), interviewID, sub)
	if err != nil {
		respondNotFoundOrError(c, err, "Question not found")
		return
	}

	c.JSON(http.StatusOK, feedback)
}

// Complete handles POST /api/mock-interview/:id/complete
func (ic *InterviewController) Complete(c *gin.Context) {
	interviewID := c.Param("id")

	summary, err := ic.interviewService.Complete(c.Request.Context(), interviewID)
	if err != nil {
		respondNotFoundOrError(c, err, "Interview not found")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Report handles GET /api/mock-interview/:id/report
func (ic *InterviewController) Report(c *gin.Context) {
	interviewID := c.Param("id")

	session, err := ic.interviewService.Get(interviewID)
	if err != nil {
		respondNotFoundOrError(c, err, "Interview not found")
		return
	}

	pdf, err := ic.reportService.GenerateReport(session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=interview_%s.pdf", interviewID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func respondNotFoundOrError(c *gin.Context, err error, detail string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": detail})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
