package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prepwise-backend/internal/model"
	"prepwise-backend/internal/repository"
	"prepwise-backend/internal/service"
)

type QuestionController struct {
	questionService service.QuestionService
	questionRepo    repository.QuestionRepository
}

func NewQuestionController(questionService service.QuestionService, questionRepo repository.QuestionRepository) *QuestionController {
	return &QuestionController{
		questionService: questionService,
		questionRepo:    questionRepo,
	}
}

// GenerateQuestions handles POST /api/questions/generate
func (qc *QuestionController) GenerateQuestions(c *gin.Context) {
	var req model.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if !req.Normalize() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid question_type, difficulty, or count"})
		return
	}

	questions := qc.questionService.GenerateQuestions(c.Request.Context(), req.Role, req.QuestionType, req.Difficulty, req.Count, req.Topics)
	c.JSON(http.StatusOK, questions)
}

// SubmitAnswer handles POST /api/answers/submit
func (qc *QuestionController) SubmitAnswer(c *gin.Context) {
	var sub model.AnswerSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	question, err := qc.questionRepo.Get(sub.QuestionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	feedback := qc.questionService.EvaluateAnswer(c.Request.Context(), question, sub.UserAnswer)
	c.JSON(http.StatusOK, feedback)
}

// InterviewTips handles GET /api/interview-tips/:question_type
func (qc *QuestionController) InterviewTips(c *gin.Context) {
	qt := model.QuestionType(c.Param("question_type"))
	if !qt.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid question type"})
		return
	}

	tips := qc.questionService.InterviewTips(c.Request.Context(), qt)
	c.JSON(http.StatusOK, gin.H{
		"question_type": qt,
		"tips":          tips,
	})
}
