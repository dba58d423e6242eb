package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"prepwise-backend/internal/controller"
	"prepwise-backend/internal/metrics"
	"prepwise-backend/internal/model"
	"prepwise-backend/internal/repository"
	"prepwise-backend/internal/service"
	"prepwise-backend/utilities"
)

// stubLLM fails every call, so the services serve fallback content.
// Handlers must still report success.
type stubLLM struct{}

func (stubLLM) GenerateResponse(context.Context, string, string) (string, error) {
	return "", errors.New("upstream unavailable")
}

func newRouter(t *testing.T) (*gin.Engine, repository.QuestionRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bus := utilities.NewEventBus()
	questionRepo := repository.NewQuestionRepository()
	interviewRepo := repository.NewInterviewRepository()
	progressRepo := repository.NewProgressRepository()

	questionService := service.NewQuestionService(questionRepo, stubLLM{}, bus)
	interviewService := service.NewInterviewService(interviewRepo, questionRepo, questionService, bus)

	m := metrics.New()
	m.Bind(bus)

	r := gin.New()
	controller.RegisterRoutes(r, controller.Controllers{
		Question:  controller.NewQuestionController(questionService, questionRepo),
		Interview: controller.NewInterviewController(interviewService, service.NewReportService()),
		Progress:  controller.NewProgressController(service.NewProgressService(progressRepo)),
		System:    controller.NewSystemController(m),
	})
	return r, questionRepo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateQuestionsEndpoint(t *testing.T) {
	tests := map[string]struct {
		body       any
		wantStatus int
		assert     func(t *testing.T, body []byte)
	}{
		"serves fallback questions when the upstream is down": {
			body: gin.H{
				"role":          "Backend Engineer",
				"question_type": "technical",
				"count":         5,
			},
			wantStatus: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var questions []model.Question
				require.NoError(t, json.Unmarshal(body, &questions))
				require.Len(t, questions, 3)
				require.Equal(t, model.QuestionTypeTechnical, questions[0].QuestionType)
			},
		},
		"rejects an unknown question type": {
			body: gin.H{
				"role":          "Backend Engineer",
				"question_type": "trivia",
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		"rejects a count above the limit": {
			body: gin.H{
				"role":          "Backend Engineer",
				"question_type": "technical",
				"count":         21,
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		"rejects a missing role": {
			body: gin.H{
				"question_type": "technical",
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, _ := newRouter(t)

			w := doJSON(t, r, http.MethodPost, "/api/questions/generate", tt.body)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.assert != nil {
				tt.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestSubmitAnswerEndpoint(t *testing.T) {
	r, questionRepo := newRouter(t)
	require.NoError(t, questionRepo.Save(&model.Question{ID: "q-1", Question: "What is a slice?"}))

	t.Run("returns fallback feedback for a known question", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/answers/submit", gin.H{
			"question_id": "q-1",
			"user_answer": "A slice is a view over an array.",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var fb model.AnswerFeedback
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fb))
		require.Equal(t, 75.0, fb.Score)
	})

	t.Run("404 for an unknown question", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/answers/submit", gin.H{
			"question_id": "missing",
			"user_answer": "anything",
		})

		require.Equal(t, http.StatusNotFound, w.Code)
		require.Contains(t, w.Body.String(), "Question not found")
	})

	t.Run("422 for a missing answer", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/answers/submit", gin.H{
			"question_id": "q-1",
		})

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestMockInterviewLifecycle(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/mock-interview/start", gin.H{
		"role":           "Backend Engineer",
		"question_types": []string{"technical", "behavioral"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var iv model.MockInterview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &iv))
	require.NotEmpty(t, iv.InterviewID)
	require.Equal(t, model.StatusNotStarted, iv.Status)
	// Fallback serves at most three questions per type.
	require.Len(t, iv.Questions, 6)

	w = doJSON(t, r, http.MethodPost, "/api/mock-interview/"+iv.InterviewID+"/begin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Interview started")

	w = doJSON(t, r, http.MethodPost, "/api/mock-interview/"+iv.InterviewID+"/submit-answer", gin.H{
		"question_id": iv.Questions[0].ID,
		"user_answer": "my answer",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/mock-interview/"+iv.InterviewID+"/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary model.InterviewSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Equal(t, model.StatusCompleted, summary.Status)
	require.Equal(t, 1, summary.QuestionsAnswered)
	require.Equal(t, 6, summary.TotalQuestions)
	require.Equal(t, 75.0, summary.OverallScore)
}

func TestMockInterviewEndpoints_UnknownInterview(t *testing.T) {
	r, _ := newRouter(t)

	for _, path := range []string{
		"/api/mock-interview/missing/begin",
		"/api/mock-interview/missing/complete",
	} {
		w := doJSON(t, r, http.MethodPost, path, nil)
		require.Equal(t, http.StatusNotFound, w.Code, path)
		require.Contains(t, w.Body.String(), "Interview not found", path)
	}

	w := doJSON(t, r, http.MethodPost, "/api/mock-interview/missing/submit-answer", gin.H{
		"question_id": "q",
		"user_answer": "a",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Interview not found")

	w = doJSON(t, r, http.MethodGet, "/api/mock-interview/missing/report", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestInterviewReportEndpoint(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/mock-interview/start", gin.H{
		"role":           "Backend Engineer",
		"question_types": []string{"technical"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var iv model.MockInterview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &iv))

	w = doJSON(t, r, http.MethodGet, "/api/mock-interview/"+iv.InterviewID+"/report", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	require.Contains(t, w.Header().Get("Content-Disposition"), iv.InterviewID)
	require.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestInterviewTipsEndpoint(t *testing.T) {
	r, _ := newRouter(t)

	t.Run("serves static tips when the upstream is down", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/interview-tips/behavioral", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			QuestionType model.QuestionType `json:"question_type"`
			Tips         string             `json:"tips"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, model.QuestionTypeBehavioral, resp.QuestionType)
		require.Contains(t, resp.Tips, "STAR method")
	})

	t.Run("rejects an unknown question type", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/interview-tips/trivia", nil)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestProgressEndpoint(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/progress/someone", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var p model.UserProgress
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	require.Equal(t, "someone", p.UserID)
	require.Equal(t, 0, p.TotalQuestionsAttempted)
	require.Len(t, p.QuestionsByType, 4)
}

func TestSystemEndpoints(t *testing.T) {
	r, _ := newRouter(t)

	t.Run("root lists the endpoints", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/", nil)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Interview Preparation API")
		require.Contains(t, w.Body.String(), "/api/questions/generate")
	})

	t.Run("health reports healthy with a timestamp", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/health", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "healthy", resp["status"])
		require.NotEmpty(t, resp["timestamp"])
	})

	t.Run("stats exposes the counters", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/stats", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var snap metrics.Snapshot
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	})
}
