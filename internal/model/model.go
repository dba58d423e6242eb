package model

import (
	"sync"
	"time"
)

// QuestionType classifies an interview question.
type QuestionType string

const (
	QuestionTypeTechnical    QuestionType = "technical"
	QuestionTypeBehavioral   QuestionType = "behavioral"
	QuestionTypeHR           QuestionType = "hr"
	QuestionTypeSystemDesign QuestionType = "system_design"
)

// QuestionTypes lists every valid question type in a stable order.
func QuestionTypes() []QuestionType {
	return []QuestionType{
		QuestionTypeTechnical,
		QuestionTypeBehavioral,
		QuestionTypeHR,
		QuestionTypeSystemDesign,
	}
}

func (qt QuestionType) Valid() bool {
	switch qt {
	case QuestionTypeTechnical, QuestionTypeBehavioral, QuestionTypeHR, QuestionTypeSystemDesign:
		return true
	}
	return false
}

// Difficulty is the requested question difficulty.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// InterviewStatus is the lifecycle state of a mock interview.
// Cancelled exists in the relational schema but is never reachable
// through the HTTP surface.
type InterviewStatus string

const (
	StatusNotStarted InterviewStatus = "not_started"
	StatusInProgress InterviewStatus = "in_progress"
	StatusCompleted  InterviewStatus = "completed"
	StatusCancelled  InterviewStatus = "cancelled"
)

// Question is an immutable generated interview question.
type Question struct {
	ID                   string       `json:"id"`
	Question             string       `json:"question"`
	QuestionType         QuestionType `json:"question_type"`
	Difficulty           Difficulty   `json:"difficulty"`
	Topics               []string     `json:"topics"`
	ExpectedAnswerPoints []string     `json:"expected_answer_points"`
	FollowUpQuestions    []string     `json:"follow_up_questions"`
}

// AnswerFeedback is the evaluation of a single submitted answer.
type AnswerFeedback struct {
	Score               float64  `json:"score"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
	DetailedFeedback    string   `json:"detailed_feedback"`
	SuggestedResources  []string `json:"suggested_resources"`
	ModelAnswer         string   `json:"model_answer"`
}

// RecordedAnswer is one answered question inside a session.
type RecordedAnswer struct {
	Answer    string         `json:"answer"`
	Feedback  AnswerFeedback `json:"feedback"`
	TimeTaken *int           `json:"time_taken"`
}

// MockInterview is the client-facing view of a session.
type MockInterview struct {
	InterviewID string          `json:"interview_id"`
	Role        string          `json:"role"`
	Status      InterviewStatus `json:"status"`
	Questions   []Question      `json:"questions"`
	StartTime   *time.Time      `json:"start_time"`
	EndTime     *time.Time      `json:"end_time"`
}

// InterviewSession is the mutable session record kept in the registry.
// The embedded mutex guards Interview and Answers; handlers for
// different sessions never contend with each other.
type InterviewSession struct {
	sync.Mutex

	Interview       MockInterview
	DurationMinutes int
	Difficulty      Difficulty
	Answers         map[string]RecordedAnswer
}

// Snapshot returns a copy of the client-facing interview state.
func (s *InterviewSession) Snapshot() MockInterview {
	s.Lock()
	defer s.Unlock()

	iv := s.Interview
	iv.Questions = append([]Question(nil), s.Interview.Questions...)
	return iv
}

// PerformanceSummary aggregates recorded feedback scores.
type PerformanceSummary struct {
	AverageScore float64 `json:"average_score"`
	HighestScore float64 `json:"highest_score"`
	LowestScore  float64 `json:"lowest_score"`
}

// InterviewSummary is returned when a session is completed.
type InterviewSummary struct {
	InterviewID        string             `json:"interview_id"`
	Status             InterviewStatus    `json:"status"`
	OverallScore       float64            `json:"overall_score"`
	QuestionsAnswered  int                `json:"questions_answered"`
	TotalQuestions     int                `json:"total_questions"`
	PerformanceSummary PerformanceSummary `json:"performance_summary"`
}

// UserProgress is the aggregate statistics record for a user.
// The live service only ever reads it; unknown users get a zero value.
type UserProgress struct {
	UserID                  string               `json:"user_id"`
	TotalQuestionsAttempted int                  `json:"total_questions_attempted"`
	QuestionsByType         map[QuestionType]int `json:"questions_by_type"`
	AverageScore            float64              `json:"average_score"`
	Strengths               []string             `json:"strengths"`
	Weaknesses              []string             `json:"weaknesses"`
	ImprovementTrend        []float64            `json:"improvement_trend"`
}

// NewUserProgress returns the zero-valued progress record for a user.
func NewUserProgress(userID string) *UserProgress {
	byType := make(map[QuestionType]int, len(QuestionTypes()))
	for _, qt := range QuestionTypes() {
		byType[qt] = 0
	}
	return &UserProgress{
		UserID:           userID,
		QuestionsByType:  byType,
		Strengths:        []string{},
		Weaknesses:       []string{},
		ImprovementTrend: []float64{},
	}
}
