package model

// QuestionRequest is the payload for POST /api/questions/generate.
type QuestionRequest struct {
	Role         string       `json:"role" binding:"required"`
	QuestionType QuestionType `json:"question_type" binding:"required"`
	Difficulty   Difficulty   `json:"difficulty"`
	Count        int          `json:"count"`
	Topics       []string     `json:"topics"`
}

// Normalize applies defaults and reports whether the request is valid.
func (r *QuestionRequest) Normalize() bool {
	if r.Difficulty == "" {
		r.Difficulty = DifficultyMedium
	}
	if r.Count == 0 {
		r.Count = 5
	}
	return r.QuestionType.Valid() && r.Difficulty.Valid() && r.Count >= 1 && r.Count <= 20
}

// AnswerSubmission is the payload for the two answer-submission endpoints.
type AnswerSubmission struct {
	QuestionID       string `json:"question_id" binding:"required"`
	UserAnswer       string `json:"user_answer" binding:"required"`
	TimeTakenSeconds *int   `json:"time_taken_seconds"`
}

// MockInterviewRequest is the payload for POST /api/mock-interview/start.
type MockInterviewRequest struct {
	Role            string         `json:"role" binding:"required"`
	DurationMinutes int            `json:"duration_minutes"`
	QuestionTypes   []QuestionType `json:"question_types" binding:"required"`
	Difficulty      Difficulty     `json:"difficulty"`
}

// Normalize applies defaults and reports whether the request is valid.
func (r *MockInterviewRequest) Normalize() bool {
	if r.DurationMinutes == 0 {
		r.DurationMinutes = 30
	}
	if r.Difficulty == "" {
		r.Difficulty = DifficultyMedium
	}
	if len(r.QuestionTypes) == 0 {
		return false
	}
	for _, qt := range r.QuestionTypes {
		if !qt.Valid() {
			return false
		}
	}
	return r.Difficulty.Valid() && r.DurationMinutes >= 10 && r.DurationMinutes <= 120
}
