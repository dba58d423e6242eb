package model

import "time"

// Relational schema for the persistence backend. The live request path
// runs entirely on the in-memory registries; these tables are migrated
// when DB INITIALIZE is enabled and written only by the optional
// archiver, never by a request handler.

type SubscriptionTier string

const (
	TierFree       SubscriptionTier = "free"
	TierBasic      SubscriptionTier = "basic"
	TierPremium    SubscriptionTier = "premium"
	TierEnterprise SubscriptionTier = "enterprise"
)

type UserRow struct {
	ID               string           `json:"id" gorm:"primaryKey"`
	Email            string           `json:"email" gorm:"uniqueIndex;not null"`
	Name             string           `json:"name" gorm:"not null"`
	SubscriptionTier SubscriptionTier `json:"subscription_tier" gorm:"default:'free'"`
	CreatedAt        time.Time        `json:"created_at"`
	LastActive       time.Time        `json:"last_active"`
}

func (UserRow) TableName() string { return "users" }

type UserProgressRow struct {
	ID                      uint      `json:"id" gorm:"primaryKey"`
	UserID                  string    `json:"user_id" gorm:"uniqueIndex"`
	TotalQuestionsAttempted int       `json:"total_questions_attempted" gorm:"default:0"`
	TotalTimeSpentMinutes   int       `json:"total_time_spent_minutes" gorm:"default:0"`
	AverageScore            float64   `json:"average_score" gorm:"default:0"`
	QuestionsByType         string    `json:"questions_by_type" gorm:"type:jsonb"`
	Strengths               string    `json:"strengths" gorm:"type:jsonb"`
	Weaknesses              string    `json:"weaknesses" gorm:"type:jsonb"`
	ImprovementTrend        string    `json:"improvement_trend" gorm:"type:jsonb"`
	LastUpdated             time.Time `json:"last_updated"`
}

func (UserProgressRow) TableName() string { return "user_progress" }

type QuestionRow struct {
	ID                   string       `json:"id" gorm:"primaryKey"`
	QuestionText         string       `json:"question_text" gorm:"not null"`
	QuestionType         QuestionType `json:"question_type" gorm:"not null;index:idx_questions_role_type"`
	Difficulty           Difficulty   `json:"difficulty" gorm:"not null;index:idx_questions_role_type"`
	Role                 string       `json:"role" gorm:"index:idx_questions_role_type"`
	Topics               string       `json:"topics" gorm:"type:jsonb;not null"`
	ExpectedAnswerPoints string       `json:"expected_answer_points" gorm:"type:jsonb;not null"`
	FollowUpQuestions    string       `json:"follow_up_questions" gorm:"type:jsonb"`
	ModelAnswer          string       `json:"model_answer"`
	UsageCount           int          `json:"usage_count" gorm:"default:0"`
	AverageScore         *float64     `json:"average_score"`
	CreatedAt            time.Time    `json:"created_at"`
	CreatedBy            string       `json:"created_by"`
	IsActive             bool         `json:"is_active" gorm:"default:true"`
}

func (QuestionRow) TableName() string { return "questions" }

type InterviewRow struct {
	ID                 string          `json:"id" gorm:"primaryKey"`
	UserID             string          `json:"user_id" gorm:"index:idx_interviews_user_status"`
	Role               string          `json:"role" gorm:"not null"`
	Status             InterviewStatus `json:"status" gorm:"default:'not_started';index:idx_interviews_user_status"`
	DurationMinutes    int             `json:"duration_minutes"`
	Difficulty         Difficulty      `json:"difficulty"`
	StartTime          *time.Time      `json:"start_time"`
	EndTime            *time.Time      `json:"end_time"`
	OverallScore       *float64        `json:"overall_score"`
	PerformanceSummary string          `json:"performance_summary" gorm:"type:jsonb"`
	CreatedAt          time.Time       `json:"created_at"`
}

func (InterviewRow) TableName() string { return "interviews" }

// InterviewQuestionRow links interviews to questions, keeping order.
type InterviewQuestionRow struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	InterviewID string `json:"interview_id" gorm:"index"`
	QuestionID  string `json:"question_id"`
	Position    int    `json:"position"`
}

func (InterviewQuestionRow) TableName() string { return "interview_questions" }

type AnswerRow struct {
	ID                  string    `json:"id" gorm:"primaryKey"`
	UserID              string    `json:"user_id" gorm:"index:idx_answers_user_date"`
	QuestionID          string    `json:"question_id"`
	InterviewID         string    `json:"interview_id"`
	AnswerText          string    `json:"answer_text" gorm:"not null"`
	Score               float64   `json:"score"`
	TimeTakenSeconds    *int      `json:"time_taken_seconds"`
	Strengths           string    `json:"strengths" gorm:"type:jsonb"`
	AreasForImprovement string    `json:"areas_for_improvement" gorm:"type:jsonb"`
	DetailedFeedback    string    `json:"detailed_feedback"`
	SuggestedResources  string    `json:"suggested_resources" gorm:"type:jsonb"`
	SubmittedAt         time.Time `json:"submitted_at" gorm:"index:idx_answers_user_date"`
}

func (AnswerRow) TableName() string { return "answers" }

type APIKeyRow struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	UserID       string     `json:"user_id"`
	KeyHash      string     `json:"key_hash" gorm:"uniqueIndex;not null"`
	Name         string     `json:"name"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	RateLimit    int        `json:"rate_limit" gorm:"default:100"`
	RequestsUsed int        `json:"requests_used" gorm:"default:0"`
	LastUsed     *time.Time `json:"last_used"`
	CreatedAt    time.Time  `json:"created_at"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

func (APIKeyRow) TableName() string { return "api_keys" }

// QuestionBankRow caches pre-generated questions for reuse.
type QuestionBankRow struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	Role         string       `json:"role" gorm:"index;not null"`
	QuestionType QuestionType `json:"question_type" gorm:"index;not null"`
	Difficulty   Difficulty   `json:"difficulty" gorm:"index;not null"`
	Topic        string       `json:"topic" gorm:"index"`
	QuestionData string       `json:"question_data" gorm:"type:jsonb;not null"`
	CreatedAt    time.Time    `json:"created_at"`
	LastUsed     *time.Time   `json:"last_used"`
}

func (QuestionBankRow) TableName() string { return "question_bank" }

type AnalyticsRow struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         string    `json:"user_id"`
	Endpoint       string    `json:"endpoint" gorm:"not null"`
	ResponseTimeMs int       `json:"response_time_ms"`
	StatusCode     int       `json:"status_code"`
	ErrorMessage   string    `json:"error_message"`
	Metadata       string    `json:"metadata" gorm:"type:jsonb"`
	Timestamp      time.Time `json:"timestamp" gorm:"index"`
}

func (AnalyticsRow) TableName() string { return "analytics" }

// SchemaModels returns every table migrated by db.InitFromConfig.
func SchemaModels() []any {
	return []any{
		&UserRow{},
		&UserProgressRow{},
		&QuestionRow{},
		&InterviewRow{},
		&InterviewQuestionRow{},
		&AnswerRow{},
		&APIKeyRow{},
		&QuestionBankRow{},
		&AnalyticsRow{},
	}
}
