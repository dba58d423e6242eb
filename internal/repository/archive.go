package repository

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"prepwise-backend/internal/model"
)

// GORM-backed variants targeting the relational schema. They implement
// the same interfaces as the in-memory stores and serve as the archive
// destination when the optional DB backend is enabled. No request
// handler reads through them.

type dbQuestionRepository struct {
	db *gorm.DB
}

func NewDBQuestionRepository(db *gorm.DB) QuestionRepository {
	return &dbQuestionRepository{db: db}
}

func (r *dbQuestionRepository) Save(q *model.Question) error {
	row := model.QuestionRow{
		ID:                   q.ID,
		QuestionText:         q.Question,
		QuestionType:         q.QuestionType,
		Difficulty:           q.Difficulty,
		Topics:               mustJSON(q.Topics),
		ExpectedAnswerPoints: mustJSON(q.ExpectedAnswerPoints),
		FollowUpQuestions:    mustJSON(q.FollowUpQuestions),
		CreatedAt:            time.Now(),
		CreatedBy:            "system",
		IsActive:             true,
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}

func (r *dbQuestionRepository) Get(id string) (*model.Question, error) {
	var row model.QuestionRow
	if err := r.db.Where("id = ?", id).First(&row).Error; err != nil {
		return nil, ErrNotFound
	}

	q := &model.Question{
		ID:           row.ID,
		Question:     row.QuestionText,
		QuestionType: row.QuestionType,
		Difficulty:   row.Difficulty,
	}
	fromJSON(row.Topics, &q.Topics)
	fromJSON(row.ExpectedAnswerPoints, &q.ExpectedAnswerPoints)
	fromJSON(row.FollowUpQuestions, &q.FollowUpQuestions)
	return q, nil
}

func (r *dbQuestionRepository) Count() int {
	var n int64
	r.db.Model(&model.QuestionRow{}).Count(&n)
	return int(n)
}

type dbInterviewRepository struct {
	db *gorm.DB
}

func NewDBInterviewRepository(db *gorm.DB) *dbInterviewRepository {
	return &dbInterviewRepository{db: db}
}

// Archive writes a snapshot of the session, its question links, and its
// recorded answers.
func (r *dbInterviewRepository) Archive(s *model.InterviewSession, summary *model.InterviewSummary) error {
	s.Lock()
	defer s.Unlock()

	iv := s.Interview
	row := model.InterviewRow{
		ID:              iv.InterviewID,
		Role:            iv.Role,
		Status:          iv.Status,
		DurationMinutes: s.DurationMinutes,
		Difficulty:      s.Difficulty,
		StartTime:       iv.StartTime,
		EndTime:         iv.EndTime,
		CreatedAt:       time.Now(),
	}
	if summary != nil {
		row.OverallScore = &summary.OverallScore
		row.PerformanceSummary = mustJSON(summary.PerformanceSummary)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
			return err
		}
		for i, q := range iv.Questions {
			link := model.InterviewQuestionRow{
				InterviewID: iv.InterviewID,
				QuestionID:  q.ID,
				Position:    i,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
				return err
			}
		}
		for qid, ans := range s.Answers {
			ansRow := model.AnswerRow{
				ID:                  iv.InterviewID + ":" + qid,
				QuestionID:          qid,
				InterviewID:         iv.InterviewID,
				AnswerText:          ans.Answer,
				Score:               ans.Feedback.Score,
				TimeTakenSeconds:    ans.TimeTaken,
				Strengths:           mustJSON(ans.Feedback.Strengths),
				AreasForImprovement: mustJSON(ans.Feedback.AreasForImprovement),
				DetailedFeedback:    ans.Feedback.DetailedFeedback,
				SuggestedResources:  mustJSON(ans.Feedback.SuggestedResources),
				SubmittedAt:         time.Now(),
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&ansRow).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

func fromJSON(s string, out any) {
	if s == "" {
		return
	}
	_ = json.Unmarshal([]byte(s), out)
}
