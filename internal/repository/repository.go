// Package repository holds the process-wide registries behind narrow
// interfaces, so the relational schema can later replace the in-memory
// maps without touching call sites.
package repository

import (
	"errors"

	"prepwise-backend/internal/model"
)

// ErrNotFound is returned when a question or interview identifier is unknown.
var ErrNotFound = errors.New("not found")

type QuestionRepository interface {
	Save(q *model.Question) error
	Get(id string) (*model.Question, error)
	Count() int
}

type InterviewRepository interface {
	Save(s *model.InterviewSession) error
	Get(id string) (*model.InterviewSession, error)
	Count() int
}

// ProgressRepository reads aggregate user statistics. Get synthesizes a
// zero-valued record when the user is unseen rather than failing.
type ProgressRepository interface {
	Get(userID string) *model.UserProgress
	Save(p *model.UserProgress) error
}
