package repository

import (
	"sync"

	"prepwise-backend/internal/model"
)

// In-memory implementations. Records live for the lifetime of the
// process; nothing is evicted or persisted.

type memoryQuestionRepository struct {
	mu        sync.RWMutex
	questions map[string]*model.Question
}

func NewQuestionRepository() QuestionRepository {
	return &memoryQuestionRepository{
		questions: make(map[string]*model.Question),
	}
}

func (r *memoryQuestionRepository) Save(q *model.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.questions[q.ID] = q
	return nil
}

func (r *memoryQuestionRepository) Get(id string) (*model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.questions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return q, nil
}

func (r *memoryQuestionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.questions)
}

type memoryInterviewRepository struct {
	mu       sync.RWMutex
	sessions map[string]*model.InterviewSession
}

func NewInterviewRepository() InterviewRepository {
	return &memoryInterviewRepository{
		sessions: make(map[string]*model.InterviewSession),
	}
}

func (r *memoryInterviewRepository) Save(s *model.InterviewSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.Interview.InterviewID] = s
	return nil
}

func (r *memoryInterviewRepository) Get(id string) (*model.InterviewSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (r *memoryInterviewRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

type memoryProgressRepository struct {
	mu       sync.RWMutex
	progress map[string]*model.UserProgress
}

func NewProgressRepository() ProgressRepository {
	return &memoryProgressRepository{
		progress: make(map[string]*model.UserProgress),
	}
}

func (r *memoryProgressRepository) Get(userID string) *model.UserProgress {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.progress[userID]; ok {
		return p
	}
	return model.NewUserProgress(userID)
}

func (r *memoryProgressRepository) Save(p *model.UserProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress[p.UserID] = p
	return nil
}
