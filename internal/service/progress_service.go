package service

import (
	"prepwise-backend/internal/model"
	"prepwise-backend/internal/repository"
)

// ProgressService reads aggregate user statistics. The live service
// never updates them; unseen users get a zero-valued record.
type ProgressService interface {
	GetProgress(userID string) *model.UserProgress
}

type progressService struct {
	progressRepo repository.ProgressRepository
}

func NewProgressService(progressRepo repository.ProgressRepository) ProgressService {
	return &progressService{progressRepo: progressRepo}
}

func (s *progressService) GetProgress(userID string) *model.UserProgress {
	return s.progressRepo.Get(userID)
}
