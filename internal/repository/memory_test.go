package repository_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"prepwise-backend/internal/model"
	"prepwise-backend/internal/repository"
)

func TestQuestionRepository(t *testing.T) {
	repo := repository.NewQuestionRepository()

	_, err := repo.Get("missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.Equal(t, 0, repo.Count())

	q := &model.Question{ID: "q-1", Question: "What is a slice?"}
	require.NoError(t, repo.Save(q))

	got, err := repo.Get("q-1")
	require.NoError(t, err)
	require.Equal(t, q, got)
	require.Equal(t, 1, repo.Count())
}

func TestInterviewRepository(t *testing.T) {
	repo := repository.NewInterviewRepository()

	_, err := repo.Get("missing")
	require.ErrorIs(t, err, repository.ErrNotFound)

	session := &model.InterviewSession{
		Interview: model.MockInterview{
			InterviewID: "iv-1",
			Status:      model.StatusNotStarted,
		},
		Answers: make(map[string]model.RecordedAnswer),
	}
	require.NoError(t, repo.Save(session))

	got, err := repo.Get("iv-1")
	require.NoError(t, err)
	require.Same(t, session, got)
	require.Equal(t, 1, repo.Count())
}

func TestProgressRepository_DefaultsToZeroValues(t *testing.T) {
	repo := repository.NewProgressRepository()

	p := repo.Get("new-user")

	require.Equal(t, "new-user", p.UserID)
	require.Equal(t, 0, p.TotalQuestionsAttempted)
	require.Equal(t, 0.0, p.AverageScore)
	require.Empty(t, p.Strengths)
	require.Empty(t, p.Weaknesses)
	require.Empty(t, p.ImprovementTrend)
	for _, qt := range model.QuestionTypes() {
		count, ok := p.QuestionsByType[qt]
		require.True(t, ok)
		require.Equal(t, 0, count)
	}
}

func TestProgressRepository_ReturnsSavedRecord(t *testing.T) {
	repo := repository.NewProgressRepository()

	saved := model.NewUserProgress("u-1")
	saved.TotalQuestionsAttempted = 7
	saved.AverageScore = 82.5
	require.NoError(t, repo.Save(saved))

	got := repo.Get("u-1")
	require.Equal(t, 7, got.TotalQuestionsAttempted)
	require.Equal(t, 82.5, got.AverageScore)
}
