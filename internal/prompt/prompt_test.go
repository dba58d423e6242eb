package prompt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"prepwise-backend/internal/model"
	"prepwise-backend/internal/prompt"
)

func TestQuestions(t *testing.T) {
	got := prompt.Questions("Backend Engineer", model.QuestionTypeTechnical, model.DifficultyHard, 4, []string{"Go", "Postgres"})

	require.Contains(t, got, "Generate 4 hard technical interview questions")
	require.Contains(t, got, "Backend Engineer position")
	require.Contains(t, got, "focusing on Go, Postgres")
	require.Contains(t, got, "JSON array")
}

func TestQuestions_NoTopics(t *testing.T) {
	got := prompt.Questions("Backend Engineer", model.QuestionTypeBehavioral, model.DifficultyEasy, 2, nil)

	require.Contains(t, got, "Generate 2 easy behavioral interview questions")
	require.NotContains(t, got, "focusing on")
}

func TestEvaluation(t *testing.T) {
	q := &model.Question{
		Question:             "What is a goroutine?",
		ExpectedAnswerPoints: []string{"lightweight thread", "runtime scheduler"},
	}

	got := prompt.Evaluation(q, "It is a lightweight thread.")

	require.Contains(t, got, "Question: What is a goroutine?")
	require.Contains(t, got, "Expected key points: lightweight thread, runtime scheduler")
	require.Contains(t, got, "User's Answer: It is a lightweight thread.")
	require.Contains(t, got, `"score"`)
}

func TestTips(t *testing.T) {
	got := prompt.Tips(model.QuestionTypeHR)

	require.Contains(t, got, "5 expert tips")
	require.Contains(t, got, "hr interview questions")
}
