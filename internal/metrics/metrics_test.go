package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"prepwise-backend/internal/metrics"
	"prepwise-backend/internal/model"
	"prepwise-backend/utilities"
)

func TestMetrics_CountsEvents(t *testing.T) {
	bus := utilities.NewEventBus()
	m := metrics.New()
	m.Bind(bus)

	bus.Publish(utilities.EventQuestionGenerated, []model.Question{{ID: "a"}, {ID: "b"}})
	bus.Publish(utilities.EventAnswerEvaluated, "q-1")
	bus.Publish(utilities.EventAnswerEvaluated, "q-2")
	bus.Publish(utilities.EventInterviewStarted, "iv-1")
	bus.Publish(utilities.EventInterviewCompleted, nil)
	bus.Publish(utilities.EventLLMFallback, "generate_questions")
	bus.Wait()

	snap := m.Snapshot()
	require.Equal(t, int64(2), snap.QuestionsGenerated)
	require.Equal(t, int64(2), snap.AnswersEvaluated)
	require.Equal(t, int64(1), snap.InterviewsStarted)
	require.Equal(t, int64(1), snap.InterviewsCompleted)
	require.Equal(t, int64(1), snap.FallbacksServed)
	require.False(t, snap.LastUpdate.IsZero())
}

func TestMetrics_ZeroSnapshot(t *testing.T) {
	m := metrics.New()

	snap := m.Snapshot()

	require.Zero(t, snap.QuestionsGenerated)
	require.Zero(t, snap.FallbacksServed)
}
