// Package metrics keeps process-wide service counters. Counters are fed
// through the event bus so the request path never blocks on them.
package metrics

import (
	"sync"
	"time"

	"prepwise-backend/internal/model"
	"prepwise-backend/utilities"
)

type Metrics struct {
	mu                  sync.RWMutex
	questionsGenerated  int64
	answersEvaluated    int64
	interviewsStarted   int64
	interviewsCompleted int64
	fallbacksServed     int64
	startTime           time.Time
	lastUpdateTime      time.Time
}

// Snapshot is the JSON view returned by GET /api/stats.
type Snapshot struct {
	QuestionsGenerated  int64     `json:"questions_generated"`
	AnswersEvaluated    int64     `json:"answers_evaluated"`
	InterviewsStarted   int64     `json:"interviews_started"`
	InterviewsCompleted int64     `json:"interviews_completed"`
	FallbacksServed     int64     `json:"fallbacks_served"`
	UptimeSeconds       int64     `json:"uptime_seconds"`
	LastUpdate          time.Time `json:"last_update"`
}

func New() *Metrics {
	now := time.Now()
	return &Metrics{
		startTime:      now,
		lastUpdateTime: now,
	}
}

// Bind subscribes the counters to the service events.
func (m *Metrics) Bind(bus *utilities.EventBus) {
	bus.Subscribe(utilities.EventQuestionGenerated, func(data interface{}) {
		n := int64(1)
		if batch, ok := data.([]model.Question); ok {
			n = int64(len(batch))
		}
		m.addN(&m.questionsGenerated, n)
	})
	bus.Subscribe(utilities.EventAnswerEvaluated, func(interface{}) { m.add(&m.answersEvaluated) })
	bus.Subscribe(utilities.EventInterviewStarted, func(interface{}) { m.add(&m.interviewsStarted) })
	bus.Subscribe(utilities.EventInterviewCompleted, func(interface{}) { m.add(&m.interviewsCompleted) })
	bus.Subscribe(utilities.EventLLMFallback, func(interface{}) { m.add(&m.fallbacksServed) })
}

func (m *Metrics) add(counter *int64) {
	m.addN(counter, 1)
}

func (m *Metrics) addN(counter *int64, n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*counter += n
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		QuestionsGenerated:  m.questionsGenerated,
		AnswersEvaluated:    m.answersEvaluated,
		InterviewsStarted:   m.interviewsStarted,
		InterviewsCompleted: m.interviewsCompleted,
		FallbacksServed:     m.fallbacksServed,
		UptimeSeconds:       int64(time.Since(m.startTime).Seconds()),
		LastUpdate:          m.lastUpdateTime,
	}
}
