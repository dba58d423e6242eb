package utilities

import "sync"

// Event names published by the services.
const (
	EventQuestionGenerated  = "question_generated"
	EventAnswerEvaluated    = "answer_evaluated"
	EventInterviewStarted   = "interview_started"
	EventInterviewCompleted = "interview_completed"
	EventLLMFallback        = "llm_fallback"
)

type EventHandler func(interface{})

// EventBus is a minimal in-process pub/sub used for analytics counters
// and the optional archive hooks.
type EventBus struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
	wg       sync.WaitGroup
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(event string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.handlers[event] = append(eb.handlers[event], handler)
}

// Publish dispatches the event to every subscriber asynchronously.
func (eb *EventBus) Publish(event string, data interface{}) {
	eb.mu.RLock()
	handlers := eb.handlers[event]
	eb.mu.RUnlock()

	for _, handler := range handlers {
		h := handler
		eb.wg.Add(1)
		go func() {
			defer eb.wg.Done()
			h(data)
		}()
	}
}

// Wait blocks until all dispatched handlers have finished.
func (eb *EventBus) Wait() {
	eb.wg.Wait()
}

// Global instance wired at startup.
var GlobalEventBus = NewEventBus()
