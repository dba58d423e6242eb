package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"prepwise-backend/internal/llm"
	"prepwise-backend/internal/model"
	"prepwise-backend/internal/prompt"
	"prepwise-backend/internal/repository"
	"prepwise-backend/utilities"
)

// QuestionService is the gateway to the external generation service.
// Upstream failures never surface to callers: every operation degrades
// to deterministic static content and reports success. The distinction
// is logged and counted internally only.
type QuestionService interface {
	GenerateQuestions(ctx context.Context, role string, qt model.QuestionType, difficulty model.Difficulty, count int, topics []string) []model.Question
	EvaluateAnswer(ctx context.Context, q *model.Question, userAnswer string) model.AnswerFeedback
	InterviewTips(ctx context.Context, qt model.QuestionType) string
}

type questionService struct {
	questionRepo repository.QuestionRepository
	llmClient    llm.Client
	bus          *utilities.EventBus
}

func NewQuestionService(questionRepo repository.QuestionRepository, llmClient llm.Client, bus *utilities.EventBus) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		llmClient:    llmClient,
		bus:          bus,
	}
}

// generatedQuestion mirrors one element of the JSON array requested
// from the generation service.
type generatedQuestion struct {
	Question             string   `json:"question"`
	ExpectedAnswerPoints []string `json:"expected_answer_points"`
	Topics               []string `json:"topics"`
	FollowUpQuestions    []string `json:"follow_up_questions"`
}

// GenerateQuestions asks the generation service for count questions,
// registers each under a fresh identifier, and returns them in the
// order received. Any failure falls back to template questions.
func (s *questionService) GenerateQuestions(ctx context.Context, role string, qt model.QuestionType, difficulty model.Difficulty, count int, topics []string) []model.Question {
	userPrompt := prompt.Questions(role, qt, difficulty, count, topics)

	raw, err := s.llmClient.GenerateResponse(ctx, prompt.SystemInterviewer, userPrompt)
	if err == nil {
		var questions []model.Question
		questions, err = s.parseQuestions(raw, qt, difficulty)
		if err == nil {
			s.bus.Publish(utilities.EventQuestionGenerated, questions)
			return questions
		}
	}

	utilities.Warn("question generation degraded to fallback: %v", err)
	s.bus.Publish(utilities.EventLLMFallback, "generate_questions")
	return s.fallbackQuestions(qt, difficulty, count)
}

func (s *questionService) parseQuestions(raw string, qt model.QuestionType, difficulty model.Difficulty) ([]model.Question, error) {
	var parsed []generatedQuestion
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	if len(parsed) == 0 {
		return nil, errors.New("decode questions: empty array")
	}

	questions := make([]model.Question, 0, len(parsed))
	for i, g := range parsed {
		if g.Question == "" || len(g.ExpectedAnswerPoints) == 0 || len(g.Topics) == 0 || len(g.FollowUpQuestions) == 0 {
			return nil, fmt.Errorf("decode questions: element %d is missing required fields", i)
		}

		q := model.Question{
			ID:                   uuid.New().String(),
			Question:             g.Question,
			QuestionType:         qt,
			Difficulty:           difficulty,
			Topics:               g.Topics,
			ExpectedAnswerPoints: g.ExpectedAnswerPoints,
			FollowUpQuestions:    g.FollowUpQuestions,
		}
		if err := s.questionRepo.Save(&q); err != nil {
			return nil, fmt.Errorf("register question: %w", err)
		}
		questions = append(questions, q)
	}

	return questions, nil
}

// fallbackTemplates holds the per-type template questions served when
// the generation service is unavailable. At most three are returned,
// cycling by index.
var fallbackTemplates = map[model.QuestionType][]string{
	model.QuestionTypeTechnical: {
		"Explain the concept of {topic} and how you've used it in your projects.",
		"How would you optimize {topic} for better performance?",
		"What are the trade-offs of using {topic}?",
	},
	model.QuestionTypeBehavioral: {
		"Tell me about a time when you faced a challenging deadline.",
		"Describe a situation where you had to work with a difficult team member.",
		"How do you handle failure or setbacks in your work?",
	},
	model.QuestionTypeHR: {
		"Why do you want to work for our company?",
		"What are your salary expectations?",
		"Where do you see yourself in 5 years?",
	},
	model.QuestionTypeSystemDesign: {
		"How would you design a URL shortening service?",
		"Walk me through designing a rate limiter for a public API.",
		"How would you scale a read-heavy web application?",
	},
}

func (s *questionService) fallbackQuestions(qt model.QuestionType, difficulty model.Difficulty, count int) []model.Question {
	templates := fallbackTemplates[qt]

	n := count
	if n > 3 {
		n = 3
	}

	questions := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		q := model.Question{
			ID:                   uuid.New().String(),
			Question:             templates[i%len(templates)],
			QuestionType:         qt,
			Difficulty:           difficulty,
			Topics:               []string{"general"},
			ExpectedAnswerPoints: []string{"Provide specific examples", "Show problem-solving skills"},
			FollowUpQuestions:    []string{"Can you elaborate on that?", "What did you learn from this experience?"},
		}
		if err := s.questionRepo.Save(&q); err != nil {
			utilities.Error("register fallback question: %v", err)
			continue
		}
		questions = append(questions, q)
	}

	return questions
}

// EvaluateAnswer scores a submitted answer. Any failure falls back to a
// fixed feedback record, indistinguishable in shape from a real one.
func (s *questionService) EvaluateAnswer(ctx context.Context, q *model.Question, userAnswer string) model.AnswerFeedback {
	userPrompt := prompt.Evaluation(q, userAnswer)

	raw, err := s.llmClient.GenerateResponse(ctx, prompt.SystemEvaluator, userPrompt)
	if err == nil {
		var fb model.AnswerFeedback
		fb, err = parseFeedback(raw)
		if err == nil {
			s.bus.Publish(utilities.EventAnswerEvaluated, q.ID)
			return fb
		}
	}

	utilities.Warn("answer evaluation degraded to fallback: %v", err)
	s.bus.Publish(utilities.EventLLMFallback, "evaluate_answer")
	s.bus.Publish(utilities.EventAnswerEvaluated, q.ID)
	return fallbackFeedback()
}

func parseFeedback(raw string) (model.AnswerFeedback, error) {
	var fb model.AnswerFeedback
	if err := json.Unmarshal([]byte(raw), &fb); err != nil {
		return model.AnswerFeedback{}, fmt.Errorf("decode feedback: %w", err)
	}
	if fb.Score < 0 || fb.Score > 100 {
		return model.AnswerFeedback{}, fmt.Errorf("decode feedback: score %.1f out of range", fb.Score)
	}
	if fb.Strengths == nil || fb.AreasForImprovement == nil || fb.SuggestedResources == nil {
		return model.AnswerFeedback{}, errors.New("decode feedback: missing required fields")
	}
	return fb, nil
}

func fallbackFeedback() model.AnswerFeedback {
	return model.AnswerFeedback{
		Score:               75.0,
		Strengths:           []string{"Attempted to answer the question", "Showed relevant knowledge"},
		AreasForImprovement: []string{"Could provide more specific examples", "Consider elaborating on key concepts"},
		DetailedFeedback:    "Your answer addresses the question but could be strengthened with more specific examples and deeper technical details.",
		SuggestedResources:  []string{"Practice STAR method for behavioral questions", "Review technical fundamentals"},
		ModelAnswer:         "A comprehensive answer would include specific examples, demonstrate deep understanding, and relate to real-world applications.",
	}
}

const staticTips = "1. Practice regularly\n2. Use the STAR method\n3. Be specific with examples\n4. Stay calm and confident\n5. Ask clarifying questions"

// InterviewTips returns coaching tips for a question type, or the
// static list when the generation service fails.
func (s *questionService) InterviewTips(ctx context.Context, qt model.QuestionType) string {
	tips, err := s.llmClient.GenerateResponse(ctx, prompt.SystemCoach, prompt.Tips(qt))
	if err != nil || tips == "" {
		utilities.Warn("interview tips degraded to fallback: %v", err)
		s.bus.Publish(utilities.EventLLMFallback, "interview_tips")
		return staticTips
	}
	return tips
}
