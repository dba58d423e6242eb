package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"prepwise-backend/internal/model"
	"prepwise-backend/internal/repository"
	"prepwise-backend/utilities"
)

// InterviewService drives the mock-interview lifecycle. Transitions are
// deliberately permissive, matching the product behavior: begin may be
// repeated (resetting the timestamp), answers are accepted in any
// state, and complete recomputes from whatever answers exist.
type InterviewService interface {
	Start(ctx context.Context, req model.MockInterviewRequest) *model.MockInterview
	Begin(ctx context.Context, interviewID string) error
	SubmitAnswer(ctx context.Context, interviewID string, sub model.AnswerSubmission) (*model.AnswerFeedback, error)
	Complete(ctx context.Context, interviewID string) (*model.InterviewSummary, error)
	Get(interviewID string) (*model.InterviewSession, error)
}

// InterviewCompletedEvent is the payload published on completion,
// consumed by the metrics counters and the optional archiver.
type InterviewCompletedEvent struct {
	Session *model.InterviewSession
	Summary *model.InterviewSummary
}

type interviewService struct {
	interviewRepo repository.InterviewRepository
	questionRepo  repository.QuestionRepository
	questions     QuestionService
	bus           *utilities.EventBus
}

func NewInterviewService(interviewRepo repository.InterviewRepository, questionRepo repository.QuestionRepository, questions QuestionService, bus *utilities.EventBus) InterviewService {
	return &interviewService{
		interviewRepo: interviewRepo,
		questionRepo:  questionRepo,
		questions:     questions,
		bus:           bus,
	}
}

// Start creates a session and generates its full question list up
// front: max(2, 10/len(types)) questions per requested type.
func (s *interviewService) Start(ctx context.Context, req model.MockInterviewRequest) *model.MockInterview {
	perType := 10 / len(req.QuestionTypes)
	if perType < 2 {
		perType = 2
	}

	var allQuestions []model.Question
	for _, qt := range req.QuestionTypes {
		qs := s.questions.GenerateQuestions(ctx, req.Role, qt, req.Difficulty, perType, nil)
		allQuestions = append(allQuestions, qs...)
	}

	session := &model.InterviewSession{
		Interview: model.MockInterview{
			InterviewID: uuid.New().String(),
			Role:        req.Role,
			Status:      model.StatusNotStarted,
			Questions:   allQuestions,
		},
		DurationMinutes: req.DurationMinutes,
		Difficulty:      req.Difficulty,
		Answers:         make(map[string]model.RecordedAnswer),
	}

	if err := s.interviewRepo.Save(session); err != nil {
		utilities.Error("register interview session: %v", err)
	}
	s.bus.Publish(utilities.EventInterviewStarted, session.Interview.InterviewID)

	snapshot := session.Snapshot()
	return &snapshot
}

// Begin marks the session in progress and stamps the start time.
func (s *interviewService) Begin(_ context.Context, interviewID string) error {
	session, err := s.interviewRepo.Get(interviewID)
	if err != nil {
		return err
	}

	session.Lock()
	defer session.Unlock()
	now := time.Now()
	session.Interview.Status = model.StatusInProgress
	session.Interview.StartTime = &now
	return nil
}

// SubmitAnswer evaluates an answer and records it in the session,
// overwriting any prior answer for the same question. The question is
// resolved through the global question store, like the original.
func (s *interviewService) SubmitAnswer(ctx context.Context, interviewID string, sub model.AnswerSubmission) (*model.AnswerFeedback, error) {
	session, err := s.interviewRepo.Get(interviewID)
	if err != nil {
		return nil, err
	}

	question, err := s.questionRepo.Get(sub.QuestionID)
	if err != nil {
		return nil, err
	}

	feedback := s.questions.EvaluateAnswer(ctx, question, sub.UserAnswer)

	session.Lock()
	session.Answers[sub.QuestionID] = model.RecordedAnswer{
		Answer:    sub.UserAnswer,
		Feedback:  feedback,
		TimeTaken: sub.TimeTakenSeconds,
	}
	session.Unlock()

	return &feedback, nil
}

// Complete flips the session to completed and folds the recorded
// feedback scores into a summary.
func (s *interviewService) Complete(_ context.Context, interviewID string) (*model.InterviewSummary, error) {
	session, err := s.interviewRepo.Get(interviewID)
	if err != nil {
		return nil, err
	}

	session.Lock()
	now := time.Now()
	session.Interview.Status = model.StatusCompleted
	session.Interview.EndTime = &now

	var sum, highest, lowest float64
	count := 0
	for _, ans := range session.Answers {
		score := ans.Feedback.Score
		if count == 0 {
			highest, lowest = score, score
		} else {
			if score > highest {
				highest = score
			}
			if score < lowest {
				lowest = score
			}
		}
		sum += score
		count++
	}

	avg := 0.0
	if count > 0 {
		avg = sum / float64(count)
	}

	summary := &model.InterviewSummary{
		InterviewID:       interviewID,
		Status:            model.StatusCompleted,
		OverallScore:      avg,
		QuestionsAnswered: count,
		TotalQuestions:    len(session.Interview.Questions),
		PerformanceSummary: model.PerformanceSummary{
			AverageScore: avg,
			HighestScore: highest,
			LowestScore:  lowest,
		},
	}
	session.Unlock()

	s.bus.Publish(utilities.EventInterviewCompleted, InterviewCompletedEvent{
		Session: session,
		Summary: summary,
	})

	return summary, nil
}

func (s *interviewService) Get(interviewID string) (*model.InterviewSession, error) {
	return s.interviewRepo.Get(interviewID)
}
