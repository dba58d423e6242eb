// Package prompt renders request parameters into the instruction
// strings sent to the external generation service.
package prompt

import (
	"fmt"
	"strings"

	"prepwise-backend/internal/model"
)

// System prompts for the three call sites.
const (
	SystemInterviewer = "You are an expert technical interviewer and career coach."
	SystemEvaluator   = "You are an expert interview evaluator providing constructive feedback."
	SystemCoach       = "You are a career coach specializing in interview preparation."
)

// Questions builds the instruction for generating interview questions.
// The response is requested as a JSON array so it can be decoded
// directly into question records.
func Questions(role string, qt model.QuestionType, difficulty model.Difficulty, count int, topics []string) string {
	topicsStr := ""
	if len(topics) > 0 {
		topicsStr = fmt.Sprintf("focusing on %s", strings.Join(topics, ", "))
	}

	return fmt.Sprintf(`Generate %d %s %s interview questions for a %s position %s.

For each question, provide:
1. The question itself
2. 3-5 key points that should be in a good answer
3. 2-3 relevant topics/skills tested
4. 2 follow-up questions

Return the response as a JSON array with this structure:
[
  {
    "question": "...",
    "expected_answer_points": ["point1", "point2", ...],
    "topics": ["topic1", "topic2"],
    "follow_up_questions": ["followup1", "followup2"]
  }
]`, count, difficulty, qt, role, topicsStr)
}

// Evaluation builds the instruction for scoring a submitted answer.
func Evaluation(q *model.Question, userAnswer string) string {
	return fmt.Sprintf(`Evaluate this interview answer:

Question: %s
Expected key points: %s
User's Answer: %s

Provide a detailed evaluation with:
1. Score (0-100)
2. 2-3 specific strengths
3. 2-3 areas for improvement
4. Detailed feedback paragraph
5. 2-3 suggested learning resources
6. A model answer

Return as JSON:
{
  "score": 85,
  "strengths": ["...", "..."],
  "areas_for_improvement": ["...", "..."],
  "detailed_feedback": "...",
  "suggested_resources": ["...", "..."],
  "model_answer": "..."
}`, q.Question, strings.Join(q.ExpectedAnswerPoints, ", "), userAnswer)
}

// Tips builds the instruction for question-type-specific interview tips.
func Tips(qt model.QuestionType) string {
	return fmt.Sprintf("Provide 5 expert tips for answering %s interview questions effectively. Make them actionable and specific.", qt)
}
