// Package quiz generates mastery quizzes for a skill and grades the
// learner's answers. The graded outcome feeds the verification bridge;
// nothing here touches the mastery set directly.
package quiz

import (
	"context"

	"github.com/adasgupta/skillbridge/internal/verify"
)

// DefaultQuestionCount is how many questions make up a mastery quiz.
const DefaultQuestionCount = 5

// Question is one multiple-choice question. Answer is the index into
// Choices of the correct option.
type Question struct {
	Skill       string
	Text        string
	Choices     []string
	Answer      int
	Explanation string
}

// Provider generates a quiz for a skill.
type Provider interface {
	// GenerateQuiz returns the questions for one mastery attempt.
	GenerateQuiz(ctx context.Context, skill string, count int) ([]Question, error)
}

// Grade scores recorded answers against the questions. Unanswered
// questions (answers shorter than questions, or a negative index) count
// as wrong. The outcome carries only the correctness counts the bridge
// needs.
func Grade(skill string, questions []Question, answers []int) verify.Outcome {
	o := verify.Outcome{Skill: skill, Total: len(questions)}
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if answers[i] == q.Answer {
			o.Correct++
		}
	}
	return o
}
