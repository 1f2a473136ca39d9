package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adasgupta/skillbridge/internal/llm"
	"github.com/adasgupta/skillbridge/internal/prereqmap"
)

const systemPrompt = `You are a senior engineer writing a mastery quiz for a specific technical skill.

Rules:
- Generate exactly the requested number of multiple-choice questions about the given skill.
- Each question has exactly 4 options with exactly one correct answer.
- Distractors should reflect real misconceptions, not random noise.
- Questions must test practical working knowledge, not trivia about release dates or logos.
- Use plain ASCII text. Keep code snippets short and inline.
- Cover different facets of the skill; do not ask the same thing twice.
- The explanation states in one or two sentences why the correct option is right.`

// Generator produces quizzes through the LLM provider.
type Generator struct {
	provider llm.Provider

	// MaxTokens caps the completion; the default fits five questions
	// comfortably.
	MaxTokens int
}

// NewGenerator creates a Generator on the given provider.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider, MaxTokens: 2048}
}

// quizOutput mirrors QuizSchema.
type quizOutput struct {
	Questions []struct {
		QuestionText string   `json:"question_text"`
		Choices      []string `json:"choices"`
		AnswerIndex  int      `json:"answer_index"`
		Explanation  string   `json:"explanation"`
	} `json:"questions"`
}

// GenerateQuiz implements Provider.
func (g *Generator) GenerateQuiz(ctx context.Context, skill string, count int) ([]Question, error) {
	if count <= 0 {
		count = DefaultQuestionCount
	}
	ctx = llm.WithPurpose(ctx, "quiz-generation")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(skill, count)},
		},
		Schema:    QuizSchema,
		MaxTokens: g.MaxTokens,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}

	questions := make([]Question, 0, len(raw.Questions))
	for i, q := range raw.Questions {
		out := Question{
			Skill:       skill,
			Text:        q.QuestionText,
			Choices:     q.Choices,
			Answer:      q.AnswerIndex,
			Explanation: q.Explanation,
		}
		if err := checkQuestion(out); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		questions = append(questions, out)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("quiz response contained no questions")
	}
	return questions, nil
}

func buildUserMessage(skill string, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Skill: %s\n", skill)
	if cat := prereqmap.CategoryOf(skill); cat != "" {
		fmt.Fprintf(&b, "Category: %s\n", cat)
	}
	fmt.Fprintf(&b, "Questions: %d\n", count)
	return b.String()
}

// checkQuestion enforces the structural rules the schema cannot express,
// like the answer index landing inside the choice list.
func checkQuestion(q Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("empty question text")
	}
	if len(q.Choices) != 4 {
		return fmt.Errorf("want 4 choices, got %d", len(q.Choices))
	}
	for i, c := range q.Choices {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("choice %d is empty", i)
		}
	}
	if q.Answer < 0 || q.Answer >= len(q.Choices) {
		return fmt.Errorf("answer index %d out of range", q.Answer)
	}
	return nil
}
