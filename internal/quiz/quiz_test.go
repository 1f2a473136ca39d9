package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/adasgupta/skillbridge/internal/llm"
)

func sampleQuestions() []Question {
	return []Question{
		{Skill: "docker", Text: "q1", Choices: []string{"a", "b", "c", "d"}, Answer: 1},
		{Skill: "docker", Text: "q2", Choices: []string{"a", "b", "c", "d"}, Answer: 0},
		{Skill: "docker", Text: "q3", Choices: []string{"a", "b", "c", "d"}, Answer: 3},
	}
}

func TestGrade(t *testing.T) {
	qs := sampleQuestions()

	tests := []struct {
		name        string
		answers     []int
		wantCorrect int
	}{
		{"all correct", []int{1, 0, 3}, 3},
		{"one wrong", []int{1, 2, 3}, 2},
		{"all wrong", []int{0, 1, 0}, 0},
		{"short answers count as wrong", []int{1}, 1},
		{"no answers", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Grade("docker", qs, tt.answers)
			if o.Correct != tt.wantCorrect {
				t.Errorf("got %d correct, want %d", o.Correct, tt.wantCorrect)
			}
			if o.Total != 3 {
				t.Errorf("got total %d, want 3", o.Total)
			}
			if o.Skill != "docker" {
				t.Errorf("got skill %q", o.Skill)
			}
		})
	}
}

func TestGrade_EmptyQuizNeverPerfect(t *testing.T) {
	o := Grade("docker", nil, nil)
	if o.Perfect() {
		t.Error("an empty quiz must not count as a perfect score")
	}
}

func quizJSON(t *testing.T, n int) json.RawMessage {
	t.Helper()
	type q struct {
		QuestionText string   `json:"question_text"`
		Choices      []string `json:"choices"`
		AnswerIndex  int      `json:"answer_index"`
		Explanation  string   `json:"explanation"`
	}
	var out struct {
		Questions []q `json:"questions"`
	}
	for i := 0; i < n; i++ {
		out.Questions = append(out.Questions, q{
			QuestionText: "What does docker build do?",
			Choices:      []string{"Builds an image", "Starts a container", "Pushes a registry", "Mounts a volume"},
			AnswerIndex:  0,
			Explanation:  "docker build produces an image from a Dockerfile.",
		})
	}
	raw, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return raw
}

func TestGenerateQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(t, 5)})
	g := NewGenerator(mock)

	qs, err := g.GenerateQuiz(context.Background(), "docker", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 5 {
		t.Fatalf("got %d questions, want 5", len(qs))
	}
	if qs[0].Skill != "docker" {
		t.Errorf("question skill = %q, want docker", qs[0].Skill)
	}
	if qs[0].Answer != 0 {
		t.Errorf("answer index = %d, want 0", qs[0].Answer)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("got %d calls, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != QuizSchema {
		t.Error("request must carry the quiz schema")
	}
}

func TestGenerateQuiz_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := NewGenerator(mock)

	if _, err := g.GenerateQuiz(context.Background(), "docker", 5); err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateQuiz_RejectsBadAnswerIndex(t *testing.T) {
	raw := json.RawMessage(`{"questions":[{"question_text":"q","choices":["a","b","c","d"],"answer_index":7,"explanation":"e"}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	g := NewGenerator(mock)

	if _, err := g.GenerateQuiz(context.Background(), "docker", 1); err == nil {
		t.Fatal("expected error for out-of-range answer index")
	}
}

func TestGenerateQuiz_RejectsWrongChoiceCount(t *testing.T) {
	raw := json.RawMessage(`{"questions":[{"question_text":"q","choices":["a","b"],"answer_index":0,"explanation":"e"}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	g := NewGenerator(mock)

	if _, err := g.GenerateQuiz(context.Background(), "docker", 1); err == nil {
		t.Fatal("expected error for wrong choice count")
	}
}

func TestGenerateQuiz_RejectsEmptyQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions":[]}`)})
	g := NewGenerator(mock)

	if _, err := g.GenerateQuiz(context.Background(), "docker", 5); err == nil {
		t.Fatal("expected error for empty quiz")
	}
}
