package plan

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adasgupta/skillbridge/internal/analysis"
	"github.com/adasgupta/skillbridge/internal/gate"
	"github.com/adasgupta/skillbridge/internal/mastery"
	"github.com/adasgupta/skillbridge/internal/nav"
	"github.com/adasgupta/skillbridge/internal/screens/quizscreen"
	"github.com/adasgupta/skillbridge/internal/verify"
)

func testResult() *analysis.Result {
	return &analysis.Result{
		Role:            "Backend Engineer",
		Detected:        []string{"python", "git"},
		MissingCore:     []string{"docker", "kubernetes", "sql", "redis"},
		MissingOptional: []string{"terraform", "grafana"},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestViewShowsDayBuckets(t *testing.T) {
	s := New(testResult(), mastery.NewService(nil), nil)

	view := s.View(100, 40)
	if !strings.Contains(view, "DAY 1") {
		t.Errorf("view should contain a day header, got:\n%s", view)
	}
	if !strings.Contains(view, "Learn docker") {
		t.Errorf("view should list the first critical task, got:\n%s", view)
	}
}

func TestEmptyPlan(t *testing.T) {
	result := &analysis.Result{Role: "Backend Engineer", Detected: []string{"python"}}
	s := New(result, mastery.NewService(nil), nil)

	view := s.View(80, 24)
	if !strings.Contains(view, "Nothing to plan") {
		t.Errorf("empty plan should say so, got:\n%s", view)
	}
}

func TestSpaceTogglesCompletion(t *testing.T) {
	svc := mastery.NewService(nil)
	s := New(testResult(), svc, nil)

	task := s.tasks[0]
	var scr nav.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeySpace))
	if !svc.IsTaskCompleted(task.ID) {
		t.Fatal("space should mark the selected task completed")
	}

	scr.Update(specialKey(tea.KeySpace))
	if svc.IsTaskCompleted(task.ID) {
		t.Fatal("space again should clear completion")
	}
}

func TestCommitmentAdjustRepacksBuckets(t *testing.T) {
	svc := mastery.NewService(nil)
	s := New(testResult(), svc, nil)
	before := len(s.buckets)

	var scr nav.Screen = s
	scr, _ = scr.Update(keyPress('+'))
	scr, _ = scr.Update(keyPress('+'))

	if svc.DailyCommitmentHours() != 4 {
		t.Fatalf("commitment = %dh, want 4h", svc.DailyCommitmentHours())
	}
	if len(s.buckets) >= before {
		t.Errorf("doubling the budget should reduce day count: %d -> %d", before, len(s.buckets))
	}
}

func TestQuizResultClearsPendingAndRefreshes(t *testing.T) {
	svc := mastery.NewService(nil)
	s := New(testResult(), svc, nil)
	s.pending = "docker"

	verify.NewBridge(svc).MarkMastered("docker")
	var scr nav.Screen = s
	scr, _ = scr.Update(quizscreen.ResultMsg{Skill: "docker", Granted: true})

	if s.pending != "" {
		t.Error("a quiz result should clear the pending affordance")
	}
	view := scr.View(100, 40)
	if !strings.Contains(view, "✔") {
		t.Errorf("mastered task should render the mastered marker, got:\n%s", view)
	}
}

func TestTaskRowTruncationIsRuneSafe(t *testing.T) {
	result := &analysis.Result{
		Role:        "Backend Engineer",
		MissingCore: []string{"verteilte systeme für größere datenmengen überall"},
	}
	svc := mastery.NewService(nil)
	s := New(result, svc, nil)

	for _, width := range []int{20, 30, 40} {
		row := s.renderTaskRow(s.tasks[0], gate.StateOpen, true, width)
		if !utf8.ValidString(row) {
			t.Errorf("width %d: truncation split a rune: %q", width, row)
		}
		if w := lipgloss.Width(row); w > width {
			t.Errorf("width %d: row renders %d cells", width, w)
		}
	}
}

func TestMasteredSkillNotQuizzedAgain(t *testing.T) {
	svc := mastery.NewService(nil)
	s := New(testResult(), svc, nil)
	verify.NewBridge(svc).MarkMastered(s.tasks[0].Skill)

	if cmd := s.startQuiz(); cmd != nil {
		t.Error("starting a quiz for a mastered skill should be a no-op")
	}
}
