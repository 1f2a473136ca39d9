package scheduler

import (
	"reflect"
	"testing"
)

func TestDistribute_ScenarioA(t *testing.T) {
	tasks := BuildPlan(
		[]string{"docker", "system design", "ci/cd"},
		[]string{"graphql", "aws"},
	)
	if len(tasks) != 5 {
		t.Fatalf("got %d tasks, want 5 (3 critical + 2 medium)", len(tasks))
	}

	buckets := Distribute(tasks, 180)
	if len(buckets) != 4 {
		t.Fatalf("got %d days, want 4", len(buckets))
	}

	wantSkills := [][]string{
		{"docker"},
		{"system design"},
		{"ci/cd", "graphql"}, // 120 + 60 fits exactly in 180
		{"aws"},
	}
	for i, want := range wantSkills {
		if len(buckets[i].Tasks) != len(want) {
			t.Fatalf("day %d: got %d tasks, want %d", i+1, len(buckets[i].Tasks), len(want))
		}
		for j, skill := range want {
			if buckets[i].Tasks[j].Skill != skill {
				t.Errorf("day %d task %d: got %q, want %q", i+1, j, buckets[i].Tasks[j].Skill, skill)
			}
		}
	}
}

func TestDistribute_ScenarioB_Empty(t *testing.T) {
	if buckets := Distribute(nil, 180); buckets != nil {
		t.Errorf("empty task list must produce no buckets, got %d", len(buckets))
	}
}

func TestDistribute_OversizedTaskOverflows(t *testing.T) {
	tasks := BuildPlan([]string{"docker"}, nil) // one 120-minute task
	buckets := Distribute(tasks, 60)

	if len(buckets) != 1 {
		t.Fatalf("got %d buckets, want 1", len(buckets))
	}
	if buckets[0].TotalMinutes != 120 {
		t.Errorf("oversized task must be placed whole, got %d minutes", buckets[0].TotalMinutes)
	}
}

func TestDistribute_BudgetRespectedForMultiTaskDays(t *testing.T) {
	tasks := BuildPlan(
		[]string{"a", "b", "c", "d", "e", "f"},
		[]string{"g", "h", "i", "j"},
	)
	buckets := Distribute(tasks, 180)

	seen := make(map[string]int)
	for _, b := range buckets {
		if len(b.Tasks) > 1 && b.TotalMinutes > 180 {
			t.Errorf("day %d has %d tasks totaling %d minutes, exceeds budget", b.Day, len(b.Tasks), b.TotalMinutes)
		}
		if len(b.Tasks) == 0 {
			t.Errorf("day %d is empty", b.Day)
		}
		for _, task := range b.Tasks {
			seen[task.ID]++
		}
	}
	// Every task in exactly one bucket.
	if len(seen) != len(tasks) {
		t.Errorf("got %d distinct scheduled tasks, want %d", len(seen), len(tasks))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("task %q appears %d times", id, n)
		}
	}
}

func TestDistribute_Idempotent(t *testing.T) {
	tasks := BuildPlan([]string{"a", "b", "c", "d"}, []string{"e", "f"})

	first := Distribute(tasks, 150)
	second := Distribute(tasks, 150)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated distribution with identical inputs must match")
	}
}

func TestDistribute_DayNumbersSequential(t *testing.T) {
	tasks := BuildPlan([]string{"a", "b", "c"}, []string{"d"})
	buckets := Distribute(tasks, 120)
	for i, b := range buckets {
		if b.Day != i+1 {
			t.Errorf("bucket %d has day %d, want %d", i, b.Day, i+1)
		}
	}
}

func TestDistribute_NonPositiveBudgetUsesDefault(t *testing.T) {
	tasks := BuildPlan([]string{"a"}, nil)
	buckets := Distribute(tasks, 0)
	if len(buckets) != 1 {
		t.Fatalf("got %d buckets, want 1", len(buckets))
	}
}

func TestTotalMinutes(t *testing.T) {
	tasks := BuildPlan([]string{"a"}, []string{"b"})
	if got := TotalMinutes(tasks); got != 180 {
		t.Errorf("got %d, want 180", got)
	}
}
