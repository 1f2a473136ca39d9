package scheduler

import "testing"

func TestBuildPlan_TierAssignment(t *testing.T) {
	core := []string{"a", "b", "c", "d", "e", "f", "g"}
	optional := []string{"p", "q", "r", "s", "t"}

	tasks := BuildPlan(core, optional)

	var critical, high, medium int
	for _, task := range tasks {
		switch task.Tier {
		case TierCritical:
			critical++
			if task.Level != 1 {
				t.Errorf("critical task %q has level %d, want 1", task.ID, task.Level)
			}
			if task.Minutes != 120 {
				t.Errorf("critical task %q has %d minutes, want 120", task.ID, task.Minutes)
			}
		case TierHigh:
			high++
			if task.Level != 2 {
				t.Errorf("high task %q has level %d, want 2", task.ID, task.Level)
			}
			if task.Minutes != 90 {
				t.Errorf("high task %q has %d minutes, want 90", task.ID, task.Minutes)
			}
		case TierMedium:
			medium++
			if task.Level != 3 {
				t.Errorf("medium task %q has level %d, want 3", task.ID, task.Level)
			}
			if task.Minutes != 60 {
				t.Errorf("medium task %q has %d minutes, want 60", task.ID, task.Minutes)
			}
		}
	}
	if critical != 3 || high != 3 || medium != 4 {
		t.Errorf("got %d/%d/%d tasks, want 3/3/4", critical, high, medium)
	}

	// Generation order: all Critical, then High, then Medium.
	for i := 1; i < len(tasks); i++ {
		if tasks[i].Tier < tasks[i-1].Tier {
			t.Errorf("task %d (%v) out of tier order after %v", i, tasks[i].Tier, tasks[i-1].Tier)
		}
	}
}

func TestBuildPlan_Containment(t *testing.T) {
	core := []string{"docker", "system design", "ci/cd"}
	tasks := BuildPlan(core, nil)

	for _, skill := range core {
		found := false
		for _, task := range tasks {
			if task.Skill == skill && task.Tier == TierCritical && task.Level == 1 {
				found = true
			}
		}
		if !found {
			t.Errorf("no level-1 critical task for missing-core skill %q", skill)
		}
	}
}

func TestBuildPlan_DeterministicIDs(t *testing.T) {
	first := BuildPlan([]string{"system design"}, nil)
	second := BuildPlan([]string{"System Design"}, nil)

	if first[0].ID != second[0].ID {
		t.Errorf("IDs differ for the same skill: %q vs %q", first[0].ID, second[0].ID)
	}
	if first[0].ID != "critical-system-design" {
		t.Errorf("got ID %q, want critical-system-design", first[0].ID)
	}
}

func TestBuildPlan_Dedupe(t *testing.T) {
	tasks := BuildPlan([]string{"docker", "Docker"}, []string{"docker", "aws"})
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2 (docker deduplicated)", len(tasks))
	}
	if tasks[1].Skill != "aws" || tasks[1].Tier != TierMedium {
		t.Errorf("got %+v, want medium aws task", tasks[1])
	}
}

func TestBuildPlan_Empty(t *testing.T) {
	if tasks := BuildPlan(nil, nil); len(tasks) != 0 {
		t.Errorf("got %d tasks for empty input, want 0", len(tasks))
	}
}

func TestBuildPlan_SubtasksOrdered(t *testing.T) {
	tasks := BuildPlan([]string{"docker"}, nil)
	if len(tasks[0].Subtasks) == 0 {
		t.Fatal("critical task must carry subtasks")
	}
	last := tasks[0].Subtasks[len(tasks[0].Subtasks)-1]
	if last != "Pass the docker mastery quiz" {
		t.Errorf("final subtask should be the quiz, got %q", last)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ci/cd", "ci-cd"},
		{"System Design", "system-design"},
		{"  c++  ", "c"},
		{"a b  c", "a-b-c"},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
