package scheduler

import "strings"

// BuildPlan generates the task list from the missing-skill lists. Order
// is fixed and consumers rely on it: up to 3 Critical tasks from the
// first missing-core skills, up to 3 High tasks from the remaining
// missing-core skills, then up to 4 Medium tasks from missing-optional.
// Names are deduplicated case-insensitively by first occurrence.
func BuildPlan(missingCore, missingOptional []string) []Task {
	var tasks []Task
	seen := make(map[string]bool)

	core := dedupe(missingCore, seen)
	for i, skill := range core {
		switch {
		case i < criticalCap:
			tasks = append(tasks, newTask(skill, TierCritical))
		case i < criticalCap+highCap:
			tasks = append(tasks, newTask(skill, TierHigh))
		default:
			// Beyond both core caps: not scheduled.
		}
	}

	optional := dedupe(missingOptional, seen)
	for i, skill := range optional {
		if i >= mediumCap {
			break
		}
		tasks = append(tasks, newTask(skill, TierMedium))
	}

	return tasks
}

func dedupe(skills []string, seen map[string]bool) []string {
	var out []string
	for _, s := range skills {
		name := strings.ToLower(strings.TrimSpace(s))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
