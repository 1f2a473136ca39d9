// Package analysis holds the upstream skill-gap analysis result that drives
// the graph, the study plan, and the quiz flow. SkillBridge does not parse
// resumes itself; the analysis service emits this structure as JSON and we
// import it as-is.
package analysis

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Result is the output of the upstream resume analysis for one role.
// All skill names are case-insensitive identifiers; Normalize lower-cases
// and trims them so every downstream component can compare directly.
type Result struct {
	Role            string   `json:"role"`
	Detected        []string `json:"detected_skills"`
	MissingCore     []string `json:"missing_core_skills"`
	MissingOptional []string `json:"missing_optional_skills"`
}

// Load reads an analysis result from a JSON file. The returned result is
// already normalized.
func Load(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read analysis file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and normalizes an analysis result from raw JSON.
func Parse(data []byte) (*Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode analysis result: %w", err)
	}
	r.Normalize()
	return &r, nil
}

// Normalize lower-cases and trims every skill name and drops empty entries.
// Duplicate handling is left to consumers: the graph and the scheduler
// deduplicate by first occurrence, preserving input order.
func (r *Result) Normalize() {
	r.Role = strings.TrimSpace(r.Role)
	r.Detected = normalizeList(r.Detected)
	r.MissingCore = normalizeList(r.MissingCore)
	r.MissingOptional = normalizeList(r.MissingOptional)
}

// Empty reports whether the result carries no skills at all.
func (r *Result) Empty() bool {
	return len(r.Detected) == 0 && len(r.MissingCore) == 0 && len(r.MissingOptional) == 0
}

func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Demo returns a sample analysis result used when no upstream result has
// been imported yet. The app must render a meaningful graph and plan on
// first launch rather than an error.
func Demo() *Result {
	return &Result{
		Role:            "backend developer",
		Detected:        []string{"python", "git", "sql", "rest api"},
		MissingCore:     []string{"docker", "system design", "ci/cd"},
		MissingOptional: []string{"graphql", "aws"},
	}
}
