// Package prereqmap provides the skill prerequisite map: which skills a
// learner should master before starting a given skill. The map is fetched
// from the analysis service when available and falls back to the built-in
// curriculum (or an empty map) when the fetch fails.
package prereqmap

import (
	"sort"
	"strings"
)

// Map relates a lower-cased skill name to its ordered list of lower-cased
// prerequisite skill names. It is a plain edge list for drawing and
// unlock checks; it is never traversed recursively, so a cyclic map is
// harmless.
type Map map[string][]string

// Prerequisites returns the prerequisite list for a skill, or nil when the
// map has no entry. Lookup is case-insensitive.
func (m Map) Prerequisites(skill string) []string {
	if m == nil {
		return nil
	}
	return m[normalize(skill)]
}

// Normalize lower-cases and trims every key and value, dropping empty
// names. Malformed entries degrade to "no prerequisites known" rather
// than failing the whole map.
func Normalize(raw map[string][]string) Map {
	out := make(Map, len(raw))
	for skill, prereqs := range raw {
		key := normalize(skill)
		if key == "" {
			continue
		}
		clean := make([]string, 0, len(prereqs))
		for _, p := range prereqs {
			p = normalize(p)
			if p != "" {
				clean = append(clean, p)
			}
		}
		out[key] = clean
	}
	return out
}

// Unlocked returns every skill in the map whose prerequisites are all
// mastered and which is not itself mastered, sorted for stable output.
func Unlocked(m Map, mastered func(string) bool) []string {
	var out []string
	for skill, prereqs := range m {
		if mastered(skill) {
			continue
		}
		ok := true
		for _, p := range prereqs {
			if !mastered(p) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, skill)
		}
	}
	sort.Strings(out)
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
