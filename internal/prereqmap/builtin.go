package prereqmap

// Builtin returns the curriculum map shipped with the app. It mirrors the
// analysis service's default curriculum and serves as the demo dataset and
// the offline fallback.
func Builtin() Map {
	return Map{
		// DSA fundamentals
		"arrays":             {},
		"strings":            {"arrays"},
		"recursion":          {"arrays"},
		"linked list":        {"arrays", "recursion"},
		"stack":              {"arrays", "linked list"},
		"queue":              {"arrays", "linked list"},
		"hashing":            {"arrays"},
		"binary search":      {"arrays"},
		"sorting algorithms": {"arrays", "recursion"},

		// Trees
		"binary tree":        {"recursion", "stack", "queue"},
		"binary search tree": {"binary tree", "binary search"},
		"avl tree":           {"binary search tree"},
		"heap":               {"arrays", "binary tree"},
		"trie":               {"arrays", "hashing"},

		// Graphs
		"graph algorithms": {"binary tree", "hashing", "queue", "stack"},
		"bfs":              {"graph algorithms", "queue"},
		"dfs":              {"graph algorithms", "stack", "recursion"},
		"dijkstra":         {"graph algorithms", "heap"},
		"topological sort": {"graph algorithms", "dfs"},
		"union find":       {"arrays", "graph algorithms"},

		// Advanced DSA
		"dynamic programming": {"recursion", "arrays", "sorting algorithms"},
		"greedy algorithms":   {"sorting algorithms", "arrays"},
		"backtracking":        {"recursion", "arrays"},
		"segment tree":        {"binary tree", "arrays"},
		"fenwick tree":        {"arrays", "binary search"},

		// Systems and CS fundamentals
		"time and space complexity":   {},
		"object oriented programming": {},
		"databases":                   {"arrays", "hashing"},
		"sql":                         {"databases"},
		"rest api":                    {"object oriented programming"},
		"operating systems":           {},
		"networking basics":           {},
		"system design":               {"databases", "networking basics"},

		// Languages
		"python":     {},
		"java":       {},
		"javascript": {},
		"c++":        {},

		// Frameworks and tooling
		"react":       {"javascript"},
		"nodejs":      {"javascript"},
		"fastapi":     {"python"},
		"django":      {"python", "databases"},
		"spring boot": {"java", "databases"},
		"docker":      {"operating systems", "networking basics"},
		"kubernetes":  {"docker"},
		"ci/cd":       {"git", "docker"},
		"git":         {},
		"graphql":     {"rest api"},
		"aws":         {"networking basics", "operating systems"},

		// ML/AI
		"machine learning":     {"python", "statistics basics", "linear algebra basics"},
		"deep learning":        {"machine learning"},
		"nlp":                  {"deep learning"},
		"statistics basics":    {},
		"linear algebra basics": {},
	}
}

// categories groups curriculum skills for the learning-density view.
// Skills outside the curriculum fall into the "general" bucket.
var categories = map[string]string{
	"arrays": "dsa", "strings": "dsa", "recursion": "dsa", "linked list": "dsa",
	"stack": "dsa", "queue": "dsa", "hashing": "dsa", "binary search": "dsa",
	"sorting algorithms": "dsa", "binary tree": "dsa", "binary search tree": "dsa",
	"avl tree": "dsa", "heap": "dsa", "trie": "dsa", "graph algorithms": "dsa",
	"bfs": "dsa", "dfs": "dsa", "dijkstra": "dsa", "topological sort": "dsa",
	"union find": "dsa", "dynamic programming": "dsa", "greedy algorithms": "dsa",
	"backtracking": "dsa", "segment tree": "dsa", "fenwick tree": "dsa",

	"time and space complexity": "fundamentals", "object oriented programming": "fundamentals",
	"databases": "fundamentals", "sql": "fundamentals", "rest api": "fundamentals",
	"operating systems": "fundamentals", "networking basics": "fundamentals",
	"system design": "fundamentals",

	"python": "language", "java": "language", "javascript": "language", "c++": "language",

	"react": "tooling", "nodejs": "tooling", "fastapi": "tooling", "django": "tooling",
	"spring boot": "tooling", "docker": "tooling", "kubernetes": "tooling",
	"git": "tooling", "ci/cd": "tooling", "graphql": "tooling", "aws": "tooling",

	"machine learning": "ml", "deep learning": "ml", "nlp": "ml",
	"statistics basics": "ml", "linear algebra basics": "ml",
}

// CategoryOf returns the grouping tag for a skill name.
func CategoryOf(skill string) string {
	if c, ok := categories[normalize(skill)]; ok {
		return c
	}
	return "general"
}
