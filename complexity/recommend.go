package complexity

import "strings"

// Recommendation ranks one structure for a described use case, paired
// with the reason it fits.
type Recommendation struct {
	Structure string
	Reason    string
}

// recommendRules maps trigger keywords onto a structure suggestion, in
// presentation order. Matching is a plain substring scan over the
// lowercased description.
var recommendRules = []struct {
	structure string
	keywords  []string
	reason    string
}{
	{
		structure: StructStack,
		keywords:  []string{"undo", "redo", "backtrack", "reverse", "nested", "recursive", "dfs", "depth"},
		reason: "LIFO access matches undo/redo and backtracking needs. " +
			"O(1) push and pop are ideal for state management.",
	},
	{
		structure: StructQueue,
		keywords:  []string{"schedule", "buffer", "bfs", "breadth", "order", "first come", "fifo", "request"},
		reason: "FIFO access matches scheduling and buffering needs. " +
			"O(1) enqueue and dequeue process items in arrival order.",
	},
	{
		structure: StructLinkedList,
		keywords:  []string{"insert", "delete", "dynamic", "unknown size", "frequent add", "frequent remove", "middle"},
		reason: "O(1) head insertion and node-level deletion suit frequent " +
			"modifications, with no element shifting as in arrays.",
	},
}

// generalGuidance is returned when no keyword matches the description.
var generalGuidance = []Recommendation{
	{StructStack, "Use for LIFO access patterns: the most recent element first."},
	{StructQueue, "Use for FIFO access patterns: first come, first served."},
	{StructLinkedList, "Use for dynamic sizes with frequent insertions and deletions."},
}

// Recommend suggests structures for a free-text use case description,
// ordered by the canonical structure order, one entry per structure
// whose keywords appear in the description. When nothing matches it
// falls back to general guidance covering all three structures, so the
// result is never empty.
func Recommend(useCase string) []Recommendation {
	useCase = strings.ToLower(useCase)

	var out []Recommendation
	for _, rule := range recommendRules {
		for _, kw := range rule.keywords {
			if strings.Contains(useCase, kw) {
				out = append(out, Recommendation{Structure: rule.structure, Reason: rule.reason})
				break
			}
		}
	}
	if len(out) == 0 {
		out = make([]Recommendation, len(generalGuidance))
		copy(out, generalGuidance)
	}

	return out
}
