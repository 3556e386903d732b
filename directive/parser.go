package directive

import (
	"regexp"

	"github.com/hupe1980/mindmesh/graph"
)

// The two directive forms embedded in generator output. Labels may contain
// any character except parentheses and quotes; anything that does not fully
// match is ignored rather than reported.
var (
	edgePattern = regexp.MustCompile(`(add|delete)\("([^()"]+)",\s*"([^()"]+)"\)`)
	nodePattern = regexp.MustCompile(`delete\("([^()"]+)"\)`)
)

// Parse extracts and classifies every edit directive embedded in text.
// It is pure, never fails and absorbs malformed directives silently:
// generator output is inherently noisy, so parsing is best-effort.
//
// The scan runs in two phases, each left to right over the whole text: all
// two-argument add/delete directives first, then all one-argument deletes.
// Classification:
//
//	add("X", "Y")    -> add edge {X, Y}; dropped when X == Y (self-loop)
//	delete("X", "Y") -> remove the unordered pair {X, Y}
//	delete("X")      -> remove node X and every incident edge
func Parse(text string) graph.ChangeSet {
	var cs graph.ChangeSet
	for _, m := range edgePattern.FindAllStringSubmatch(text, -1) {
		op, a, b := m[1], m[2], m[3]
		if a == b {
			continue
		}
		if op == "add" {
			cs.Add = append(cs.Add, graph.Edge{A: a, B: b})
		} else {
			cs.RemoveEdges = append(cs.RemoveEdges, graph.Edge{A: a, B: b})
		}
	}
	for _, m := range nodePattern.FindAllStringSubmatch(text, -1) {
		cs.RemoveNodes = append(cs.RemoveNodes, m[1])
	}
	return cs
}
