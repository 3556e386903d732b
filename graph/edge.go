package graph

// Edge is an undirected connection between two distinct node labels.
// Identity is the unordered pair: Edge{A: "x", B: "y"} and Edge{A: "y", B: "x"}
// denote the same edge. Labels are case-sensitive and compared by exact
// string value.
type Edge struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Key returns the canonical identity of the unordered pair. The directive
// grammar excludes the quote character from labels, making it a safe
// separator.
func (e Edge) Key() string {
	a, b := e.A, e.B
	if b < a {
		a, b = b, a
	}
	return a + `"` + b
}

// Nodes derives the node set from an edge list, in first-appearance order.
// A node exists if and only if at least one edge mentions it; the node view
// is always computed, never stored, so it cannot diverge from the edges.
func Nodes(edges []Edge) []string {
	seen := make(map[string]bool, 2*len(edges))
	nodes := make([]string, 0, 2*len(edges))
	for _, e := range edges {
		if !seen[e.A] {
			seen[e.A] = true
			nodes = append(nodes, e.A)
		}
		if !seen[e.B] {
			seen[e.B] = true
			nodes = append(nodes, e.B)
		}
	}
	return nodes
}
