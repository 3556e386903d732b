package graph

// ChangeSet is a classified batch of edit operations, typically extracted
// from a single generator reply by the directive package.
type ChangeSet struct {
	Add         []Edge   // edges to ensure present, in extraction order
	RemoveEdges []Edge   // unordered pairs to ensure absent
	RemoveNodes []string // labels whose incident edges are all removed
}

// Empty reports whether the change set carries no operations at all.
func (cs ChangeSet) Empty() bool {
	return len(cs.Add) == 0 && len(cs.RemoveEdges) == 0 && len(cs.RemoveNodes) == 0
}

// Reconcile merges the current edge list with a change set into a new
// consistent edge list. Pure and order-stable: identical inputs always
// produce the identical output slice, with each surviving edge in the order
// it was first admitted.
//
// Candidates are cs.Add alone when replace is true (the prior graph is
// discarded) or current followed by cs.Add otherwise, so dedup keeps the
// earliest occurrence. The result contains no duplicate unordered pairs, no
// self-loops, no edge matching a pair in RemoveEdges and no edge touching a
// label in RemoveNodes.
func Reconcile(current []Edge, cs ChangeSet, replace bool) []Edge {
	removePairs := make(map[string]struct{}, len(cs.RemoveEdges))
	for _, e := range cs.RemoveEdges {
		removePairs[e.Key()] = struct{}{}
	}
	removeNodes := make(map[string]struct{}, len(cs.RemoveNodes))
	for _, n := range cs.RemoveNodes {
		removeNodes[n] = struct{}{}
	}

	var candidates []Edge
	if replace {
		candidates = cs.Add
	} else {
		candidates = make([]Edge, 0, len(current)+len(cs.Add))
		candidates = append(candidates, current...)
		candidates = append(candidates, cs.Add...)
	}

	admitted := make(map[string]struct{}, len(candidates))
	result := make([]Edge, 0, len(candidates))
	for _, e := range candidates {
		if e.A == e.B {
			continue
		}
		key := e.Key()
		if _, dup := admitted[key]; dup {
			continue
		}
		if _, removed := removePairs[key]; removed {
			continue
		}
		if _, removed := removeNodes[e.A]; removed {
			continue
		}
		if _, removed := removeNodes[e.B]; removed {
			continue
		}
		admitted[key] = struct{}{}
		result = append(result, e)
	}
	return result
}
