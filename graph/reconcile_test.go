package graph

import (
	"reflect"
	"testing"
)

func TestEdge_KeyUnordered(t *testing.T) {
	a := Edge{A: "Paris", B: "France"}
	b := Edge{A: "France", B: "Paris"}
	if a.Key() != b.Key() {
		t.Fatalf("expected symmetric keys, got %q vs %q", a.Key(), b.Key())
	}
	if a.Key() == (Edge{A: "Paris", B: "Spain"}).Key() {
		t.Error("distinct pairs must have distinct keys")
	}
}

func TestNodes_DerivedFromEdges(t *testing.T) {
	edges := []Edge{{A: "a", B: "b"}, {A: "b", B: "c"}}
	nodes := Nodes(edges)
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(nodes, want) {
		t.Fatalf("expected %v, got %v", want, nodes)
	}
	if got := Nodes(nil); len(got) != 0 {
		t.Errorf("empty edge list must derive empty node set, got %v", got)
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	edges := Reconcile(nil, ChangeSet{Add: []Edge{{A: "a", B: "b"}, {A: "b", B: "c"}}}, true)
	again := Reconcile(edges, ChangeSet{}, false)
	if !reflect.DeepEqual(edges, again) {
		t.Fatalf("reconciling with no operations changed the edge list: %v -> %v", edges, again)
	}
}

func TestReconcile_DedupKeepsFirstOccurrence(t *testing.T) {
	cs := ChangeSet{Add: []Edge{
		{A: "a", B: "b"},
		{A: "b", B: "a"}, // same unordered pair, reversed
		{A: "a", B: "b"},
		{A: "a", B: "c"},
	}}
	edges := Reconcile(nil, cs, true)
	want := []Edge{{A: "a", B: "b"}, {A: "a", B: "c"}}
	if !reflect.DeepEqual(edges, want) {
		t.Fatalf("expected %v, got %v", want, edges)
	}
}

func TestReconcile_RejectsSelfLoops(t *testing.T) {
	edges := Reconcile(nil, ChangeSet{Add: []Edge{{A: "x", B: "x"}, {A: "x", B: "y"}}}, true)
	for _, e := range edges {
		if e.A == e.B {
			t.Fatalf("self-loop survived reconciliation: %v", e)
		}
	}
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %v", edges)
	}
}

func TestReconcile_ReplaceVsExtend(t *testing.T) {
	current := []Edge{{A: "a", B: "b"}}
	cs := ChangeSet{Add: []Edge{{A: "c", B: "d"}, {A: "c", B: "d"}}}

	replaced := Reconcile(current, cs, true)
	if want := []Edge{{A: "c", B: "d"}}; !reflect.DeepEqual(replaced, want) {
		t.Fatalf("replace: expected %v, got %v", want, replaced)
	}

	extended := Reconcile(current, cs, false)
	if want := []Edge{{A: "a", B: "b"}, {A: "c", B: "d"}}; !reflect.DeepEqual(extended, want) {
		t.Fatalf("extend: expected %v, got %v", want, extended)
	}
}

func TestReconcile_RemoveEdgeWinsOverAdd(t *testing.T) {
	// An explicit delete removes the pair even when an add for the same pair
	// appears in the same batch, regardless of direction.
	cs := ChangeSet{
		Add:         []Edge{{A: "a", B: "b"}, {A: "b", B: "c"}},
		RemoveEdges: []Edge{{A: "b", B: "a"}},
	}
	edges := Reconcile(nil, cs, true)
	if want := []Edge{{A: "b", B: "c"}}; !reflect.DeepEqual(edges, want) {
		t.Fatalf("expected %v, got %v", want, edges)
	}
}

func TestReconcile_RemoveNodeDropsIncidentEdges(t *testing.T) {
	current := []Edge{{A: "Paris", B: "France"}, {A: "Lyon", B: "France"}}
	edges := Reconcile(current, ChangeSet{RemoveNodes: []string{"Paris"}}, false)
	if want := []Edge{{A: "Lyon", B: "France"}}; !reflect.DeepEqual(edges, want) {
		t.Fatalf("expected %v, got %v", want, edges)
	}
	for _, n := range Nodes(edges) {
		if n == "Paris" {
			t.Error("removed node still present in derived node set")
		}
	}
}

func TestReconcile_EndToEndScenario(t *testing.T) {
	current := []Edge{{A: "Berlin", B: "Germany"}}
	cs := ChangeSet{
		Add:         []Edge{{A: "Paris", B: "France"}, {A: "Paris", B: "France"}},
		RemoveEdges: []Edge{{A: "Berlin", B: "Germany"}},
	}
	edges := Reconcile(current, cs, false)
	if want := []Edge{{A: "Paris", B: "France"}}; !reflect.DeepEqual(edges, want) {
		t.Fatalf("expected %v, got %v", want, edges)
	}
}

func TestChangeSet_Empty(t *testing.T) {
	if !(ChangeSet{}).Empty() {
		t.Error("zero change set should be empty")
	}
	if (ChangeSet{RemoveNodes: []string{"n"}}).Empty() {
		t.Error("change set with node removal should not be empty")
	}
}
