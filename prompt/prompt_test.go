package prompt

import (
	"testing"

	"github.com/hupe1980/mindmesh/core"
	"github.com/hupe1980/mindmesh/directive"
)

func TestPreamble_FreshCopies(t *testing.T) {
	first := Preamble()
	first[0].Content = "mutated"
	if Preamble()[0].Content == "mutated" {
		t.Fatal("Preamble must return an independent copy")
	}
}

func TestPreamble_Shape(t *testing.T) {
	msgs := Preamble()
	if len(msgs) < 3 {
		t.Fatalf("expected system + instruction + example turns, got %d", len(msgs))
	}
	if msgs[0].Role != core.RoleSystem {
		t.Errorf("first turn must be the system prompt, got role %q", msgs[0].Role)
	}
	// The worked example must actually demonstrate the directive grammar.
	var directives int
	for _, msg := range msgs {
		if msg.Role != core.RoleAssistant {
			continue
		}
		cs := directive.Parse(msg.Content)
		directives += len(cs.Add) + len(cs.RemoveEdges) + len(cs.RemoveNodes)
	}
	if directives == 0 {
		t.Error("example assistant turns contain no parseable directives")
	}
}

func TestTurnTemplates(t *testing.T) {
	if got := DeleteNode("Paris").Content; got != `delete("Paris")` {
		t.Errorf("unexpected delete turn: %q", got)
	}
	cs := directive.Parse(DeleteNode("Paris").Content)
	if len(cs.RemoveNodes) != 1 || cs.RemoveNodes[0] != "Paris" {
		t.Errorf("delete turn must parse as a node removal, got %+v", cs)
	}
	if ExpandFrom("Mars").Role != core.RoleUser {
		t.Error("expand turn must be user-authored")
	}
	if Restart("q").Role != core.RoleUser {
		t.Error("restart turn must be user-authored")
	}
}
