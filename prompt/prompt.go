// Package prompt holds the fixed, versioned conversation preamble that
// trains a text generator to emit the directive grammar understood by the
// directive package, plus the user-turn templates for the individual
// mind-map operations.
package prompt

import (
	"fmt"

	"github.com/hupe1980/mindmesh/core"
)

// Version identifies the preamble content. Bump when the prompt wording or
// the worked example changes in a way that alters generator behavior.
const Version = "v1"

const systemPrompt = `You are a mind map assistant. You maintain a mind map for the user: an
undirected graph of concepts (nodes) connected by edges. You modify the mind
map exclusively by emitting edit commands in your replies, one per line:

add("node1", "node2")  - add an edge between node1 and node2
delete("node1", "node2") - delete the edge between node1 and node2
delete("node1") - delete node1 and every edge connected to it

Nodes are created implicitly by adding edges; there is no separate command to
create a node. Keep node names short (one to three words). Never connect a
node to itself. Only output edit commands, no explanations.`

const instructionPrompt = `Whenever I ask you to build or change the mind map, reply only with edit
commands as defined above. When I ask you to expand from a specific node,
add new edges that start at that node. When I ask you to start from scratch,
ignore every node mentioned so far and build a completely new mind map.`

// The worked example shows the generator one full round trip: an initial
// build, an expansion and a correction using both delete forms.
var exampleConversation = []core.Message{
	core.NewUserMessage(`Build a mind map about the solar system.`),
	core.NewAssistantMessage(`add("Solar System", "Sun")
add("Solar System", "Planets")
add("Planets", "Earth")
add("Planets", "Mars")
add("Earth", "Moon")`),
	core.NewUserMessage(`add new edges to new nodes, starting from the node "Mars"`),
	core.NewAssistantMessage(`add("Mars", "Phobos")
add("Mars", "Deimos")
add("Mars", "Olympus Mons")`),
	core.NewUserMessage(`Remove the moons of Mars and the direct link between the Solar System and the Sun.`),
	core.NewAssistantMessage(`delete("Phobos")
delete("Deimos")
delete("Solar System", "Sun")`),
}

// Preamble returns a fresh copy of the seed conversation: system
// instructions, the directive briefing and the worked example. Callers may
// append to the result without affecting later calls.
func Preamble() []core.Message {
	msgs := make([]core.Message, 0, 2+len(exampleConversation))
	msgs = append(msgs,
		core.NewSystemMessage(systemPrompt),
		core.NewUserMessage(instructionPrompt),
	)
	return append(msgs, exampleConversation...)
}

// Restart returns the user turn asking the generator to discard all previous
// nodes and build a new mind map for query.
func Restart(query string) core.Message {
	return core.NewUserMessage(fmt.Sprintf(
		"Great, now ignore all previous nodes and restart from scratch. I now want you to do the following:\n\n%s",
		query,
	))
}

// ExpandFrom returns the user turn requesting new edges fanning out from node.
func ExpandFrom(node string) core.Message {
	return core.NewUserMessage(fmt.Sprintf(`add new edges to new nodes, starting from the node %q`, node))
}

// DeleteNode returns the synthetic user turn recording a local node deletion,
// keeping later generator calls consistent with the visible graph.
func DeleteNode(node string) core.Message {
	return core.NewUserMessage(fmt.Sprintf(`delete(%q)`, node))
}
