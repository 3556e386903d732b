package mindmap

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/mindmesh/core"
	"github.com/hupe1980/mindmesh/directive"
	"github.com/hupe1980/mindmesh/graph"
	"github.com/hupe1980/mindmesh/logging"
	"github.com/hupe1980/mindmesh/model"
	"github.com/hupe1980/mindmesh/prompt"
)

// Options configures a Map.
type Options struct {
	// ID identifies the session; a fresh UUID is generated when empty.
	ID string
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Map is the stateful orchestrator owning one mind-map graph and its
// conversation transcript. One Map exists per end-user conversation;
// independent Maps share no state and may proceed in parallel.
//
// All commands are serialized through an internal mutex: while a generator
// call is outstanding no other command can read or mutate the session.
//
// Contract:
//   - The node set is always exactly the set of labels mentioned by edges
//   - Accessors return defensive copies
//   - GenerateInitial commits transcript and graph atomically (both or
//     neither); the append-based expansion flows retain the already appended
//     user turn when the generator fails, but never touch the graph
type Map struct {
	id        string
	generator model.Model
	logger    logging.Logger

	mu           sync.Mutex
	edges        []graph.Edge
	conversation []core.Message
	lastExpanded string
}

// New creates an empty mind map bound to the given text generator. The
// transcript starts with the fixed prompt preamble (system instructions plus
// a worked example) that trains the generator to emit edit directives.
func New(generator model.Model, optFns ...func(o *Options)) *Map {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.ID == "" {
		opts.ID = core.NewID()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Map{
		id:           opts.ID,
		generator:    generator,
		logger:       opts.Logger,
		conversation: prompt.Preamble(),
	}
}

// ID returns the session identifier.
func (m *Map) ID() string { return m.id }

// IsEmpty reports whether the mind map has no edges yet.
func (m *Map) IsEmpty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.edges) == 0
}

// Graph returns the current snapshot: the committed edge list and the node
// set derived from it. Both slices are defensive copies.
func (m *Map) Graph() ([]graph.Edge, []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	edges := make([]graph.Edge, len(m.edges))
	copy(edges, m.edges)
	return edges, graph.Nodes(edges)
}

// LastExpanded returns the label of the most recently expanded node, or ""
// when none. Presentation hint for rendering layers only; it never
// influences reconciliation.
func (m *Map) LastExpanded() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastExpanded
}

// Transcript returns a defensive copy of the conversation history.
func (m *Map) Transcript() []core.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := make([]core.Message, len(m.conversation))
	copy(msgs, m.conversation)
	return msgs
}

// GenerateInitial discards any existing graph and builds a new one for the
// given query. The conversation is rebuilt from the preamble plus a restart
// turn; transcript and graph commit together, so a generator failure leaves
// both at their prior state. A reply without a single parseable directive is
// treated the same way and absorbed silently. The map ends up Empty when the
// reply carries directives but they produce zero valid edges.
func (m *Map) GenerateInitial(ctx context.Context, query string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	conversation := append(prompt.Preamble(), prompt.Restart(query))
	output, err := m.generate(ctx, conversation)
	if err != nil {
		return err
	}
	cs := directive.Parse(output)
	if cs.Empty() {
		return nil
	}
	conversation = append(conversation, core.NewAssistantMessage(output))

	m.conversation = conversation
	m.edges = graph.Reconcile(m.edges, cs, true)
	m.lastExpanded = ""
	return nil
}

// Expand grows the current graph. Exactly one of node / freeText must be
// set: node requests new edges fanning out from that node and is recorded as
// the last-expanded highlight hint, freeText is forwarded verbatim as a
// modification request. Valid only on a populated map.
func (m *Map) Expand(ctx context.Context, node, freeText string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if (node == "") == (freeText == "") {
		return ErrInvalidRequest
	}
	if len(m.edges) == 0 {
		return ErrEmptyMap
	}

	if node != "" {
		m.conversation = append(m.conversation, prompt.ExpandFrom(node))
		m.lastExpanded = node
	} else {
		m.conversation = append(m.conversation, core.NewUserMessage(freeText))
	}

	output, err := m.generate(ctx, m.conversation)
	if err != nil {
		// The appended user turn stays; the graph is untouched.
		return err
	}

	m.conversation = append(m.conversation, core.NewAssistantMessage(output))
	m.edges = graph.Reconcile(m.edges, directive.Parse(output), false)
	return nil
}

// DeleteNode removes node and every incident edge without consulting the
// generator. A synthetic delete directive is appended to the transcript so
// subsequent generator calls see a history consistent with the visible
// graph. Valid only on a populated map; may transition it back to Empty.
func (m *Map) DeleteNode(node string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.edges) == 0 {
		return ErrEmptyMap
	}

	m.edges = graph.Reconcile(m.edges, graph.ChangeSet{RemoveNodes: []string{node}}, false)
	m.conversation = append(m.conversation, prompt.DeleteNode(node))
	if m.lastExpanded == node {
		m.lastExpanded = ""
	}
	return nil
}

// generate runs one blocking generator call with invocation-scoped logging.
// Caller must hold the lock.
func (m *Map) generate(ctx context.Context, conversation []core.Message) (string, error) {
	invocationID := core.NewID()
	info := m.generator.Info()
	start := time.Now()

	resp, err := m.generator.Generate(ctx, model.Request{Messages: conversation})
	if err != nil {
		m.logger.Error("Generator call failed",
			"session_id", m.id,
			"invocation_id", invocationID,
			"model", info.Name,
			"provider", info.Provider,
			"duration", time.Since(start),
			"error", err,
		)
		return "", fmt.Errorf("generate: %w", err)
	}

	m.logger.Debug("Generator call completed",
		"session_id", m.id,
		"invocation_id", invocationID,
		"model", info.Name,
		"provider", info.Provider,
		"duration", time.Since(start),
	)
	return resp.Content, nil
}
