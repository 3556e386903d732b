// Package mindmap implements the conversational mind-map session: a state
// machine that owns one graph plus its conversation transcript and drives
// the text generator through the parse/reconcile/commit cycle.
//
// Lifecycle: a Map starts Empty with a fixed preamble transcript. Each
// interaction either replaces the whole graph (GenerateInitial), extends it
// (Expand from a node or with free text) or deletes one node locally
// (DeleteNode). The graph is only destroyed by an explicit restart.
//
// Failure semantics: grammar-level noise in generator output is absorbed by
// the directive package and never surfaced. Generator call failures are
// returned to the caller with the graph at its last committed state. API
// misuse (expansion of an empty map, ambiguous expansion arguments) is
// rejected with sentinel errors before any state changes.
package mindmap
