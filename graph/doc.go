// Package graph holds the mind-map data model and the reconciliation
// algorithm. A graph is a list of undirected edges between node labels;
// nodes are a computed view over edges and are never stored independently.
//
// Reconcile is the consistency core of MindMesh: it merges a current edge
// list with a batch of add/remove operations into a new edge list that is
// free of duplicate pairs, self-loops and dangling references. It is a pure,
// order-stable function so that committed snapshots are reproducible.
package graph
