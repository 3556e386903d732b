// Package core defines the shared conversation primitives used across
// MindMesh: role-tagged messages forming a transcript, and identifier
// generation for sessions and invocations. Higher layers (mindmap, model
// providers) depend only on these minimal shapes so the transcript stays
// transport independent.
package core
