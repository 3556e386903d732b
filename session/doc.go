// Package session provides storage for open mind-map sessions. Each session
// is an independent orchestrator (see package mindmap); the store only keys
// them by id so that callers (chat tabs, users) can resume the right one.
package session
