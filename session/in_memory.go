package session

import (
	"fmt"
	"sync"

	"github.com/hupe1980/mindmesh/mindmap"
)

// ErrNotFound is returned when no session exists for the given id.
var ErrNotFound = fmt.Errorf("session not found")

// Store is a registry of independent mind-map sessions. Implementations must
// be safe for concurrent access; the sessions themselves serialize their own
// commands, so the store hands out live handles rather than copies.
type Store interface {
	Create(m *mindmap.Map) error
	Get(id string) (*mindmap.Map, error)
	Delete(id string) error
}

// InMemoryStore is a volatile Store backed by a process local map. It is
// safe for concurrent access and best suited for tests or ephemeral demo
// servers.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*mindmap.Map
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*mindmap.Map)}
}

// Create registers a session under its id, overwriting any previous entry.
func (s *InMemoryStore) Create(m *mindmap.Map) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[m.ID()] = m
	return nil
}

// Get returns the live session handle for id.
func (s *InMemoryStore) Get(id string) (*mindmap.Map, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return m, nil
}

// Delete removes the session for id.
func (s *InMemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}
