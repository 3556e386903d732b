// Package mindmesh provides a high-level façade over the mind-map session
// engine (graph reconciliation, directive parsing & text generation)
// enabling rapid construction of conversational mind-map applications.
// Most applications interact with this package by:
//  1. Creating a MindMesh via New() with a text generator (OpenAI, Anthropic or mock)
//  2. Opening one session per end-user conversation (OpenSession)
//  3. Driving each session through GenerateInitial / Expand / DeleteNode
//
// The façade delegates state keeping to mindmap.Map while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing; production deployments typically supply a structured logger.
package mindmesh

import (
	"github.com/hupe1980/mindmesh/logging"
	"github.com/hupe1980/mindmesh/mindmap"
	"github.com/hupe1980/mindmesh/model"
	"github.com/hupe1980/mindmesh/session"
)

// Options configures the MindMesh instance.
type Options struct {
	// Store holds the open sessions (defaults to an in-memory implementation)
	Store session.Store

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// MindMesh is the high-level façade aggregating the text generator and the
// session registry.
type MindMesh struct {
	opts      Options
	generator model.Model
}

// New creates a new MindMesh instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(generator model.Model, optFns ...func(o *Options)) *MindMesh {
	opts := Options{
		Store:  session.NewInMemoryStore(),
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &MindMesh{opts: opts, generator: generator}
}

// OpenSession creates a new empty mind-map session and registers it in the
// store. The returned handle is live; all commands against it are serialized
// by the session itself.
func (m *MindMesh) OpenSession() (*mindmap.Map, error) {
	s := mindmap.New(m.generator, func(o *mindmap.Options) {
		o.Logger = m.opts.Logger
	})
	if err := m.opts.Store.Create(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Session returns an open session by id.
func (m *MindMesh) Session(id string) (*mindmap.Map, error) {
	return m.opts.Store.Get(id)
}

// CloseSession removes a session from the store. The handle stays usable for
// callers still holding it but can no longer be looked up.
func (m *MindMesh) CloseSession(id string) error {
	return m.opts.Store.Delete(id)
}
