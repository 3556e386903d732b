package mindmesh

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/mindmesh/graph"
	"github.com/hupe1980/mindmesh/model"
	"github.com/hupe1980/mindmesh/prompt"
	"github.com/hupe1980/mindmesh/session"
)

func TestMindMesh_SessionLifecycle(t *testing.T) {
	mock := model.NewMockModel("test", "mock")
	mesh := New(mock)

	mm, err := mesh.OpenSession()
	require.NoError(t, err)
	assert.True(t, mm.IsEmpty())

	got, err := mesh.Session(mm.ID())
	require.NoError(t, err)
	assert.Same(t, mm, got)

	require.NoError(t, mesh.CloseSession(mm.ID()))
	_, err = mesh.Session(mm.ID())
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestMindMesh_IndependentSessions(t *testing.T) {
	mock := model.NewMockModel("test", "mock")
	mesh := New(mock)

	first, err := mesh.OpenSession()
	require.NoError(t, err)
	second, err := mesh.OpenSession()
	require.NoError(t, err)
	require.NotEqual(t, first.ID(), second.ID())

	mock.AddResponse(prompt.Restart("trees").Content, `add("Oak", "Acorn")`)
	require.NoError(t, first.GenerateInitial(context.Background(), "trees"))

	edges, _ := first.Graph()
	assert.Equal(t, []graph.Edge{{A: "Oak", B: "Acorn"}}, edges)
	assert.True(t, second.IsEmpty(), "sessions share no graph state")
}
