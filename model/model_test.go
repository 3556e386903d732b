package model

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/mindmesh/core"
)

// Interface compliance (compile-time assertion)
var _ Model = (*MockModel)(nil)

func TestMockModel_CannedResponse(t *testing.T) {
	m := NewMockModel("test", "mock")
	m.AddResponse("hello", `add("a", "b")`)

	if _, err := m.Generate(context.Background(), Request{}); err == nil {
		t.Error("expected error for empty request")
	}

	resp, err := m.Generate(context.Background(), Request{Messages: []core.Message{
		core.NewUserMessage("hello"),
	}})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if resp.Content != `add("a", "b")` {
		t.Errorf("unexpected content: %q", resp.Content)
	}
}

func TestMockModel_FailWith(t *testing.T) {
	m := NewMockModel("test", "mock")
	boom := errors.New("boom")
	m.FailWith(boom)

	if _, err := m.Generate(context.Background(), Request{}); !errors.Is(err, boom) {
		t.Errorf("expected injected error, got %v", err)
	}

	m.FailWith(nil)
	if _, err := m.Generate(context.Background(), Request{Messages: []core.Message{
		core.NewUserMessage("x"),
	}}); err != nil {
		t.Errorf("expected recovery after FailWith(nil), got %v", err)
	}
}
