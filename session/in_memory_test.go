package session

import (
	"testing"

	"github.com/hupe1980/mindmesh/mindmap"
	"github.com/hupe1980/mindmesh/model"
)

// Interface compliance (compile-time assertion)
var _ Store = (*InMemoryStore)(nil)

func TestInMemoryStore_CreateGetDelete(t *testing.T) {
	store := NewInMemoryStore()
	m := mindmap.New(model.NewMockModel("test", "mock"))

	if err := store.Create(m); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := store.Get(m.ID())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != m {
		t.Error("store must return the live session handle, not a copy")
	}

	if err := store.Delete(m.ID()); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(m.ID()); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestInMemoryStore_GetUnknown(t *testing.T) {
	store := NewInMemoryStore()
	if _, err := store.Get("nope"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
