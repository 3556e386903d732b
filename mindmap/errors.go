package mindmap

import "fmt"

var (
	// ErrEmptyMap is returned when an operation that requires an existing
	// graph (expansion, node deletion) is invoked on an empty mind map.
	ErrEmptyMap = fmt.Errorf("mind map is empty")

	// ErrInvalidRequest is returned when an expansion request does not set
	// exactly one of node / free text.
	ErrInvalidRequest = fmt.Errorf("exactly one of node or free text must be set")
)
