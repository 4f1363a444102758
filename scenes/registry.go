package scenes

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyRegistry   = errors.New("scenes: registry needs at least one scene")
	ErrSceneOutOfRange = errors.New("scenes: scene index out of range")
)

// Registry is an ordered, immutable table of scene definitions. It is
// fixed at construction and never resized.
type Registry struct {
	defs []Definition
}

// NewRegistry validates defs and copies them into a fixed table. Any
// invalid definition fails the whole construction.
func NewRegistry(defs ...Definition) (*Registry, error) {
	if len(defs) == 0 {
		return nil, ErrEmptyRegistry
	}
	table := make([]Definition, len(defs))
	for i, d := range defs {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("scene %d: %w", i, err)
		}
		table[i] = d
	}
	return &Registry{defs: table}, nil
}

// Get returns the definition at index i. It is a pure lookup; an index
// outside [0, Len) yields ErrSceneOutOfRange.
func (r *Registry) Get(i int) (Definition, error) {
	if i < 0 || i >= len(r.defs) {
		return Definition{}, fmt.Errorf("%w: %d", ErrSceneOutOfRange, i)
	}
	return r.defs[i], nil
}

func (r *Registry) Len() int {
	return len(r.defs)
}
