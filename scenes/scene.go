// Package scenes holds the fixed table of drawable scenes and the
// cursor that selects between them. It knows nothing about the window
// or the GL context; the render loop looks definitions up here and
// hands them to gfx.
package scenes

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	gfx "github.com/gjae/learningopengl"
)

var (
	ErrEmptyScene      = errors.New("scenes: scene has no vertices")
	ErrPartialTriangle = errors.New("scenes: vertex count is not a multiple of 3")
)

// Definition describes one selectable scene: its triangle geometry,
// the clear color behind it, and the fragment shader that colors it.
// Definitions are built once at startup and never mutated.
type Definition struct {
	Vertices   []mgl32.Vec3
	Background gfx.Color
	Fragment   gfx.FragmentShader
}

// Validate checks the whole-triangles invariant.
func (d Definition) Validate() error {
	if len(d.Vertices) == 0 {
		return ErrEmptyScene
	}
	if len(d.Vertices)%3 != 0 {
		return ErrPartialTriangle
	}
	return nil
}

// Triangles returns the number of triangles in the scene.
func (d Definition) Triangles() int {
	return len(d.Vertices) / 3
}

// Interleave flattens the vertex list into the position-only layout
// that gfx.NewMesh consumes.
func (d Definition) Interleave() []float32 {
	out := make([]float32, 0, len(d.Vertices)*3)
	for _, v := range d.Vertices {
		out = append(out, v.X(), v.Y(), v.Z())
	}
	return out
}
