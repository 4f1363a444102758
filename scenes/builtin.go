package scenes

import (
	"github.com/go-gl/mathgl/mgl32"

	gfx "github.com/gjae/learningopengl"
)

const orangeFragment gfx.FragmentShader = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}`

const blueFragment gfx.FragmentShader = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(0.0f, 0.0f, 0.98f, 1.0f);
}`

// Builtin returns the fixed three-scene table the tutorials cycle
// through: a triangle, a rectangle, and a small house shape.
func Builtin() (*Registry, error) {
	return NewRegistry(
		Definition{
			Vertices: []mgl32.Vec3{
				{-0.5, -0.5, 0}, // bottom left
				{0.5, -0.5, 0},  // bottom right
				{0, 0.5, 0},     // top center
			},
			Background: gfx.RGBA(0.2, 0.3, 0.3, 1),
			Fragment:   orangeFragment,
		},
		Definition{
			// rectangle as two triangles
			Vertices: []mgl32.Vec3{
				{0.5, 0.5, 0}, {0.5, -0.5, 0}, {-0.5, 0.5, 0},
				{0.5, -0.5, 0}, {-0.5, -0.5, 0}, {-0.5, 0.5, 0},
			},
			Background: gfx.RGBA(1.0, 0.643, 0.0, 1),
			Fragment:   blueFragment,
		},
		Definition{
			// rectangular body plus a roof triangle
			Vertices: []mgl32.Vec3{
				{0.3, 0.2, 0}, {0.2, -0.3, 0}, {-0.3, 0.2, 0},
				{0.2, -0.3, 0}, {-0.2, -0.3, 0}, {-0.3, 0.2, 0},
				{0, 0.5, 0}, {-0.3, 0.2, 0}, {0.3, 0.2, 0},
			},
			Background: gfx.RGBA(0.0, 1.0, 0.655, 1),
			Fragment:   blueFragment,
		},
	)
}
