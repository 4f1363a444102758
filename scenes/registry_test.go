package scenes

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gfx "github.com/gjae/learningopengl"
)

func TestBuiltinTable(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())

	triangle, err := reg.Get(0)
	require.NoError(t, err)
	assert.Len(t, triangle.Vertices, 3)
	assert.Len(t, triangle.Interleave(), 9)
	assert.Equal(t, 1, triangle.Triangles())
	assert.Equal(t, gfx.RGBA(0.2, 0.3, 0.3, 1), triangle.Background)

	rect, err := reg.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 2, rect.Triangles())
	assert.Equal(t, gfx.RGBA(1.0, 0.643, 0.0, 1), rect.Background)

	house, err := reg.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 3, house.Triangles())
	assert.Equal(t, gfx.RGBA(0.0, 1.0, 0.655, 1), house.Background)
}

func TestGetIsPure(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)
	for i := 0; i < reg.Len(); i++ {
		first, err := reg.Get(i)
		require.NoError(t, err)
		second, err := reg.Get(i)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestGetOutOfRange(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)

	_, err = reg.Get(-1)
	assert.ErrorIs(t, err, ErrSceneOutOfRange)
	_, err = reg.Get(reg.Len())
	assert.ErrorIs(t, err, ErrSceneOutOfRange)
}

func TestNewRegistryRejectsEmptyScene(t *testing.T) {
	_, err := NewRegistry(Definition{})
	assert.ErrorIs(t, err, ErrEmptyScene)
}

func TestNewRegistryRejectsPartialTriangle(t *testing.T) {
	_, err := NewRegistry(Definition{
		Vertices: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}},
	})
	assert.ErrorIs(t, err, ErrPartialTriangle)
}

func TestNewRegistryRejectsNoScenes(t *testing.T) {
	_, err := NewRegistry()
	assert.ErrorIs(t, err, ErrEmptyRegistry)
}

func TestInterleaveOrder(t *testing.T) {
	d := Definition{
		Vertices: []mgl32.Vec3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	}
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}, d.Interleave())
}
