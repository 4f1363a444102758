package gfx

import (
	"errors"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type Usage uint16

const (
	StaticDraw Usage = iota
	DynamicDraw
	StreamDraw
)

func (u Usage) gl() uint32 {
	switch u {
	case DynamicDraw:
		return gl.DYNAMIC_DRAW
	case StreamDraw:
		return gl.STREAM_DRAW
	default:
		return gl.STATIC_DRAW
	}
}

type VertexFormat uint32

const (
	VertexPosition VertexFormat = 1 << iota
	VertexColor
	VertexTexcoord
	maxVertexFormat = VertexTexcoord
)

// attribElems gives the number of float32 elements for a vertex channel.
func (v VertexFormat) attribElems() int32 {
	switch v {
	case VertexTexcoord:
		return 2
	default:
		return 3
	}
}

// AttribBytes gives the byte size of a specific piece of vertex data.
func (v VertexFormat) AttribBytes() int {
	const fsize = 4
	return int(v.attribElems()) * fsize
}

// Stride gives the stride in bytes of one interleaved vertex.
func (v VertexFormat) Stride() int {
	stride := 0
	for i := VertexFormat(1); i <= maxVertexFormat; i <<= 1 {
		if v&i != 0 {
			stride += i.AttribBytes()
		}
	}
	return stride
}

// Count gives the number of channels present in the format.
func (v VertexFormat) Count() int {
	count := 0
	for i := VertexFormat(1); i <= maxVertexFormat; i <<= 1 {
		if v&i != 0 {
			count++
		}
	}
	return count
}

var ErrBadVertexFormat = errors.New("gfx: bad vertex format")

// Mesh owns a vertex array with its backing buffers. Buffers are
// allocated and filled once on creation and reused every frame.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool
	format        VertexFormat
}

// NewMesh uploads interleaved vertex data, and index data when indices
// is non-empty, into freshly allocated buffer objects. The vertex data
// length must fit whole vertices of the given format.
func NewMesh(vertices []float32, indices []uint32, format VertexFormat, usage Usage) (*Mesh, error) {
	stride := format.Stride()
	if stride == 0 || len(vertices) == 0 || len(vertices)*4%stride != 0 {
		return nil, ErrBadVertexFormat
	}
	m := &Mesh{
		format:  format,
		indexed: len(indices) > 0,
	}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), usage.gl())

	if m.indexed {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), usage.gl())
		m.count = int32(len(indices))
	} else {
		m.count = int32(len(vertices) * 4 / stride)
	}

	var index uint32
	offset := 0
	for ch := VertexFormat(1); ch <= maxVertexFormat; ch <<= 1 {
		if format&ch == 0 {
			continue
		}
		gl.VertexAttribPointer(index, ch.attribElems(), gl.FLOAT, false, int32(stride), gl.PtrOffset(offset))
		gl.EnableVertexAttribArray(index)
		offset += ch.AttribBytes()
		index++
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m, nil
}

// Draw issues the whole mesh in a single call. The caller is expected
// to have bound a program.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Count returns the number of vertices drawn per call, or indices for
// an indexed mesh.
func (m *Mesh) Count() int {
	return int(m.count)
}

func (m *Mesh) Format() VertexFormat {
	return m.format
}

// Release queues the vertex array and its buffers for deletion at the
// next Collect checkpoint.
func (m *Mesh) Release() {
	trashbin.addVertexArray(m.vao)
	if m.indexed {
		trashbin.addBuffers(m.vbo, m.ebo)
	} else {
		trashbin.addBuffers(m.vbo)
	}
	m.vao, m.vbo, m.ebo = 0, 0, 0
}
