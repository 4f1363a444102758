// Package geometry builds interleaved vertex data for upload into
// gfx meshes.
package geometry

import (
	gfx "github.com/gjae/learningopengl"
)

// Builder accumulates per-channel vertex data and produces the
// interleaved layout gfx.NewMesh expects. Position starts a new
// vertex; channels left unset on a vertex inherit the last value
// written for that channel.
type Builder struct {
	format  gfx.VertexFormat
	stride  int // float32 elements per vertex
	cur     int // element offset of the current vertex
	curset  gfx.VertexFormat
	started bool
	last    map[gfx.VertexFormat][]float32
	offsets map[gfx.VertexFormat]int
	verts   []float32
	indices []uint32
}

func NewBuilder(format gfx.VertexFormat) *Builder {
	return &Builder{
		format: format,
		stride: format.Stride() / 4,
		last:   make(map[gfx.VertexFormat][]float32, format.Count()),
	}
}

// Clear resets the builder to zero vertices and indices.
func (b *Builder) Clear() {
	b.cur = 0
	b.curset = 0
	b.started = false
	b.last = make(map[gfx.VertexFormat][]float32, len(b.last))
	b.verts = b.verts[:0]
	b.indices = b.indices[:0]
}

// Position starts a new vertex at x, y, z.
func (b *Builder) Position(x, y, z float32) *Builder {
	b.next()
	b.set(gfx.VertexPosition, x, y, z)
	return b
}

// Color sets the color channel of the current vertex.
func (b *Builder) Color(r, g, bl float32) *Builder {
	b.set(gfx.VertexColor, r, g, bl)
	return b
}

// Texcoord sets the texture coordinate channel of the current vertex.
func (b *Builder) Texcoord(u, v float32) *Builder {
	b.set(gfx.VertexTexcoord, u, v)
	return b
}

// Indices appends to the index list.
func (b *Builder) Indices(idx ...uint32) *Builder {
	b.indices = append(b.indices, idx...)
	return b
}

// Build returns the interleaved vertices and the accumulated indices.
// The current vertex is back-filled first.
func (b *Builder) Build() ([]float32, []uint32) {
	if b.started {
		b.fillVertex()
	}
	return b.verts, b.indices
}

// Mesh uploads the built data into a newly allocated mesh.
func (b *Builder) Mesh(usage gfx.Usage) (*gfx.Mesh, error) {
	verts, indices := b.Build()
	return gfx.NewMesh(verts, indices, b.format, usage)
}

func (b *Builder) next() {
	if b.started {
		b.fillVertex()
		b.cur += b.stride
	}
	b.started = true
	b.curset = 0
	b.verts = append(b.verts, make([]float32, b.stride)...)
}

// fillVertex fills channels not set on the current vertex using the
// last data written for them on a previous vertex.
func (b *Builder) fillVertex() {
	for ch, data := range b.last {
		if b.curset&ch == 0 {
			b.write(ch, data)
		}
	}
}

func (b *Builder) set(ch gfx.VertexFormat, data ...float32) {
	if b.format&ch == 0 {
		panic(gfx.ErrBadVertexFormat)
	}
	b.write(ch, data)
	b.last[ch] = append(b.last[ch][:0], data...)
}

func (b *Builder) write(ch gfx.VertexFormat, data []float32) {
	b.curset |= ch
	offs := b.cur + b.offset(ch)
	copy(b.verts[offs:offs+len(data)], data)
}

func (b *Builder) offset(ch gfx.VertexFormat) int {
	if b.offsets == nil {
		offs := 0
		b.offsets = make(map[gfx.VertexFormat]int, b.format.Count())
		for i := gfx.VertexFormat(1); i <= b.format; i <<= 1 {
			if b.format&i != 0 {
				b.offsets[i] = offs
				offs += i.AttribBytes() / 4
			}
		}
	}
	return b.offsets[ch]
}
