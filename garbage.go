package gfx

import (
	"sync"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// garbage collects handles of released GPU objects. Deleting them must
// happen on the thread that owns the GL context, so Release methods only
// queue handles here and Collect flushes the queue at frame checkpoints.
type garbage struct {
	// Contention is basically non-existent on a single render thread,
	// but Release is allowed from any goroutine.
	sync.Mutex
	buffers      []uint32
	vertexArrays []uint32
	programs     []uint32
	textures     []uint32
}

var trashbin garbage

func (g *garbage) addBuffers(bufs ...uint32) {
	g.Lock()
	g.buffers = append(g.buffers, bufs...)
	g.Unlock()
}

func (g *garbage) addVertexArray(vao uint32) {
	g.Lock()
	g.vertexArrays = append(g.vertexArrays, vao)
	g.Unlock()
}

func (g *garbage) addProgram(prog uint32) {
	g.Lock()
	g.programs = append(g.programs, prog)
	g.Unlock()
}

func (g *garbage) addTexture(tex uint32) {
	g.Lock()
	g.textures = append(g.textures, tex)
	g.Unlock()
}

func (g *garbage) release() {
	g.Lock()
	defer g.Unlock()

	if len(g.buffers) > 0 {
		gl.DeleteBuffers(int32(len(g.buffers)), &g.buffers[0])
		g.buffers = nil
	}
	if len(g.vertexArrays) > 0 {
		gl.DeleteVertexArrays(int32(len(g.vertexArrays)), &g.vertexArrays[0])
		g.vertexArrays = nil
	}
	for _, p := range g.programs {
		gl.DeleteProgram(p)
	}
	g.programs = nil
	if len(g.textures) > 0 {
		gl.DeleteTextures(int32(len(g.textures)), &g.textures[0])
		g.textures = nil
	}
}

// Collect deletes every queued GPU object. It must run on the context
// thread; Window calls it once per frame and a final time on Close.
func Collect() {
	trashbin.release()
}
