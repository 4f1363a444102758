package gfx

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type ShaderSource interface {
	typ() uint32
	source() string
}

type VertexShader string
type FragmentShader string

func (v VertexShader) typ() uint32 {
	return gl.VERTEX_SHADER
}

func (v VertexShader) source() string {
	return string(v)
}

func (f FragmentShader) typ() uint32 {
	return gl.FRAGMENT_SHADER
}

func (f FragmentShader) source() string {
	return string(f)
}

// Shader is a linked GLSL program.
type Shader struct {
	prog uint32
}

// BuildShader compiles and links the given sources into a program. The
// intermediate shader objects are deleted once the program is linked;
// compile and link failures carry the GL info log.
func BuildShader(srcs ...ShaderSource) (*Shader, error) {
	prog := gl.CreateProgram()
	for _, src := range srcs {
		s, err := compileShader(src)
		if err != nil {
			gl.DeleteProgram(prog)
			return nil, err
		}
		gl.AttachShader(prog, s)
		gl.DeleteShader(s)
	}
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		defer gl.DeleteProgram(prog)
		return nil, fmt.Errorf("gfx: program link failed:\n%s", programInfoLog(prog))
	}
	return &Shader{prog: prog}, nil
}

func compileShader(src ShaderSource) (uint32, error) {
	s := gl.CreateShader(src.typ())
	csources, free := gl.Strs(src.source() + "\x00")
	gl.ShaderSource(s, 1, csources, nil)
	free()
	gl.CompileShader(s)

	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var loglen int32
		gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &loglen)
		infolog := strings.Repeat("\x00", int(loglen+1))
		gl.GetShaderInfoLog(s, loglen, nil, gl.Str(infolog))
		gl.DeleteShader(s)
		return 0, fmt.Errorf("gfx: shader compile failed:\n%s", infolog)
	}
	return s, nil
}

func programInfoLog(prog uint32) string {
	var loglen int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &loglen)
	infolog := strings.Repeat("\x00", int(loglen+1))
	gl.GetProgramInfoLog(prog, loglen, nil, gl.Str(infolog))
	return infolog
}

func (s *Shader) Use() {
	gl.UseProgram(s.prog)
}

func (s *Shader) uniform(name string) int32 {
	return gl.GetUniformLocation(s.prog, gl.Str(name+"\x00"))
}

func (s *Shader) SetBool(name string, value bool) {
	v := int32(0)
	if value {
		v = 1
	}
	gl.Uniform1i(s.uniform(name), v)
}

func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.uniform(name), value)
}

func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.uniform(name), value)
}

func (s *Shader) SetColor(name string, c Color) {
	gl.Uniform4f(s.uniform(name), c.R, c.G, c.B, c.A)
}

// Release queues the program for deletion at the next Collect
// checkpoint. The shader must not be used afterwards.
func (s *Shader) Release() {
	trashbin.addProgram(s.prog)
	s.prog = 0
}
