package gfx

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Sampler2D wraps a 2D texture object.
type Sampler2D struct {
	tex uint32
}

// Image uploads img as a mipmapped, repeating 2D texture. Images that
// are not already RGBA are converted before upload. No processing is
// done beyond that, such as premultiplying alpha or linearization.
func Image(img image.Image) (*Sampler2D, error) {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	size := rgba.Rect.Size()
	if rgba.Stride != size.X*4 {
		return nil, fmt.Errorf("gfx: unsupported image stride %d", rgba.Stride)
	}

	s := &Sampler2D{}
	gl.GenTextures(1, &s.tex)
	s.Bind()
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(size.X), int32(size.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	return s, nil
}

func (s *Sampler2D) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, s.tex)
}

// Release queues the texture for deletion at the next Collect checkpoint.
func (s *Sampler2D) Release() {
	trashbin.addTexture(s.tex)
	s.tex = 0
}
