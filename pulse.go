package gfx

import "github.com/chewxy/math32"

// PulseColor returns a color that oscillates over time, each channel on
// its own frequency so the blend never repeats visibly. t is in
// seconds; every component stays in [0, 1] and alpha is opaque.
func PulseColor(t float32) Color {
	return Color{
		R: math32.Sin(t*1.5)*0.5 + 0.5,
		G: math32.Sin(t*2.0)*0.5 + 0.5,
		B: math32.Sin(t*1.0)*0.5 + 0.5,
		A: 1.0,
	}
}
