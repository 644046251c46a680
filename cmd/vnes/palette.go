package main

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
)

var black = color.RGBA{0, 0, 0, 255}
var black128 = color.RGBA{0, 0, 0, 128}
var white = color.RGBA{255, 255, 255, 255}
var white64 = color.RGBA{255, 255, 255, 64}
var white128 = color.RGBA{255, 255, 255, 128}
var lightBlue = color.RGBA{0xb8, 0xe2, 0xe8, 255}

func rgbToSDL(c color.RGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// expandRGBA converts the console's packed RGB24 framebuffer into the
// RGBA8888 layout the renderer's background texture expects, reusing dst
// across calls to avoid a per-frame allocation.
func expandRGBA(dst []byte, rgb []byte) []byte {
	n := len(rgb) / 3
	if cap(dst) < n*4 {
		dst = make([]byte, n*4)
	}
	dst = dst[:n*4]

	for i := 0; i < n; i++ {
		dst[i*4+0] = rgb[i*3+0]
		dst[i*4+1] = rgb[i*3+1]
		dst[i*4+2] = rgb[i*3+2]
		dst[i*4+3] = 0xFF
	}

	return dst
}
