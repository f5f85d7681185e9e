package raster

import "raytracer/internal/mathutil"

// Shader computes the color of one pixel. It must depend only on its
// arguments so rows can be filled in any order.
type Shader func(row, col, width, height int) mathutil.Vec3f

// Gradient is the diagonal test pattern: red follows the row, green follows
// the column, blue stays zero. Top-left is black.
func Gradient(row, col, width, height int) mathutil.Vec3f {
	return mathutil.Vec3f{
		float32(row) / float32(height),
		float32(col) / float32(width),
		0,
	}
}

// fillRows shades rows [from, to) of fb.
func fillRows(fb *FrameBuffer, shade Shader, from, to int) {
	w, h := fb.Width, fb.Height
	for row := from; row < to; row++ {
		off := row * w
		for col := 0; col < w; col++ {
			fb.Pix[off+col] = shade(row, col, w, h)
		}
	}
}

// Fill shades every pixel of fb in row-major order.
func Fill(fb *FrameBuffer, shade Shader) {
	fillRows(fb, shade, 0, fb.Height)
}
