package raster

import (
	"errors"
	"fmt"

	"raytracer/internal/mathutil"
)

// ErrInvalidDimensions is returned for a non-positive width or height.
var ErrInvalidDimensions = errors.New("raster: invalid dimensions")

// MaxPixels is the largest width*height a FrameBuffer may hold.
const MaxPixels = 1 << 28

// FrameBuffer holds linear colors as a flat row-major slice for cache locality.
// Pixel (row, col) is Pix[col + row*Width]. Values may exceed [0,1].
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []mathutil.Vec3f // len = W*H
}

// NewFrameBuffer allocates a zeroed (black) buffer.
func NewFrameBuffer(w, h int) (*FrameBuffer, error) {
	if err := checkDimensions(w, h); err != nil {
		return nil, err
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]mathutil.Vec3f, w*h),
	}, nil
}

func checkDimensions(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	if w > MaxPixels/h {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidDimensions, w, h, MaxPixels)
	}
	return nil
}

// Index maps (row, col) to the offset in Pix.
func (fb *FrameBuffer) Index(row, col int) int {
	return col + row*fb.Width
}

// At returns the color at (row, col). It panics if the pixel is outside the buffer.
func (fb *FrameBuffer) At(row, col int) mathutil.Vec3f {
	fb.mustContain(row, col)
	return fb.Pix[fb.Index(row, col)]
}

// Set stores c at (row, col). It panics if the pixel is outside the buffer.
func (fb *FrameBuffer) Set(row, col int, c mathutil.Vec3f) {
	fb.mustContain(row, col)
	fb.Pix[fb.Index(row, col)] = c
}

func (fb *FrameBuffer) mustContain(row, col int) {
	if row < 0 || row >= fb.Height || col < 0 || col >= fb.Width {
		panic(fmt.Sprintf("raster: pixel (row %d, col %d) outside %dx%d buffer", row, col, fb.Width, fb.Height))
	}
}

// Len is the number of pixels.
func (fb *FrameBuffer) Len() int {
	return len(fb.Pix)
}
