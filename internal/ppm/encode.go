// Package ppm reads and writes binary portable pixmaps (P6, maxval 255).
package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"raytracer/internal/mathutil"
)

const (
	magic  = "P6"
	maxval = 255
)

var (
	ErrInvalidDimensions = errors.New("ppm: invalid dimensions")
	ErrSizeMismatch      = errors.New("ppm: buffer length does not match width*height")
)

// ChannelByte clamps a linear channel to [0,1] and scales it to a byte,
// truncating toward zero. NaN maps to 0.
func ChannelByte(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(maxval * v)
}

func writeHeader(w io.Writer, width, height int) error {
	_, err := fmt.Fprintf(w, "%s\n%d %d\n%d\n", magic, width, height, maxval)
	return err
}

func validate(n, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if n != width*height {
		return fmt.Errorf("%w: len %d, want %d (%dx%d)", ErrSizeMismatch, n, width*height, width, height)
	}
	return nil
}

// Encode writes pix as a P6 image. pix is row-major with len == width*height.
// Nothing is written when the arguments are inconsistent.
func Encode(w io.Writer, pix []mathutil.Vec3f, width, height int) error {
	if err := validate(len(pix), width, height); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if err := writeHeader(bw, width, height); err != nil {
		return fmt.Errorf("ppm: write header: %w", err)
	}

	line := make([]byte, width*3)
	for row := 0; row < height; row++ {
		src := pix[row*width : (row+1)*width]
		for i, c := range src {
			line[i*3] = ChannelByte(c[0])
			line[i*3+1] = ChannelByte(c[1])
			line[i*3+2] = ChannelByte(c[2])
		}
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("ppm: write row %d: %w", row, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ppm: flush: %w", err)
	}
	return nil
}

// EncodeImage writes any image as P6. Alpha is dropped.
func EncodeImage(w io.Writer, img image.Image) error {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	bw := bufio.NewWriter(w)
	if err := writeHeader(bw, width, height); err != nil {
		return fmt.Errorf("ppm: write header: %w", err)
	}

	line := make([]byte, width*3)
	nrgba, fast := img.(*image.NRGBA)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		if fast {
			off := nrgba.PixOffset(b.Min.X, y)
			for x := 0; x < width; x++ {
				copy(line[x*3:x*3+3], nrgba.Pix[off+x*4:off+x*4+3])
			}
		} else {
			for x := 0; x < width; x++ {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, y)).(color.NRGBA)
				line[x*3], line[x*3+1], line[x*3+2] = c.R, c.G, c.B
			}
		}
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("ppm: write row %d: %w", y-b.Min.Y, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ppm: flush: %w", err)
	}
	return nil
}

// WriteFile creates or truncates path and encodes pix into it.
// A failed write may leave a partial file behind.
func WriteFile(path string, pix []mathutil.Vec3f, width, height int) error {
	if err := validate(len(pix), width, height); err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error {
		return Encode(w, pix, width, height)
	})
}

// WriteImageFile is WriteFile for an image.Image.
func WriteImageFile(path string, img image.Image) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeImage(w, img)
	})
}

func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ppm: create %s: %w", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("ppm: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("ppm: close %s: %w", path, err)
	}
	return nil
}
