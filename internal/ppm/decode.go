package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
)

// ErrFormat reports input that is not a P6 pixmap with maxval 255.
var ErrFormat = errors.New("ppm: not a P6 image")

// maxPixels bounds width*height so a hostile header cannot force a huge
// allocation before any raster byte is read.
const maxPixels = 1 << 28

func init() {
	image.RegisterFormat("ppm", magic, Decode, DecodeConfig)
}

type header struct {
	width, height int
}

func readHeader(r *bufio.Reader) (header, error) {
	var m [2]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return header{}, fmt.Errorf("ppm: read magic: %w", err)
	}
	if string(m[:]) != magic {
		return header{}, fmt.Errorf("%w: magic %q", ErrFormat, m[:])
	}
	b, err := r.ReadByte()
	if err != nil {
		return header{}, fmt.Errorf("ppm: read header: %w", err)
	}
	if !isSpace(b) {
		return header{}, fmt.Errorf("%w: no whitespace after magic", ErrFormat)
	}
	if err := r.UnreadByte(); err != nil {
		return header{}, fmt.Errorf("ppm: read header: %w", err)
	}

	var fields [3]int
	for i := range fields {
		n, err := readInt(r)
		if err != nil {
			return header{}, err
		}
		fields[i] = n
	}
	// Exactly one whitespace byte separates maxval from the raster.
	if _, err := r.ReadByte(); err != nil {
		return header{}, fmt.Errorf("ppm: read header: %w", err)
	}

	h := header{width: fields[0], height: fields[1]}
	if h.width <= 0 || h.height <= 0 {
		return header{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, h.width, h.height)
	}
	if h.width > maxPixels/h.height {
		return header{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidDimensions, h.width, h.height, maxPixels)
	}
	if fields[2] != maxval {
		return header{}, fmt.Errorf("%w: maxval %d", ErrFormat, fields[2])
	}
	return h, nil
}

// readInt skips whitespace and '#' comments, then parses a decimal number.
func readInt(r *bufio.Reader) (int, error) {
	var b byte
	var err error
	for {
		b, err = r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("ppm: read header: %w", err)
		}
		if b == '#' {
			if _, err := r.ReadString('\n'); err != nil {
				return 0, fmt.Errorf("ppm: read comment: %w", err)
			}
			continue
		}
		if !isSpace(b) {
			break
		}
	}

	if b < '0' || b > '9' {
		return 0, fmt.Errorf("%w: unexpected byte %q in header", ErrFormat, b)
	}
	n := 0
	for {
		n = n*10 + int(b-'0')
		if n > 1<<24 {
			return 0, fmt.Errorf("%w: header value too large", ErrFormat)
		}
		b, err = r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("ppm: read header: %w", err)
		}
		if b < '0' || b > '9' {
			break
		}
	}
	if !isSpace(b) {
		return 0, fmt.Errorf("%w: unexpected byte %q in header", ErrFormat, b)
	}
	return n, r.UnreadByte()
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// DecodeConfig returns the dimensions of a P6 image without reading the raster.
func DecodeConfig(r io.Reader) (image.Config, error) {
	h, err := readHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.NRGBAModel, Width: h.width, Height: h.height}, nil
}

// Decode reads a P6 image into an opaque *image.NRGBA.
func Decode(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	h, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, h.width, h.height))
	line := make([]byte, h.width*3)
	for y := 0; y < h.height; y++ {
		if _, err := io.ReadFull(br, line); err != nil {
			return nil, fmt.Errorf("ppm: read row %d: %w", y, err)
		}
		off := img.PixOffset(0, y)
		for x := 0; x < h.width; x++ {
			img.Pix[off+x*4] = line[x*3]
			img.Pix[off+x*4+1] = line[x*3+1]
			img.Pix[off+x*4+2] = line[x*3+2]
			img.Pix[off+x*4+3] = 0xff
		}
	}
	return img, nil
}
