package postprocess

import (
	"image"

	"golang.org/x/image/draw"

	"raytracer/internal/ppm"
	"raytracer/internal/raster"
)

// ToNRGBA converts a linear frame buffer to an opaque 8-bit image using the
// same clamp-and-truncate rule as the P6 encoder.
func ToNRGBA(fb *raster.FrameBuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for row := 0; row < fb.Height; row++ {
		off := img.PixOffset(0, row)
		src := fb.Pix[row*fb.Width : (row+1)*fb.Width]
		for col, c := range src {
			i := off + col*4
			img.Pix[i] = ppm.ChannelByte(c[0])
			img.Pix[i+1] = ppm.ChannelByte(c[1])
			img.Pix[i+2] = ppm.ChannelByte(c[2])
			img.Pix[i+3] = 255
		}
	}
	return img
}

// Thumbnail scales img so its width is targetWidth, keeping the aspect ratio.
// Images already no wider than targetWidth are returned unchanged.
func Thumbnail(img *image.NRGBA, targetWidth int) *image.NRGBA {
	b := img.Bounds()
	if targetWidth <= 0 || b.Dx() <= targetWidth {
		return img
	}

	targetHeight := b.Dy() * targetWidth / b.Dx()
	if targetHeight < 1 {
		targetHeight = 1
	}

	// Opaque source, so no premultiply round trip is needed before CatmullRom.
	dst := image.NewNRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
