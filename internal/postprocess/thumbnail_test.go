package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raytracer/internal/mathutil"
	"raytracer/internal/raster"
)

func TestToNRGBA(t *testing.T) {
	fb, err := raster.NewFrameBuffer(2, 1)
	require.NoError(t, err)
	fb.Pix[0] = mathutil.Vec3f{1.5, -0.2, 0.5}
	fb.Pix[1] = mathutil.Vec3f{0, 1, 0}

	img := ToNRGBA(fb)
	assert.Equal(t, color.NRGBA{255, 0, 127, 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{0, 255, 0, 255}, img.NRGBAAt(1, 0))
}

func TestThumbnailKeepsAspect(t *testing.T) {
	fb, err := raster.Generate(1024, 768)
	require.NoError(t, err)

	thumb := Thumbnail(ToNRGBA(fb), 256)
	assert.Equal(t, image.Rect(0, 0, 256, 192), thumb.Bounds())

	// Top-left stays near black, the gradient keeps its direction.
	assert.Less(t, thumb.NRGBAAt(0, 0).R, uint8(8))
	assert.Greater(t, thumb.NRGBAAt(0, 191).R, thumb.NRGBAAt(0, 0).R)
	assert.Greater(t, thumb.NRGBAAt(255, 0).G, thumb.NRGBAAt(0, 0).G)
}

func TestThumbnailNoUpscale(t *testing.T) {
	fb, err := raster.Generate(16, 8)
	require.NoError(t, err)
	img := ToNRGBA(fb)

	assert.Same(t, img, Thumbnail(img, 32))
	assert.Same(t, img, Thumbnail(img, 0))
}
