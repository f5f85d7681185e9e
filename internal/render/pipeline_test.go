package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"raytracer/internal/config"
	"raytracer/internal/ppm"
)

func testConfig(t *testing.T, w, h int) config.Config {
	t.Helper()
	cfg := config.Config{
		Width:  w,
		Height: h,
		Output: filepath.Join(t.TempDir(), "out.ppm"),
	}
	cfg.Resolve(config.Flags{Workers: 2})
	return cfg
}

func TestRunWritesP6(t *testing.T) {
	cfg := testConfig(t, 4, 2)
	p, err := New(cfg)
	require.NoError(t, err)

	res, err := p.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)

	header := []byte("P6\n4 2\n255\n")
	require.True(t, bytes.HasPrefix(data, header))
	assert.Len(t, data, len(header)+4*2*3)

	assert.Equal(t, cfg.Output, res.Path)
	assert.Equal(t, int64(len(data)), res.Bytes)
	assert.Equal(t, xxhash.Sum64(data), res.Digest)
	assert.Empty(t, res.Thumbnail)
}

func TestRunDigestStable(t *testing.T) {
	a := testConfig(t, 40, 30)
	b := testConfig(t, 40, 30)

	pa, err := New(a)
	require.NoError(t, err)
	pb, err := New(b)
	require.NoError(t, err)

	ra, err := pa.Run(context.Background())
	require.NoError(t, err)
	rb, err := pb.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ra.Digest, rb.Digest)
	assert.NotEqual(t, ra.Path, rb.Path)
}

func TestRunThumbnailAndManifest(t *testing.T) {
	cfg := testConfig(t, 64, 32)
	dir := filepath.Dir(cfg.Output)
	cfg.Thumbnail = filepath.Join(dir, "thumb.ppm")
	cfg.ThumbnailWidth = 16
	cfg.Manifest = filepath.Join(dir, "manifest.json")

	p, err := New(cfg)
	require.NoError(t, err)
	res, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cfg.Thumbnail, res.Thumbnail)

	f, err := os.Open(cfg.Thumbnail)
	require.NoError(t, err)
	defer f.Close()
	tc, err := ppm.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 16, tc.Width)
	assert.Equal(t, 8, tc.Height)

	raw, err := os.ReadFile(cfg.Manifest)
	require.NoError(t, err)
	var m Manifest
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "out.ppm", m.Image)
	assert.Equal(t, "thumb.ppm", m.Thumbnail)
	assert.Equal(t, "P6", m.Format)
	assert.Equal(t, 64, m.Width)
	assert.Equal(t, 32, m.Height)
	assert.Equal(t, res.Bytes, m.Bytes)
}

func TestRunViewer(t *testing.T) {
	t.Run("not called unless open is set", func(t *testing.T) {
		called := false
		p, err := New(testConfig(t, 2, 2), WithViewer(ViewerFunc(func(context.Context, string) error {
			called = true
			return nil
		})))
		require.NoError(t, err)
		_, err = p.Run(context.Background())
		require.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("called with output path", func(t *testing.T) {
		cfg := testConfig(t, 2, 2)
		cfg.Open = true
		var got string
		p, err := New(cfg, WithViewer(ViewerFunc(func(_ context.Context, path string) error {
			got = path
			return nil
		})))
		require.NoError(t, err)
		_, err = p.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, cfg.Output, got)
	})

	t.Run("error surfaces", func(t *testing.T) {
		cfg := testConfig(t, 2, 2)
		cfg.Open = true
		boom := errors.New("no display")
		p, err := New(cfg, WithViewer(ViewerFunc(func(context.Context, string) error { return boom })))
		require.NoError(t, err)
		res, err := p.Run(context.Background())
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, cfg.Output, res.Path, "file is still reported")
	})
}

func TestRunLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p, err := New(testConfig(t, 8, 8), WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = p.Run(context.Background())
	require.NoError(t, err)

	finished := logs.FilterMessage("render finished").All()
	require.Len(t, finished, 1)
	fields := finished[0].ContextMap()
	assert.Equal(t, int64(8), fields["width"])
	assert.Equal(t, int64(8*8*3+len("P6\n8 8\n255\n")), fields["bytes"])
	assert.Len(t, fields["digest"], 16)
}

func TestRunErrors(t *testing.T) {
	_, err := New(config.Config{Width: 0, Height: 1, Output: "x.ppm"})
	assert.Error(t, err)

	cfg := testConfig(t, 2, 2)
	cfg.Output = filepath.Join(t.TempDir(), "missing", "out.ppm")
	p, err := New(cfg)
	require.NoError(t, err)
	_, err = p.Run(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p, err = New(testConfig(t, 16, 16))
	require.NoError(t, err)
	_, err = p.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
