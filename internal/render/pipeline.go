package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"raytracer/internal/config"
	"raytracer/internal/postprocess"
	"raytracer/internal/ppm"
	"raytracer/internal/raster"
)

// Result describes one finished render.
type Result struct {
	Path      string
	Width     int
	Height    int
	Bytes     int64
	Digest    uint64 // xxhash64 of the written file
	Thumbnail string
	Elapsed   time.Duration
}

// Pipeline generates the frame buffer, writes it as P6 and runs the optional
// thumbnail, manifest and viewer steps.
type Pipeline struct {
	cfg    config.Config
	log    *zap.Logger
	viewer Viewer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// WithViewer sets the post-render action. It only runs when cfg.Open is set.
func WithViewer(v Viewer) Option {
	return func(p *Pipeline) { p.viewer = v }
}

// New returns a pipeline for a resolved config.
func New(cfg config.Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pipeline{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run renders once. The returned error is the first failing step; earlier
// files stay on disk.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	cfg := p.cfg
	log := p.log.With(
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.String("output", cfg.Output),
	)
	start := time.Now()
	log.Debug("render started", zap.Int("workers", cfg.Workers))

	fb, err := raster.GenerateParallel(ctx, cfg.Width, cfg.Height, cfg.Workers)
	if err != nil {
		return Result{}, fmt.Errorf("render: generate: %w", err)
	}

	if err := ppm.WriteFile(cfg.Output, fb.Pix, fb.Width, fb.Height); err != nil {
		return Result{}, fmt.Errorf("render: %w", err)
	}

	n, digest, err := hashFile(cfg.Output)
	if err != nil {
		return Result{}, fmt.Errorf("render: %w", err)
	}

	res := Result{
		Path:   cfg.Output,
		Width:  fb.Width,
		Height: fb.Height,
		Bytes:  n,
		Digest: digest,
	}

	if cfg.Thumbnail != "" {
		thumb := postprocess.Thumbnail(postprocess.ToNRGBA(fb), cfg.ThumbnailWidth)
		if err := ppm.WriteImageFile(cfg.Thumbnail, thumb); err != nil {
			return res, fmt.Errorf("render: thumbnail: %w", err)
		}
		res.Thumbnail = cfg.Thumbnail
		log.Debug("thumbnail written",
			zap.String("path", cfg.Thumbnail),
			zap.Int("thumb_width", thumb.Bounds().Dx()),
			zap.Int("thumb_height", thumb.Bounds().Dy()),
		)
	}

	res.Elapsed = time.Since(start)

	if cfg.Manifest != "" {
		if err := WriteManifest(cfg.Manifest, res); err != nil {
			return res, err
		}
	}

	log.Info("render finished",
		zap.Int64("bytes", res.Bytes),
		zap.String("digest", fmt.Sprintf("%016x", res.Digest)),
		zap.Duration("elapsed", res.Elapsed),
	)

	if cfg.Open && p.viewer != nil {
		if err := p.viewer.View(ctx, cfg.Output); err != nil {
			log.Warn("viewer failed", zap.Error(err))
			return res, fmt.Errorf("render: view %s: %w", cfg.Output, err)
		}
	}

	return res, nil
}

func hashFile(path string) (int64, uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("hash %s: %w", path, err)
	}
	defer f.Close()

	h := xxhash.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return 0, 0, fmt.Errorf("hash %s: %w", path, err)
	}
	return n, h.Sum64(), nil
}
