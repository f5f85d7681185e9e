package raster

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Generate allocates a width×height buffer filled with the Gradient pattern.
func Generate(width, height int) (*FrameBuffer, error) {
	fb, err := NewFrameBuffer(width, height)
	if err != nil {
		return nil, err
	}
	Fill(fb, Gradient)
	return fb, nil
}

// GenerateParallel produces the same buffer as Generate, shading bands of rows
// on up to workers goroutines. workers <= 0 means runtime.NumCPU().
func GenerateParallel(ctx context.Context, width, height, workers int) (*FrameBuffer, error) {
	return GenerateWith(ctx, width, height, workers, Gradient)
}

// GenerateWith is GenerateParallel with a caller-supplied shader.
func GenerateWith(ctx context.Context, width, height, workers int, shade Shader) (*FrameBuffer, error) {
	fb, err := NewFrameBuffer(width, height)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Bands are disjoint row ranges, so goroutines never write the same slot.
	band := (height + workers - 1) / workers
	if band < 1 {
		band = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for from := 0; from < height; from += band {
		if gctx.Err() != nil {
			break
		}
		from, to := from, min(from+band, height)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fillRows(fb, shade, from, to)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Wait succeeds when cancellation stopped the loop before any band failed.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fb, nil
}
