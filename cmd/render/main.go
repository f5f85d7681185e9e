package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"raytracer/internal/config"
	"raytracer/internal/render"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json, .yaml or .yml)")
	width := flag.Int("width", 0, "Image width in pixels (default: 1024)")
	height := flag.Int("height", 0, "Image height in pixels (default: 768)")
	output := flag.String("output", "", "Output PPM path (default: ./out.ppm)")
	thumbnail := flag.String("thumbnail", "", "Also write a downscaled PPM to this path")
	manifest := flag.String("manifest", "", "Write a JSON manifest describing the render")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	open := flag.Bool("open", false, "Open the image with the viewer after rendering")
	viewer := flag.String("viewer", "", "Viewer command (default: open / xdg-open)")
	debug := flag.Bool("debug", false, "Human-readable debug logging")

	flag.Parse()

	log, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Fatal("load config", zap.Error(err))
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Width:     *width,
		Height:    *height,
		Output:    *output,
		Thumbnail: *thumbnail,
		Manifest:  *manifest,
		Workers:   *workers,
		Open:      *open,
		Viewer:    *viewer,
	})

	p, err := render.New(cfg,
		render.WithLogger(log),
		render.WithViewer(render.ExecViewer{Command: cfg.Viewer}),
	)
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := p.Run(ctx); err != nil {
		log.Error("render failed", zap.Error(err))
		stop()
		log.Sync()
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableCaller = true
	return cfg.Build()
}
