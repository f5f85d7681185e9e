package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults for a plain invocation: 1024×768 written to ./out.ppm.
const (
	DefaultWidth          = 1024
	DefaultHeight         = 768
	DefaultOutput         = "./out.ppm"
	DefaultThumbnailWidth = 256
)

// Config holds output paths and render settings.
type Config struct {
	// Paths
	Output    string `json:"output" yaml:"output"`
	Thumbnail string `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Manifest  string `json:"manifest,omitempty" yaml:"manifest,omitempty"`

	// Render settings
	Width          int `json:"width" yaml:"width"`
	Height         int `json:"height" yaml:"height"`
	ThumbnailWidth int `json:"thumbnail_width,omitempty" yaml:"thumbnail_width,omitempty"`
	Workers        int `json:"workers,omitempty" yaml:"workers,omitempty"`

	// Post-render
	Open   bool   `json:"open,omitempty" yaml:"open,omitempty"`
	Viewer string `json:"viewer,omitempty" yaml:"viewer,omitempty"`
}

// Load reads a config file and returns Config. Files ending in .yaml or
// .yml are parsed as YAML, everything else as JSON.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width     int
	Height    int
	Output    string
	Thumbnail string
	Manifest  string
	Workers   int
	Open      bool
	Viewer    string
}

// Resolve applies CLI overrides and fills empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Thumbnail != "" {
		c.Thumbnail = flags.Thumbnail
	}
	if flags.Manifest != "" {
		c.Manifest = flags.Manifest
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Open {
		c.Open = true
	}
	if flags.Viewer != "" {
		c.Viewer = flags.Viewer
	}

	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Thumbnail != "" && c.ThumbnailWidth <= 0 {
		c.ThumbnailWidth = DefaultThumbnailWidth
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Viewer == "" {
		c.Viewer = defaultViewer()
	}
}

// Validate reports settings the renderer cannot use.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output path is empty"))
	}
	if c.Thumbnail != "" && filepath.Clean(c.Thumbnail) == filepath.Clean(c.Output) {
		errs = append(errs, errors.New("thumbnail path equals output path"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func defaultViewer() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}
