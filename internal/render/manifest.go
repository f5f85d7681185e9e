package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Manifest is the JSON sidecar describing a render.
type Manifest struct {
	Image     string `json:"image"`
	Format    string `json:"format"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Bytes     int64  `json:"bytes"`
	XXHash64  string `json:"xxhash64"`
	Thumbnail string `json:"thumbnail,omitempty"`
	ElapsedMS int64  `json:"elapsed_ms"`
}

// WriteManifest writes the manifest for res to path.
// Image paths are stored relative to the manifest's directory when possible.
func WriteManifest(path string, res Result) error {
	dir := filepath.Dir(path)
	m := Manifest{
		Image:     relTo(dir, res.Path),
		Format:    "P6",
		Width:     res.Width,
		Height:    res.Height,
		Bytes:     res.Bytes,
		XXHash64:  fmt.Sprintf("%016x", res.Digest),
		ElapsedMS: res.Elapsed.Milliseconds(),
	}
	if res.Thumbnail != "" {
		m.Thumbnail = relTo(dir, res.Thumbnail)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("render: manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("render: manifest: %w", err)
	}
	return nil
}

func relTo(dir, path string) string {
	absDir, err1 := filepath.Abs(dir)
	absPath, err2 := filepath.Abs(path)
	if err1 != nil || err2 != nil {
		return path
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
