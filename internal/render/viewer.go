package render

import (
	"context"
	"os/exec"
)

// Viewer displays a finished image.
type Viewer interface {
	View(ctx context.Context, path string) error
}

// ViewerFunc adapts a function to Viewer.
type ViewerFunc func(ctx context.Context, path string) error

func (f ViewerFunc) View(ctx context.Context, path string) error { return f(ctx, path) }

// ExecViewer runs Command with the image path as its only argument and waits
// for it to exit.
type ExecViewer struct {
	Command string
}

func (v ExecViewer) View(ctx context.Context, path string) error {
	return exec.CommandContext(ctx, v.Command, path).Run()
}
