package assets

import (
	"context"
	"errors"
	"fmt"
	"markerview/internal/logging"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/qmuntal/gltf"
	"github.com/rs/zerolog"
)

// Result is delivered once per Load on the returned channel.
type Result struct {
	Path     string
	Meshes   int
	Duration time.Duration
	Err      error
}

// Loader decodes and validates model files off the render goroutine. GPU
// upload still has to happen on the goroutine that owns the window.
type Loader struct {
	// Open decodes a .gltf or .glb file together with its external buffers.
	Open func(name string) (*gltf.Document, error)
	log  zerolog.Logger
}

func NewLoader() *Loader {
	return &Loader{
		Open: gltf.Open,
		log:  logging.Component("assets"),
	}
}

// Load starts a single decode of path. The channel receives exactly one
// Result and is then closed; it never blocks the sender.
func (l *Loader) Load(ctx context.Context, path string) <-chan Result {
	out := make(chan Result, 1)
	l.log.Debug().Str("path", path).Msg("model load requested")

	go func() {
		defer close(out)
		start := time.Now()
		res := Result{Path: path}
		res.Meshes, res.Err = l.check(path)
		if res.Err == nil && ctx.Err() != nil {
			res.Err = ctx.Err()
		}
		res.Duration = time.Since(start)
		out <- res
	}()

	return out
}

func (l *Loader) check(path string) (int, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case IsGLTF(path):
		doc, err := l.Open(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return 0, fmt.Errorf("read model: %w", err)
			}
			return 0, fmt.Errorf("decode model: %w: %v", ErrNotGLTF, err)
		}
		n, err := Inspect(doc)
		if err != nil {
			return 0, fmt.Errorf("validate model: %w", err)
		}
		return n, nil
	case rawFormats[ext]:
		if _, err := os.Stat(path); err != nil {
			return 0, fmt.Errorf("read model: %w", err)
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
