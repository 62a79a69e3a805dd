package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
)

var (
	ErrNotGLTF            = errors.New("not a glTF document")
	ErrUnsupportedVersion = errors.New("unsupported glTF version")
	ErrUnsupportedFormat  = errors.New("unsupported model format")
	ErrEmptyModel         = errors.New("model has no meshes")
)

// IsGLTF reports whether path has a .gltf or .glb extension.
func IsGLTF(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf":
		return true
	}
	return false
}

// rawFormats are parsed by raylib alone; they are only checked for existence.
var rawFormats = map[string]bool{
	".obj": true,
	".iqm": true,
	".vox": true,
	".m3d": true,
}

// Inspect checks a decoded document is glTF 2.x and has something to draw.
// It returns the mesh count.
func Inspect(doc *gltf.Document) (int, error) {
	if doc == nil {
		return 0, ErrNotGLTF
	}
	if !strings.HasPrefix(doc.Asset.Version, "2") {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedVersion, doc.Asset.Version)
	}
	if len(doc.Meshes) == 0 {
		return 0, ErrEmptyModel
	}
	return len(doc.Meshes), nil
}
