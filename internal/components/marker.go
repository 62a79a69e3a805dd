package components

import (
	"markerview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MarkerTag marks nodes that take part in click hit-testing.
const MarkerTag = "marker"

// Marker is a point of interest. The node's position is where the marker is
// drawn; Focus is the point the camera looks at after flying to it.
type Marker struct {
	engine.BaseComponent
	Label   string
	Focus   rl.Vector3
	Hovered bool
}

func NewMarker(label string, focus rl.Vector3) *Marker {
	return &Marker{
		Label: label,
		Focus: focus,
	}
}

// Position is the marker's display position in world space.
func (m *Marker) Position() rl.Vector3 {
	return m.Node().WorldPosition()
}
