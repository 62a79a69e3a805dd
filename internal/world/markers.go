package world

import (
	"markerview/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Marker is one row of the marker table: where the marker is drawn and which
// point the camera should look at once it has flown there.
type Marker struct {
	Label    string
	Position rl.Vector3
	Focus    rl.Vector3
}

// Markers turns the configured marker table into world-space markers,
// preserving order.
func Markers(table []config.MarkerConfig) []Marker {
	out := make([]Marker, 0, len(table))
	for _, m := range table {
		out = append(out, Marker{
			Label:    m.Label,
			Position: Vec(m.Position),
			Focus:    Vec(m.Focus),
		})
	}
	return out
}

// DefaultMarkers is the built-in three-point table.
func DefaultMarkers() []Marker {
	return Markers(config.Default().Markers)
}

func Vec(v config.Vec3) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
