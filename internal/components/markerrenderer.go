package components

import (
	"markerview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MarkerRenderer draws a marker as a translucent sphere. The sphere model is
// shared between all markers and owned by the world renderer.
type MarkerRenderer struct {
	engine.BaseComponent
	Model        rl.Model
	Opacity      float32
	HoverOpacity float32
}

func NewMarkerRenderer(model rl.Model, opacity float32) *MarkerRenderer {
	return &MarkerRenderer{
		Model:        model,
		Opacity:      opacity,
		HoverOpacity: 0.95,
	}
}

// Tint is the color the sphere is drawn with this frame.
func (r *MarkerRenderer) Tint() rl.Color {
	alpha := r.Opacity
	if m := engine.GetComponent[*Marker](r.Node()); m != nil && m.Hovered {
		alpha = r.HoverOpacity
	}
	return rl.Fade(rl.White, alpha)
}

func (r *MarkerRenderer) Draw() {
	n := r.Node()
	if n == nil || !n.Active {
		return
	}
	rl.DrawModel(r.Model, n.WorldPosition(), n.WorldScale().X, r.Tint())
}
