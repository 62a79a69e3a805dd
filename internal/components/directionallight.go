package components

import (
	"markerview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LightTag marks ambient and directional light nodes.
const LightTag = "light"

// DirectionalLight shines from the node's position towards Target.
type DirectionalLight struct {
	engine.BaseComponent
	Target    rl.Vector3
	Color     rl.Color
	Intensity float32
}

func NewDirectionalLight(color rl.Color, intensity float32) *DirectionalLight {
	return &DirectionalLight{
		Color:     color,
		Intensity: intensity,
	}
}

// Direction is the unit vector the light travels along.
func (l *DirectionalLight) Direction() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3Subtract(l.Target, l.Node().WorldPosition()))
}

func (l *DirectionalLight) GetColorFloat() []float32 {
	return colorFloat(l.Color, l.Intensity)
}

// AmbientLight lights every surface equally.
type AmbientLight struct {
	engine.BaseComponent
	Color     rl.Color
	Intensity float32
}

func NewAmbientLight(color rl.Color, intensity float32) *AmbientLight {
	return &AmbientLight{
		Color:     color,
		Intensity: intensity,
	}
}

func (l *AmbientLight) GetColorFloat() []float32 {
	return colorFloat(l.Color, l.Intensity)
}

func colorFloat(c rl.Color, intensity float32) []float32 {
	return []float32{
		float32(c.R) / 255.0 * intensity,
		float32(c.G) / 255.0 * intensity,
		float32(c.B) / 255.0 * intensity,
		1.0,
	}
}
