package components

import (
	"markerview/internal/engine"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestSphereCollider_CenterAndRadius(t *testing.T) {
	parent := engine.NewNode("Model")
	parent.Transform.Position = rl.Vector3{X: 1, Y: 0, Z: 0}
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 3, Z: 1}

	n := engine.NewNode("Point 1")
	n.Transform.Position = rl.Vector3{X: 0, Y: 1, Z: 0}
	parent.AddChild(n)

	c := NewSphereCollider(0.1)
	c.Offset = rl.Vector3{X: 0, Y: 0, Z: 0.5}
	n.AddComponent(c)

	assert.Equal(t, rl.Vector3{X: 1, Y: 3, Z: 0.5}, c.GetCenter())
	assert.InDelta(t, 0.3, c.GetWorldRadius(), 1e-6)
}

func TestMarker_Position(t *testing.T) {
	n := engine.NewNode("Point 2")
	n.Transform.Position = rl.Vector3{X: 2, Y: 1.4, Z: 1}
	m := NewMarker("Point 2", rl.Vector3{X: 2.7, Y: 0.4, Z: 0.2})
	n.AddComponent(m)

	assert.Equal(t, rl.Vector3{X: 2, Y: 1.4, Z: 1}, m.Position())
	assert.Equal(t, "Point 2", m.Label)
}

func TestMarkerRenderer_TintFollowsHover(t *testing.T) {
	n := engine.NewNode("Point 3")
	m := NewMarker("Point 3", rl.Vector3{})
	r := NewMarkerRenderer(rl.Model{}, 0.6)
	n.AddComponent(m)
	n.AddComponent(r)

	assert.Equal(t, rl.Fade(rl.White, 0.6), r.Tint())
	m.Hovered = true
	assert.Equal(t, rl.Fade(rl.White, 0.95), r.Tint())
}

func TestDirectionalLight_Direction(t *testing.T) {
	n := engine.NewNode("Sun")
	n.Transform.Position = rl.Vector3{X: 5, Y: 10, Z: 5}
	l := NewDirectionalLight(rl.White, 0.5)
	n.AddComponent(l)

	d := l.Direction()
	assert.InDelta(t, 1, rl.Vector3Length(d), 1e-5)
	assert.Less(t, d.Y, float32(0), "lights above the scene point down")
	assert.Less(t, d.X, float32(0))
	assert.Less(t, d.Z, float32(0))

	assert.Equal(t, []float32{0.5, 0.5, 0.5, 1}, l.GetColorFloat())
}

func TestAmbientLight_ColorFloat(t *testing.T) {
	l := NewAmbientLight(rl.NewColor(255, 0, 51, 255), 0.5)
	got := l.GetColorFloat()
	assert.InDelta(t, 0.5, got[0], 1e-6)
	assert.InDelta(t, 0, got[1], 1e-6)
	assert.InDelta(t, 0.1, got[2], 1e-6)
	assert.Equal(t, float32(1), got[3])
}
