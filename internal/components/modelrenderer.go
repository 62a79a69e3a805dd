package components

import (
	"markerview/internal/engine"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelRenderer draws a model uploaded by the asset loader at its node's
// transform.
type ModelRenderer struct {
	engine.BaseComponent
	Model rl.Model
	Tint  rl.Color
	Path  string
}

func NewModelRenderer(model rl.Model, path string) *ModelRenderer {
	return &ModelRenderer{
		Model: model,
		Tint:  rl.White,
		Path:  path,
	}
}

// SetShader applies shader to every material of the model; glTF scenes
// usually carry more than one.
func (m *ModelRenderer) SetShader(shader rl.Shader) {
	if m.Model.MaterialCount == 0 || m.Model.Materials == nil {
		return
	}
	materials := unsafe.Slice(m.Model.Materials, m.Model.MaterialCount)
	for i := range materials {
		materials[i].Shader = shader
	}
}

func (m *ModelRenderer) Draw() {
	n := m.Node()
	if n == nil || !n.Active {
		return
	}
	scale := n.WorldScale()
	pos := n.WorldPosition()
	m.Model.Transform = rl.MatrixMultiply(
		rl.MatrixScale(scale.X, scale.Y, scale.Z),
		rl.MatrixTranslate(pos.X, pos.Y, pos.Z),
	)
	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, m.Tint)
}
