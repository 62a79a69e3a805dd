package assets

import (
	"fmt"
	"markerview/internal/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// Manager owns every GPU resource uploaded through it and frees them all in
// Unload. All methods must run on the goroutine that owns the window.
type Manager struct {
	models   map[string]rl.Model
	textures map[string]rl.Texture2D
	log      zerolog.Logger
}

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
}

// LookupColor returns a raylib color from a name string, white if unknown.
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

func NewManager() *Manager {
	return &Manager{
		models:   make(map[string]rl.Model),
		textures: make(map[string]rl.Texture2D),
		log:      logging.Component("assets"),
	}
}

// LoadModel uploads the model at path, or returns the cached one. A file
// raylib parses into zero meshes is freed and reported as ErrEmptyModel.
func (m *Manager) LoadModel(path string) (rl.Model, error) {
	if model, ok := m.models[path]; ok {
		return model, nil
	}

	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		rl.UnloadModel(model)
		return rl.Model{}, fmt.Errorf("%s: %w", path, ErrEmptyModel)
	}

	m.models[path] = model
	m.log.Info().
		Str("path", path).
		Int32("meshes", model.MeshCount).
		Int32("materials", model.MaterialCount).
		Msg("model uploaded")
	return model, nil
}

// GradientImage generates a width×height image fading from top to bottom.
// The caller owns the returned image.
func GradientImage(width, height int, top, bottom rl.Color) *rl.Image {
	return rl.GenImageGradientLinear(width, height, 0, top, bottom)
}

// Gradient uploads a vertical gradient texture under name, reusing an
// earlier upload.
func (m *Manager) Gradient(name string, width, height int, top, bottom rl.Color) rl.Texture2D {
	if tex, ok := m.textures[name]; ok {
		return tex
	}
	img := GradientImage(width, height, top, bottom)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	m.textures[name] = tex
	return tex
}

// Sphere builds a UV sphere model that is unloaded with the manager.
func (m *Manager) Sphere(name string, radius float32) rl.Model {
	if model, ok := m.models[name]; ok {
		return model
	}
	model := rl.LoadModelFromMesh(rl.GenMeshSphere(radius, 16, 16))
	m.models[name] = model
	return model
}

func (m *Manager) Unload() {
	for path, model := range m.models {
		rl.UnloadModel(model)
		delete(m.models, path)
	}
	for name, tex := range m.textures {
		rl.UnloadTexture(tex)
		delete(m.textures, name)
	}
}
