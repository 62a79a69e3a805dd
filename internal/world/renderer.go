package world

import (
	"fmt"
	"markerview/internal/assets"
	"markerview/internal/camera"
	"markerview/internal/components"
	"markerview/internal/engine"
	"markerview/internal/logging"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

const (
	VertexShaderPath   = "assets/shaders/lighting.vs"
	FragmentShaderPath = "assets/shaders/lighting.fs"

	// MaxLights must match the array size in lighting.fs.
	MaxLights = 4

	labelFontSize = 16
)

var (
	gradientTop    = rl.NewColor(255, 105, 180, 255) // hot pink
	gradientBottom = rl.NewColor(173, 216, 230, 255) // light blue
)

// Renderer draws the world: the model with the lighting shader, then the
// translucent marker spheres, then marker labels in screen space.
type Renderer struct {
	Shader      rl.Shader
	ShaderReady bool
	LabelColor  rl.Color

	sphere rl.Model
	log    zerolog.Logger
}

func NewRenderer() *Renderer {
	return &Renderer{
		LabelColor: rl.DarkGray,
		log:        logging.Component("renderer"),
	}
}

// Initialize loads the lighting shader and gives every marker node a
// MarkerRenderer sharing one gradient-textured sphere.
func (r *Renderer) Initialize(w *World, m *assets.Manager) {
	if err := r.loadShader(VertexShaderPath, FragmentShaderPath); err != nil {
		r.log.Warn().Err(err).Msg("lighting shader unavailable, using default shader")
	} else {
		r.updateShaderUniforms(w)
	}

	if w.style.LabelColor != "" {
		r.LabelColor = assets.LookupColor(w.style.LabelColor)
	}

	r.sphere = m.Sphere("marker-sphere", w.style.Radius)
	gradient := m.Gradient("marker-gradient", 4, 64, gradientTop, gradientBottom)
	r.sphere.Materials.Maps.Texture = gradient

	for _, n := range w.Markers {
		if engine.GetComponent[*components.MarkerRenderer](n) == nil {
			n.AddComponent(components.NewMarkerRenderer(r.sphere, w.style.Opacity))
		}
	}
}

func (r *Renderer) loadShader(vsPath, fsPath string) error {
	for _, p := range []string{vsPath, fsPath} {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("shader source: %w", err)
		}
	}
	shader := rl.LoadShader(vsPath, fsPath)
	// A failed compile leaves raylib's default shader, which has no light uniforms.
	if shader.ID == 0 || rl.GetShaderLocation(shader, "ambient") < 0 {
		return fmt.Errorf("compile %s/%s failed", vsPath, fsPath)
	}
	r.Shader = shader
	r.ShaderReady = true
	return nil
}

func (r *Renderer) updateShaderUniforms(w *World) {
	if !r.ShaderReady {
		return
	}

	ambientLoc := rl.GetShaderLocation(r.Shader, "ambient")
	ambient := []float32{0, 0, 0, 1}
	if w.Ambient != nil {
		ambient = w.Ambient.GetColorFloat()
	}
	rl.SetShaderValue(r.Shader, ambientLoc, ambient, rl.ShaderUniformVec4)

	count := min(len(w.Lights), MaxLights)
	for i := 0; i < count; i++ {
		l := w.Lights[i]
		dir := l.Direction()

		dirLoc := rl.GetShaderLocation(r.Shader, fmt.Sprintf("lightDir[%d]", i))
		rl.SetShaderValue(r.Shader, dirLoc, []float32{dir.X, dir.Y, dir.Z}, rl.ShaderUniformVec3)

		colorLoc := rl.GetShaderLocation(r.Shader, fmt.Sprintf("lightColor[%d]", i))
		rl.SetShaderValue(r.Shader, colorLoc, l.GetColorFloat(), rl.ShaderUniformVec4)
	}

	countLoc := rl.GetShaderLocation(r.Shader, "lightCount")
	rl.SetShaderValue(r.Shader, countLoc, []float32{float32(count)}, rl.ShaderUniformFloat)

	r.log.Debug().Int("lights", count).Msg("lighting uniforms set")
}

// PrepareModel applies the lighting shader to a freshly attached model node.
func (r *Renderer) PrepareModel(n *engine.Node) {
	if !r.ShaderReady {
		return
	}
	if mr := engine.GetComponent[*components.ModelRenderer](n); mr != nil {
		mr.SetShader(r.Shader)
	}
}

// Draw renders the 3D pass. It must run between BeginMode3D and EndMode3D.
func (r *Renderer) Draw(w *World) {
	if w.Model != nil {
		if mr := engine.GetComponent[*components.ModelRenderer](w.Model); mr != nil {
			mr.Draw()
		}
	}

	// Markers are see-through and must not hide each other.
	rl.DisableDepthMask()
	for _, n := range w.Markers {
		if mr := engine.GetComponent[*components.MarkerRenderer](n); mr != nil {
			mr.Draw()
		}
	}
	rl.EnableDepthMask()
}

// DrawLabels writes each marker's label just above its projected position.
func (r *Renderer) DrawLabels(w *World, cam *camera.Camera, width, height int) {
	for _, n := range w.Markers {
		m := engine.GetComponent[*components.Marker](n)
		if m == nil || !n.Active {
			continue
		}
		p, ok := cam.WorldToScreen(m.Position(), width, height)
		if !ok {
			continue
		}
		textW := rl.MeasureText(m.Label, labelFontSize)
		c := r.LabelColor
		if m.Hovered {
			c = rl.Black
		}
		rl.DrawText(m.Label, int32(p.X)-textW/2, int32(p.Y)-labelFontSize-12, labelFontSize, c)
	}
}

func (r *Renderer) Unload() {
	if r.ShaderReady {
		rl.UnloadShader(r.Shader)
		r.ShaderReady = false
	}
}
