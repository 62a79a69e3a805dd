package world

import (
	"fmt"
	"markerview/internal/components"
	"markerview/internal/config"
	"markerview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Root node names. Lights and markers hang below their group node at the
// origin; the loaded model is a root of its own.
const (
	ModelNodeName   = "Model"
	LightsNodeName  = "Lights"
	MarkersNodeName = "Markers"
)

// World holds the scene graph: lights, markers and, once loaded, the model.
type World struct {
	Scene   *engine.Scene
	Ambient *components.AmbientLight
	Lights  []*components.DirectionalLight
	Markers []*engine.Node
	Model   *engine.Node

	markerTable []Marker
	style       config.MarkerStyleConfig
	lights      config.LightsConfig
}

func New(markers []Marker, style config.MarkerStyleConfig, lights config.LightsConfig) *World {
	return &World{
		Scene:       engine.NewScene("Main"),
		markerTable: markers,
		style:       style,
		lights:      lights,
	}
}

// Initialize builds the light and marker nodes. It does not touch the GPU;
// the Renderer attaches drawables afterwards.
func (w *World) Initialize() {
	w.createLights()
	w.createMarkers()
	w.Scene.Start()
}

func (w *World) createLights() {
	group := engine.NewNode(LightsNodeName)
	w.Scene.Add(group)

	ambient := engine.NewNode("AmbientLight")
	ambient.Tags = append(ambient.Tags, components.LightTag)
	w.Ambient = components.NewAmbientLight(rl.White, w.lights.AmbientIntensity)
	ambient.AddComponent(w.Ambient)
	group.AddChild(ambient)

	for i, pos := range w.lights.Directional {
		n := engine.NewNode(fmt.Sprintf("DirectionalLight_%d", i))
		n.Tags = append(n.Tags, components.LightTag)
		n.Transform.Position = Vec(pos)

		light := components.NewDirectionalLight(rl.White, w.lights.DirectionalIntensity)
		n.AddComponent(light)
		w.Lights = append(w.Lights, light)

		group.AddChild(n)
	}
}

func (w *World) createMarkers() {
	group := engine.NewNode(MarkersNodeName)
	w.Scene.Add(group)

	for _, m := range w.markerTable {
		n := engine.NewNode(m.Label)
		n.Tags = append(n.Tags, components.MarkerTag)
		n.Transform.Position = m.Position

		n.AddComponent(components.NewMarker(m.Label, m.Focus))
		n.AddComponent(components.NewSphereCollider(w.style.Radius))

		w.Markers = append(w.Markers, n)
		group.AddChild(n)
	}
}

// Marker finds a marker by label.
func (w *World) Marker(label string) *components.Marker {
	n := w.Scene.FindByName(label)
	if n == nil || !n.HasTag(components.MarkerTag) {
		return nil
	}
	return engine.GetComponent[*components.Marker](n)
}

// SetHovered flags the marker on node as hovered and clears the others. A
// nil node clears all. It reports whether anything changed.
func (w *World) SetHovered(node *engine.Node) bool {
	changed := false
	for _, n := range w.Markers {
		m := engine.GetComponent[*components.Marker](n)
		if m == nil {
			continue
		}
		hovered := n == node
		if m.Hovered != hovered {
			m.Hovered = hovered
			changed = true
		}
	}
	return changed
}

// AttachModel adds the uploaded model at the origin, replacing an earlier one.
func (w *World) AttachModel(model rl.Model, path string) *engine.Node {
	if w.Model != nil {
		w.Scene.Remove(w.Model)
	}
	n := engine.NewNode(ModelNodeName)
	n.AddComponent(components.NewModelRenderer(model, path))
	w.Scene.Add(n)
	n.Start()
	w.Model = n
	return n
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}
