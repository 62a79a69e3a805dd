package viewer

import (
	"fmt"
	"markerview/internal/assets"
	"markerview/internal/camera"
	"markerview/internal/components"
	"markerview/internal/config"
	"markerview/internal/engine"
	"markerview/internal/logging"
	"markerview/internal/physics"
	"markerview/internal/tween"
	"markerview/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// ModelUploader turns a validated model file into a GPU model. It runs on
// the loop goroutine.
type ModelUploader interface {
	LoadModel(path string) (rl.Model, error)
}

// Viewer is the complete interactive state: camera, controls, the running
// flight and the world. Everything here is owned by the loop goroutine.
type Viewer struct {
	Camera   *camera.Camera
	Controls *camera.OrbitControls
	FlyTo    *camera.FlyTo
	World    *world.World
	Viewport Viewport
	Debug    bool

	// Hovered is the marker node under the pointer, if any.
	Hovered *engine.Node

	FlightStarted  engine.Event[camera.Flight]
	FlightFinished engine.Event[camera.Flight]
	ModelLoaded    engine.Event[*engine.Node]

	home     rl.Vector3
	pointer  rl.Vector2
	pointed  bool
	uploader ModelUploader
	assets   <-chan assets.Result
	log      zerolog.Logger
}

// New builds the scene, camera and controls from cfg. uploader may be nil,
// in which case every loaded asset is rejected.
func New(cfg *config.Config, uploader ModelUploader) (*Viewer, error) {
	ease, err := tween.Ease(cfg.FlyTo.Ease)
	if err != nil {
		return nil, fmt.Errorf("flyTo.ease: %w", err)
	}

	vp := Viewport{Width: cfg.Window.Width, Height: cfg.Window.Height}

	cam := camera.New(cfg.Camera.FOV, vp.Aspect(), cfg.Camera.Near, cfg.Camera.Far)
	cam.Position = world.Vec(cfg.Camera.Position)

	controls := camera.NewOrbitControls(cam)
	controls.Target = world.Vec(cfg.Controls.Target)
	controls.EnableDamping = cfg.Controls.EnableDamping
	controls.DampingFactor = cfg.Controls.DampingFactor
	controls.EnablePan = cfg.Controls.EnablePan
	controls.RotateSpeed = cfg.Controls.RotateSpeed
	controls.ZoomSpeed = cfg.Controls.ZoomSpeed
	controls.MinDistance = cfg.Controls.MinDistance
	controls.MaxDistance = cfg.Controls.MaxDistance
	controls.MinPolarAngle = cfg.Controls.MinPolarAngle
	controls.MaxPolarAngle = cfg.Controls.MaxPolarAngle
	cam.LookAt(controls.Target)
	controls.Update()

	w := world.New(world.Markers(cfg.Markers), cfg.MarkerStyle, cfg.Lights)
	w.Initialize()

	v := &Viewer{
		Camera:   cam,
		Controls: controls,
		FlyTo:    camera.NewFlyTo(cam, cfg.FlyTo.Duration, world.Vec(cfg.FlyTo.Offset), ease),
		World:    w,
		Viewport: vp,
		home:     cam.Position,
		uploader: uploader,
		log:      logging.Component("viewer"),
	}
	v.FlyTo.OnLand = v.land

	v.log.Info().
		Int("markers", len(w.Markers)).
		Int("lights", len(w.Lights)).
		Str("viewport", fmt.Sprintf("%dx%d", vp.Width, vp.Height)).
		Msg("viewer ready")
	return v, nil
}

// Watch makes Tick drain results into AssetLoaded commands.
func (v *Viewer) Watch(results <-chan assets.Result) {
	v.assets = results
}

// Dispatch applies one command. It is the only mutator of viewer state.
func (v *Viewer) Dispatch(cmd Command) {
	switch c := cmd.(type) {
	case Click:
		v.handleClick(c.X, c.Y)
	case PointerMove:
		v.handlePointerMove(c.X, c.Y)
	case Drag:
		if v.FlyTo.Active() {
			return
		}
		v.Controls.Rotate(c.DX, c.DY, v.Viewport.Height)
	case Pan:
		if v.FlyTo.Active() {
			return
		}
		v.Controls.Pan(c.DX, c.DY, v.Viewport.Height)
	case Zoom:
		if v.FlyTo.Active() {
			return
		}
		v.Controls.Zoom(c.Wheel)
	case Resize:
		v.handleResize(c.Width, c.Height)
	case AssetLoaded:
		v.handleAssetLoaded(c.Result)
	case FlyToMarker:
		m := v.World.Marker(c.Label)
		if m == nil {
			v.log.Warn().Str("label", c.Label).Msg("no such marker")
			return
		}
		v.flyToMarker(m)
	case ResetView:
		v.startFlight(v.FlyTo.To(v.home, v.Controls.Target))
	case ToggleDebug:
		v.Debug = !v.Debug
	default:
		v.log.Warn().Str("command", fmt.Sprintf("%T", cmd)).Msg("unknown command")
	}
}

// Tick advances the viewer by dt seconds: pending asset results are
// dispatched, then either the flight or the orbit controls move the camera.
func (v *Viewer) Tick(dt float32) {
	v.pollAssets()

	if !v.FlyTo.Update(dt) {
		v.Controls.Update()
	}

	v.World.Update(dt)
}

// land runs when a flight reaches its end. The camera moved under a still
// pointer, so hover is recomputed from the last known pointer position.
func (v *Viewer) land(f camera.Flight) {
	v.log.Debug().
		Interface("end", f.End).
		Interface("lookAt", f.LookAt).
		Msg("flight finished")
	if v.pointed {
		v.hover(v.pointer.X, v.pointer.Y)
	}
	v.FlightFinished.Invoke(f)
}

func (v *Viewer) pollAssets() {
	if v.assets == nil {
		return
	}
	select {
	case res, ok := <-v.assets:
		v.assets = nil
		if ok {
			v.Dispatch(AssetLoaded{Result: res})
		}
	default:
	}
}

// Pick returns the nearest marker node under viewport pixel (x, y).
func (v *Viewer) Pick(x, y float32) (*engine.Node, bool) {
	if !v.Viewport.Valid() {
		return nil, false
	}
	ray := v.Camera.ScreenRay(x, y, v.Viewport.Width, v.Viewport.Height)
	hit, ok := physics.Raycast(v.World.Scene, ray, components.MarkerTag, v.Camera.Far)
	if !ok {
		return nil, false
	}
	return hit.Node, true
}

func (v *Viewer) handleClick(x, y float32) {
	v.log.Debug().Float32("x", x).Float32("y", y).Msg("pointer click")
	v.pointer, v.pointed = rl.Vector2{X: x, Y: y}, true

	node, ok := v.Pick(x, y)
	if !ok {
		return
	}
	if m := engine.GetComponent[*components.Marker](node); m != nil {
		v.flyToMarker(m)
	}
}

func (v *Viewer) handlePointerMove(x, y float32) {
	v.pointer, v.pointed = rl.Vector2{X: x, Y: y}, true
	v.hover(x, y)
}

func (v *Viewer) hover(x, y float32) {
	node, _ := v.Pick(x, y)
	v.World.SetHovered(node)
	v.Hovered = node
}

func (v *Viewer) flyToMarker(m *components.Marker) {
	f := v.FlyTo.ToFocus(m.Focus)
	v.log.Info().Str("marker", m.Label).Interface("end", f.End).Msg("flying to marker")
	v.startFlight(f)
}

// startFlight hands the camera to the running flight. The controls stay
// released after it lands until the next drag or wheel.
func (v *Viewer) startFlight(f camera.Flight) {
	v.Controls.Release()
	v.FlightStarted.Invoke(f)
}

func (v *Viewer) handleResize(width, height int) {
	if !v.Camera.SetViewport(width, height) {
		v.log.Debug().Int("width", width).Int("height", height).Msg("ignoring degenerate resize")
		return
	}
	v.Viewport = Viewport{Width: width, Height: height}
	v.log.Debug().Int("width", width).Int("height", height).Float32("aspect", v.Camera.Aspect).Msg("viewport resized")
}

func (v *Viewer) handleAssetLoaded(res assets.Result) {
	if res.Err != nil {
		v.log.Error().Err(res.Err).Str("path", res.Path).Msg("failed to load model")
		return
	}
	if v.uploader == nil {
		v.log.Error().Str("path", res.Path).Msg("no model uploader configured")
		return
	}
	model, err := v.uploader.LoadModel(res.Path)
	if err != nil {
		v.log.Error().Err(err).Str("path", res.Path).Msg("failed to upload model")
		return
	}

	node := v.World.AttachModel(model, res.Path)
	v.Controls.Target = node.WorldPosition()
	v.ModelLoaded.Invoke(node)

	v.log.Info().
		Str("path", res.Path).
		Int("meshes", res.Meshes).
		Dur("read", res.Duration).
		Msg("model loaded")
}

// Close drops listeners and any pending asset result.
func (v *Viewer) Close() {
	v.assets = nil
	v.FlightStarted.RemoveAllListeners()
	v.FlightFinished.RemoveAllListeners()
	v.ModelLoaded.RemoveAllListeners()
	v.log.Debug().Msg("viewer closed")
}
