package viewer

import (
	"context"
	"fmt"
	"markerview/internal/assets"
	"markerview/internal/config"
	"markerview/internal/logging"
	"markerview/internal/world"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

var colorBackground = rl.NewColor(245, 245, 250, 255)

// App owns the window and runs the single render loop around a Viewer.
type App struct {
	Viewer *Viewer

	cfg      *config.Config
	manager  *assets.Manager
	loader   *assets.Loader
	renderer *world.Renderer
	hud      *HUD
	input    *Input
	pending  []Command
	pointing bool
	log      zerolog.Logger

	// Frame timing (ms) for the debug overlay.
	updateMs float64
	drawMs   float64
}

func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:    cfg,
		loader: assets.NewLoader(),
		log:    logging.Component("app"),
	}
}

// bootstrap opens the window and builds everything that needs a GL context.
func (a *App) bootstrap(ctx context.Context) error {
	var flags uint32
	if a.cfg.Window.Antialias {
		flags |= rl.FlagMsaa4xHint
	}
	if a.cfg.Window.Resizable {
		flags |= rl.FlagWindowResizable
	}
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(a.cfg.Window.Width), int32(a.cfg.Window.Height), a.cfg.Window.Title)
	rl.SetTargetFPS(int32(a.cfg.Window.TargetFPS))

	a.manager = assets.NewManager()

	v, err := New(a.cfg, a.manager)
	if err != nil {
		return err
	}
	a.Viewer = v
	// The framebuffer may differ from the requested size on tiling window managers.
	v.Dispatch(Resize{Width: rl.GetScreenWidth(), Height: rl.GetScreenHeight()})

	a.renderer = world.NewRenderer()
	a.renderer.Initialize(v.World, a.manager)
	v.ModelLoaded.AddListener(a.renderer.PrepareModel)

	labels := make([]string, 0, len(v.World.Markers))
	for _, n := range v.World.Markers {
		labels = append(labels, n.Name)
	}
	a.hud = NewHUD(a.cfg.HUD.Enabled, a.cfg.HUD.Width, labels)
	a.input = NewInput(a.hud)

	v.Watch(a.loader.Load(ctx, a.cfg.Asset.Path))
	return nil
}

// Run blocks until the window is closed or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	loadCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.bootstrap(loadCtx); err != nil {
		rl.CloseWindow()
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer a.teardown()

	a.log.Info().Str("asset", a.cfg.Asset.Path).Msg("render loop started")

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			a.log.Info().Msg("context cancelled, leaving render loop")
			break
		}
		a.Update()
		a.Draw()
	}
	return nil
}

func (a *App) Update() {
	updateStart := time.Now()

	cmds := a.pending
	a.pending = nil
	cmds = append(cmds, a.input.Poll()...)
	for _, cmd := range cmds {
		a.Viewer.Dispatch(cmd)
	}
	a.Viewer.Tick(rl.GetFrameTime())
	a.updateCursor()

	a.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (a *App) updateCursor() {
	pointing := a.Viewer.Hovered != nil
	if pointing == a.pointing {
		return
	}
	a.pointing = pointing
	if pointing {
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

func (a *App) Draw() {
	v := a.Viewer
	drawStart := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(colorBackground)

	rl.BeginMode3D(v.Camera.Raylib())
	// BeginMode3D derives its own projection; keep ours so picking and drawing agree.
	rl.SetMatrixProjection(v.Camera.Projection)
	a.renderer.Draw(v.World)
	rl.EndMode3D()

	a.renderer.DrawLabels(v.World, v.Camera, v.Viewport.Width, v.Viewport.Height)
	a.pending = append(a.pending, a.hud.Draw()...)
	DrawDebug(v)
	if v.Debug {
		rl.DrawText(fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms", a.updateMs, a.drawMs),
			int32(v.Viewport.Width)-320, int32(v.Viewport.Height)-26, 16, colorDebug)
	}

	rl.EndDrawing()
	a.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0
}

func (a *App) teardown() {
	a.Viewer.Close()
	a.renderer.Unload()
	a.manager.Unload()
	rl.CloseWindow()
	a.log.Info().Msg("window closed")
}
