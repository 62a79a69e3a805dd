package viewer

import (
	"fmt"
	"markerview/internal/components"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudMargin  = 10
	hudPadding = 8
	hudRowH    = 28
	hudTitleH  = 24
)

var (
	colorPanel = rl.NewColor(18, 18, 24, 220)
	colorTitle = rl.NewColor(200, 200, 208, 255)
	colorDebug = rl.NewColor(108, 99, 255, 255)
)

// HUD is the marker panel in the top-left corner. Buttons produce the same
// commands as clicking in the scene.
type HUD struct {
	Enabled bool
	Width   int
	Labels  []string
}

func NewHUD(enabled bool, width int, labels []string) *HUD {
	return &HUD{Enabled: enabled, Width: width, Labels: labels}
}

// Bounds is the panel rectangle in screen pixels: a title row, one button per
// marker and the reset button.
func (h *HUD) Bounds() rl.Rectangle {
	rows := len(h.Labels) + 1
	return rl.Rectangle{
		X:      hudMargin,
		Y:      hudMargin,
		Width:  float32(h.Width),
		Height: float32(hudTitleH + rows*hudRowH + 2*hudPadding),
	}
}

// Contains reports whether p is over the panel, so the press belongs to the HUD.
func (h *HUD) Contains(p rl.Vector2) bool {
	if !h.Enabled {
		return false
	}
	return rl.CheckCollisionPointRec(p, h.Bounds())
}

func (h *HUD) buttonBounds(row int) rl.Rectangle {
	b := h.Bounds()
	return rl.Rectangle{
		X:      b.X + hudPadding,
		Y:      b.Y + hudTitleH + hudPadding + float32(row*hudRowH),
		Width:  b.Width - 2*hudPadding,
		Height: hudRowH - 4,
	}
}

// Draw renders the panel and returns the commands for buttons pressed this frame.
func (h *HUD) Draw() []Command {
	if !h.Enabled {
		return nil
	}
	var cmds []Command

	b := h.Bounds()
	rl.DrawRectangleRec(b, colorPanel)
	rl.DrawText("Markers", int32(b.X)+hudPadding, int32(b.Y)+hudPadding, 16, colorTitle)

	for i, label := range h.Labels {
		if gui.Button(h.buttonBounds(i), label) {
			cmds = append(cmds, FlyToMarker{Label: label})
		}
	}
	if gui.Button(h.buttonBounds(len(h.Labels)), "Reset view") {
		cmds = append(cmds, ResetView{})
	}
	return cmds
}

// DebugLines is the text of the F1 overlay.
func DebugLines(v *Viewer, fps int32) []string {
	cam := v.Camera
	lines := []string{
		fmt.Sprintf("FPS: %d", fps),
		fmt.Sprintf("Viewport: %dx%d (aspect %.3f)", v.Viewport.Width, v.Viewport.Height, cam.Aspect),
		fmt.Sprintf("Camera: (%.2f, %.2f, %.2f)", cam.Position.X, cam.Position.Y, cam.Position.Z),
		fmt.Sprintf("Look-at: (%.2f, %.2f, %.2f)", cam.Target.X, cam.Target.Y, cam.Target.Z),
		fmt.Sprintf("Scene: %d markers, %d lights",
			len(v.World.Scene.FindByTag(components.MarkerTag)),
			len(v.World.Scene.FindByTag(components.LightTag))),
	}
	if v.FlyTo.Active() {
		lines = append(lines, fmt.Sprintf("Flight: %.0f%%", v.FlyTo.Progress()*100))
	} else {
		radius, phi, _ := v.Controls.Spherical()
		state := "released"
		if v.Controls.Engaged() {
			state = "orbit"
		}
		lines = append(lines, fmt.Sprintf("Controls: %s r=%.2f polar=%.1f°", state, radius, phi*rl.Rad2deg))
	}
	if v.Hovered != nil {
		lines = append(lines, "Hover: "+v.Hovered.Name)
	}
	return lines
}

// DrawDebug renders the overlay in the top-right corner.
func DrawDebug(v *Viewer) {
	if !v.Debug {
		return
	}
	x := int32(v.Viewport.Width) - 320
	y := int32(hudMargin)
	for _, line := range DebugLines(v, rl.GetFPS()) {
		rl.DrawText(line, x, y, 16, colorDebug)
		y += 20
	}
}
