package viewer

import rl "github.com/gen2brain/raylib-go/raylib"

// Input turns raylib's polled input state into commands. Presses that start
// over the HUD belong to the HUD for the whole drag.
type Input struct {
	hud       *HUD
	lastMouse rl.Vector2
	hudDrag   bool
	hudPan    bool
}

func NewInput(hud *HUD) *Input {
	return &Input{hud: hud, lastMouse: rl.Vector2{X: -1, Y: -1}}
}

// Poll reads this frame's window and pointer state.
func (in *Input) Poll() []Command {
	var cmds []Command

	if rl.IsWindowResized() {
		cmds = append(cmds, Resize{Width: rl.GetScreenWidth(), Height: rl.GetScreenHeight()})
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		cmds = append(cmds, ToggleDebug{})
	}

	mouse := rl.GetMousePosition()
	overHUD := in.hud != nil && in.hud.Contains(mouse)

	if mouse != in.lastMouse {
		in.lastMouse = mouse
		if !overHUD {
			cmds = append(cmds, PointerMove{X: mouse.X, Y: mouse.Y})
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		in.hudDrag = overHUD
		if !overHUD {
			cmds = append(cmds, Click{X: mouse.X, Y: mouse.Y})
		}
	} else if rl.IsMouseButtonDown(rl.MouseLeftButton) && !in.hudDrag {
		if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
			cmds = append(cmds, Drag{DX: d.X, DY: d.Y})
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		in.hudPan = overHUD
	} else if rl.IsMouseButtonDown(rl.MouseRightButton) && !in.hudPan {
		if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
			cmds = append(cmds, Pan{DX: d.X, DY: d.Y})
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !overHUD {
		cmds = append(cmds, Zoom{Wheel: wheel})
	}

	return cmds
}
