package viewer

import (
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestHUD_Bounds(t *testing.T) {
	h := NewHUD(true, 180, []string{"Point 1", "Point 2", "Point 3"})
	b := h.Bounds()

	assert.Equal(t, float32(hudMargin), b.X)
	assert.Equal(t, float32(180), b.Width)
	assert.Equal(t, float32(hudTitleH+4*hudRowH+2*hudPadding), b.Height)

	last := h.buttonBounds(3)
	assert.LessOrEqual(t, last.Y+last.Height, b.Y+b.Height, "reset button fits in the panel")
}

func TestHUD_Contains(t *testing.T) {
	h := NewHUD(true, 180, []string{"Point 1"})

	assert.True(t, h.Contains(rl.Vector2{X: 20, Y: 20}))
	assert.False(t, h.Contains(rl.Vector2{X: 400, Y: 20}))
	assert.False(t, h.Contains(rl.Vector2{X: 20, Y: 500}))

	h.Enabled = false
	assert.False(t, h.Contains(rl.Vector2{X: 20, Y: 20}), "a hidden HUD never swallows clicks")
}

func TestDebugLines(t *testing.T) {
	v := newViewer(t, nil)

	lines := DebugLines(v, 60)
	text := strings.Join(lines, "\n")
	assert.Contains(t, text, "FPS: 60")
	assert.Contains(t, text, "Viewport: 1280x720")
	assert.Contains(t, text, "Controls: orbit")
	assert.Contains(t, text, "Scene: 3 markers, 5 lights")
	assert.NotContains(t, text, "Hover:")

	v.Dispatch(FlyToMarker{Label: "Point 1"})
	v.Tick(frame)
	text = strings.Join(DebugLines(v, 60), "\n")
	assert.Contains(t, text, "Flight:")

	tickUntilLanded(t, v)
	text = strings.Join(DebugLines(v, 60), "\n")
	assert.Contains(t, text, "Controls: released")
}

func TestViewport(t *testing.T) {
	assert.InDelta(t, 16.0/9.0, Viewport{Width: 1920, Height: 1080}.Aspect(), 1e-6)
	assert.Equal(t, float32(1), Viewport{}.Aspect())
	assert.True(t, Viewport{Width: 1, Height: 1}.Valid())
	assert.False(t, Viewport{Width: 0, Height: 1}.Valid())
}
