package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCamera(width, height int) *Camera {
	c := New(75, float32(width)/float32(height), 0.1, 1000)
	c.Position = rl.Vector3{X: 0, Y: 1, Z: 5}
	c.LookAt(rl.Vector3{X: 0, Y: 1, Z: 0})
	return c
}

func TestSetViewport_AspectMatchesSize(t *testing.T) {
	c := newTestCamera(800, 600)
	sizes := [][2]int{{800, 600}, {1920, 1080}, {1, 1000}, {3000, 7}, {1024, 768}}

	for _, s := range sizes {
		require.True(t, c.SetViewport(s[0], s[1]))
		want := float32(s[0]) / float32(s[1])
		assert.Equal(t, want, c.Aspect)
		// The projection's x/y scale ratio encodes the aspect.
		assert.InDelta(t, want, c.Projection.M5/c.Projection.M0, 1e-3*float64(want))
	}
}

func TestSetViewport_IgnoresDegenerateSizes(t *testing.T) {
	c := newTestCamera(800, 600)
	before := c.Projection

	assert.False(t, c.SetViewport(0, 600))
	assert.False(t, c.SetViewport(800, -1))
	assert.Equal(t, float32(800)/600, c.Aspect)
	assert.Equal(t, before, c.Projection)
}

func TestScreenRay_CenterLooksForward(t *testing.T) {
	c := newTestCamera(800, 600)
	ray := c.ScreenRay(400, 300, 800, 600)

	assert.Equal(t, c.Position, ray.Position)
	assert.InDelta(t, 0, ray.Direction.X, 1e-5)
	assert.InDelta(t, 0, ray.Direction.Y, 1e-5)
	assert.InDelta(t, -1, ray.Direction.Z, 1e-5)
}

func TestScreenRay_CornersSpanFieldOfView(t *testing.T) {
	c := newTestCamera(800, 600)

	top := c.ScreenRay(400, 0, 800, 600)
	// Half the vertical FOV above the view axis.
	angle := rl.Vector3Angle(top.Direction, rl.Vector3{X: 0, Y: 0, Z: -1})
	assert.InDelta(t, 37.5*rl.Deg2rad, angle, 1e-3)
	assert.Greater(t, top.Direction.Y, float32(0))

	left := c.ScreenRay(0, 300, 800, 600)
	assert.Less(t, left.Direction.X, float32(0))
}

func TestWorldToScreen_RoundTrip(t *testing.T) {
	c := newTestCamera(1280, 720)
	points := []rl.Vector3{
		{X: -2, Y: 0.5, Z: 0},
		{X: 2, Y: 1.4, Z: 1},
		{X: 1.4, Y: 1.4, Z: -0.82},
	}

	for _, p := range points {
		px, ok := c.WorldToScreen(p, 1280, 720)
		require.True(t, ok)
		ray := c.ScreenRay(px.X, px.Y, 1280, 720)
		toPoint := rl.Vector3Normalize(rl.Vector3Subtract(p, c.Position))
		assert.InDelta(t, 1, rl.Vector3DotProduct(ray.Direction, toPoint), 1e-5)
	}
}

func TestWorldToScreen_BehindCamera(t *testing.T) {
	c := newTestCamera(800, 600)
	_, ok := c.WorldToScreen(rl.Vector3{X: 0, Y: 1, Z: 10}, 800, 600)
	assert.False(t, ok)
}

func TestRaylib(t *testing.T) {
	c := newTestCamera(800, 600)
	rc := c.Raylib()
	assert.Equal(t, c.Position, rc.Position)
	assert.Equal(t, c.Target, rc.Target)
	assert.Equal(t, float32(75), rc.Fovy)
	assert.Equal(t, rl.CameraPerspective, rc.Projection)
}
