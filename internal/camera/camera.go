package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera is a perspective camera that keeps its own look-at point, aspect
// ratio and projection matrix so picking can run without a window.
type Camera struct {
	Position rl.Vector3
	Target   rl.Vector3 // look-at point
	Up       rl.Vector3
	Fovy     float32 // vertical field of view in degrees
	Aspect   float32
	Near     float32
	Far      float32

	Projection rl.Matrix
}

func New(fovy, aspect, near, far float32) *Camera {
	c := &Camera{
		Up:     rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:   fovy,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
	c.UpdateProjectionMatrix()
	return c
}

// LookAt re-aims the camera without moving it.
func (c *Camera) LookAt(p rl.Vector3) {
	c.Target = p
}

// SetViewport sets the aspect ratio from a pixel size and refreshes the
// projection. Non-positive sizes are ignored.
func (c *Camera) SetViewport(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	c.Aspect = float32(width) / float32(height)
	c.UpdateProjectionMatrix()
	return true
}

func (c *Camera) UpdateProjectionMatrix() {
	c.Projection = rl.MatrixPerspective(c.Fovy*rl.Deg2rad, c.Aspect, c.Near, c.Far)
}

func (c *Camera) View() rl.Matrix {
	return rl.MatrixLookAt(c.Position, c.Target, c.Up)
}

// Raylib converts to the struct BeginMode3D expects.
func (c *Camera) Raylib() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.Target,
		Up:         c.Up,
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// basis returns the camera's forward, right and true-up unit vectors.
func (c *Camera) basis() (forward, right, up rl.Vector3) {
	forward = rl.Vector3Normalize(rl.Vector3Subtract(c.Target, c.Position))
	right = rl.Vector3Normalize(rl.Vector3CrossProduct(forward, c.Up))
	up = rl.Vector3CrossProduct(right, forward)
	return
}

// ScreenRay builds the world-space picking ray through pixel (x, y) of a
// width×height viewport. The ray starts at the camera position.
func (c *Camera) ScreenRay(x, y float32, width, height int) rl.Ray {
	ndcX := 2*x/float32(width) - 1
	ndcY := 1 - 2*y/float32(height)

	forward, right, up := c.basis()
	tanHalf := math32.Tan(c.Fovy * rl.Deg2rad / 2)

	dir := rl.Vector3Add(forward, rl.Vector3Add(
		rl.Vector3Scale(right, ndcX*tanHalf*c.Aspect),
		rl.Vector3Scale(up, ndcY*tanHalf),
	))
	return rl.Ray{Position: c.Position, Direction: rl.Vector3Normalize(dir)}
}

// WorldToScreen projects p into viewport pixels. ok is false when p is
// behind the camera.
func (c *Camera) WorldToScreen(p rl.Vector3, width, height int) (screen rl.Vector2, ok bool) {
	forward, right, up := c.basis()
	v := rl.Vector3Subtract(p, c.Position)
	depth := rl.Vector3DotProduct(v, forward)
	if depth <= c.Near {
		return rl.Vector2{}, false
	}
	tanHalf := math32.Tan(c.Fovy * rl.Deg2rad / 2)
	ndcX := rl.Vector3DotProduct(v, right) / (depth * tanHalf * c.Aspect)
	ndcY := rl.Vector3DotProduct(v, up) / (depth * tanHalf)
	return rl.Vector2{
		X: (ndcX + 1) / 2 * float32(width),
		Y: (1 - ndcY) / 2 * float32(height),
	}, true
}
