package camera

import (
	"math"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const epsilon = 1e-6

// OrbitControls orbits a Camera around Target with damped rotation and
// clamped zoom. Angles follow the usual spherical convention: Phi is the
// polar angle from +Y, Theta the azimuth around +Y measured from +Z.
type OrbitControls struct {
	Camera *Camera
	Target rl.Vector3

	EnableDamping bool
	DampingFactor float32
	EnablePan     bool
	RotateSpeed   float32
	ZoomSpeed     float32

	MinDistance   float32
	MaxDistance   float32
	MinPolarAngle float32
	MaxPolarAngle float32

	deltaTheta float32
	deltaPhi   float32
	scale      float32

	// engaged is false while something else (a fly-to) owns the camera.
	engaged bool
}

func NewOrbitControls(cam *Camera) *OrbitControls {
	return &OrbitControls{
		Camera:        cam,
		EnableDamping: false,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		MinDistance:   0,
		MaxDistance:   float32(math.Inf(1)),
		MinPolarAngle: 0,
		MaxPolarAngle: math.Pi,
		scale:         1,
		engaged:       true,
	}
}

// Rotate feeds a pointer drag of (dx, dy) pixels on a viewport of the given
// height. A full-height drag turns the camera by one full revolution.
func (o *OrbitControls) Rotate(dx, dy float32, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	h := float32(viewportHeight)
	o.deltaTheta -= 2 * math.Pi * dx / h * o.RotateSpeed
	o.deltaPhi -= 2 * math.Pi * dy / h * o.RotateSpeed
	o.engage()
}

// Zoom feeds a wheel movement; positive values move towards the target.
func (o *OrbitControls) Zoom(wheel float32) {
	if wheel == 0 {
		return
	}
	step := math32.Pow(0.95, o.ZoomSpeed*math32.Abs(wheel))
	if wheel > 0 {
		o.scale *= step
	} else {
		o.scale /= step
	}
	o.engage()
}

// Pan slides Target and camera together across the view plane so the
// point under the pointer follows it. It does nothing unless EnablePan is set.
func (o *OrbitControls) Pan(dx, dy float32, viewportHeight int) {
	if !o.EnablePan || viewportHeight <= 0 {
		return
	}
	_, right, up := o.Camera.basis()
	dist := rl.Vector3Distance(o.Camera.Position, o.Target)
	perPixel := 2 * dist * math32.Tan(o.Camera.Fovy*rl.Deg2rad/2) / float32(viewportHeight)
	shift := rl.Vector3Add(rl.Vector3Scale(right, -dx*perPixel), rl.Vector3Scale(up, dy*perPixel))
	o.Target = rl.Vector3Add(o.Target, shift)
	o.Camera.Position = rl.Vector3Add(o.Camera.Position, shift)
	o.engage()
}

// Release hands the camera to another driver; pending motion is dropped.
func (o *OrbitControls) Release() {
	o.engaged = false
	o.deltaTheta, o.deltaPhi, o.scale = 0, 0, 1
}

func (o *OrbitControls) Engaged() bool {
	return o.engaged
}

func (o *OrbitControls) engage() {
	o.engaged = true
}

// Spherical returns the camera's current distance, polar and azimuth angles
// relative to Target.
func (o *OrbitControls) Spherical() (radius, phi, theta float32) {
	offset := rl.Vector3Subtract(o.Camera.Position, o.Target)
	radius = rl.Vector3Length(offset)
	if radius == 0 {
		return 0, 0, 0
	}
	theta = math32.Atan2(offset.X, offset.Z)
	phi = math32.Acos(rl.Clamp(offset.Y/radius, -1, 1))
	return
}

// Update applies pending rotation and zoom, clamps the result and aims the
// camera at Target. It returns true when the camera moved. While released it
// leaves the camera untouched.
func (o *OrbitControls) Update() bool {
	if !o.engaged {
		return false
	}
	before := o.Camera.Position

	radius, phi, theta := o.Spherical()

	if o.EnableDamping {
		theta += o.deltaTheta * o.DampingFactor
		phi += o.deltaPhi * o.DampingFactor
	} else {
		theta += o.deltaTheta
		phi += o.deltaPhi
	}

	phi = rl.Clamp(phi, o.MinPolarAngle, o.MaxPolarAngle)
	phi = rl.Clamp(phi, epsilon, math.Pi-epsilon)

	radius = rl.Clamp(radius*o.scale, o.MinDistance, o.MaxDistance)

	sinPhi := math32.Sin(phi) * radius
	offset := rl.Vector3{
		X: sinPhi * math32.Sin(theta),
		Y: math32.Cos(phi) * radius,
		Z: sinPhi * math32.Cos(theta),
	}
	o.Camera.Position = rl.Vector3Add(o.Target, offset)
	o.Camera.LookAt(o.Target)

	if o.EnableDamping {
		o.deltaTheta *= 1 - o.DampingFactor
		o.deltaPhi *= 1 - o.DampingFactor
	} else {
		o.deltaTheta, o.deltaPhi = 0, 0
	}
	o.scale = 1

	return rl.Vector3Distance(before, o.Camera.Position) > 1e-4
}
