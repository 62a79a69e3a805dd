package camera

import (
	"markerview/internal/tween"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Flight describes one fly-to: where the camera ends up and what it keeps
// looking at on the way.
type Flight struct {
	End    rl.Vector3
	LookAt rl.Vector3
}

// FlyTo tweens the camera position and re-aims the camera at the flight's
// look-at point after every step. Starting a flight while another is in the
// air replaces it; the new one departs from wherever the camera is.
type FlyTo struct {
	Duration time.Duration
	Offset   rl.Vector3
	Ease     tween.EaseFunc

	// OnLand runs once when a flight reaches its end. Replaced flights never land.
	OnLand func(Flight)

	cam    *Camera
	tw     *tween.Tween
	flight Flight
}

func NewFlyTo(cam *Camera, duration time.Duration, offset rl.Vector3, ease tween.EaseFunc) *FlyTo {
	return &FlyTo{
		Duration: duration,
		Offset:   offset,
		Ease:     ease,
		cam:      cam,
	}
}

// ToFocus flies to focus+Offset while looking at focus.
func (f *FlyTo) ToFocus(focus rl.Vector3) Flight {
	return f.To(rl.Vector3Add(focus, f.Offset), focus)
}

// To starts a flight ending at end while looking at lookAt.
func (f *FlyTo) To(end, lookAt rl.Vector3) Flight {
	flight := Flight{End: end, LookAt: lookAt}
	f.flight = flight
	tw := tween.New(f.cam.Position, end, f.Duration, f.Ease)
	tw.OnUpdate = func(v rl.Vector3) {
		f.cam.Position = v
		f.cam.LookAt(flight.LookAt)
	}
	tw.OnComplete = func() {
		// OnLand may start the next flight.
		if f.tw == tw {
			f.tw = nil
		}
		if f.OnLand != nil {
			f.OnLand(flight)
		}
	}
	f.tw = tw
	return flight
}

// Update advances the running flight by dt seconds. It reports whether a
// flight was in progress at the start of the call.
func (f *FlyTo) Update(dt float32) bool {
	if f.tw == nil {
		return false
	}
	f.tw.Step(dt)
	return true
}

func (f *FlyTo) Active() bool {
	return f.tw != nil
}

// Current returns the last flight started, running or not.
func (f *FlyTo) Current() Flight {
	return f.flight
}

// Progress of the running flight in [0, 1]; 1 when idle.
func (f *FlyTo) Progress() float32 {
	if f.tw == nil {
		return 1
	}
	return f.tw.Progress()
}
