package camera

import (
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlyTo() (*Camera, *FlyTo) {
	c := newTestCamera(800, 600)
	return c, NewFlyTo(c, time.Second, rl.Vector3{X: 0, Y: 1, Z: 0.5}, nil)
}

func assertVecNear(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4)
	assert.InDelta(t, want.Y, got.Y, 1e-4)
	assert.InDelta(t, want.Z, got.Z, 1e-4)
}

func TestFlyTo_EndsAtFocusPlusOffsetWithinDuration(t *testing.T) {
	c, f := newTestFlyTo()
	focus := rl.Vector3{X: -4.02, Y: 1.88, Z: 0}

	flight := f.ToFocus(focus)
	assertVecNear(t, rl.Vector3{X: -4.02, Y: 2.88, Z: 0.5}, flight.End)
	assert.Equal(t, focus, flight.LookAt)

	elapsed := float32(0)
	dt := float32(1.0 / 60)
	for f.Active() {
		f.Update(dt)
		elapsed += dt
		require.LessOrEqual(t, elapsed, float32(1.0)+2*dt, "flight overran its duration")
		assert.Equal(t, focus, c.Target, "camera must look at the focus on every frame")
	}

	assertVecNear(t, flight.End, c.Position)
	assert.Equal(t, focus, c.Target)
	assert.Equal(t, float32(1), f.Progress())
}

func TestFlyTo_ReplacesRunningFlight(t *testing.T) {
	c, f := newTestFlyTo()
	f.ToFocus(rl.Vector3{X: -4.02, Y: 1.88, Z: 0})
	for i := 0; i < 30; i++ {
		f.Update(1.0 / 60)
	}
	mid := c.Position

	second := rl.Vector3{X: 2.7, Y: 0.4, Z: 0.2}
	f.ToFocus(second)
	f.Update(0)
	assertVecNear(t, mid, c.Position)

	for i := 0; i < 61; i++ {
		f.Update(1.0 / 60)
	}
	assert.False(t, f.Active())
	assertVecNear(t, rl.Vector3{X: 2.7, Y: 1.4, Z: 0.7}, c.Position)
	assert.Equal(t, second, c.Target)
}

func TestFlyTo_SameFocusRestarts(t *testing.T) {
	c, f := newTestFlyTo()
	focus := rl.Vector3{X: 0.2, Y: 0.9, Z: -1.92}

	f.ToFocus(focus)
	for i := 0; i < 61; i++ {
		f.Update(1.0 / 60)
	}
	require.False(t, f.Active())

	f.ToFocus(focus)
	assert.True(t, f.Active())
	f.Update(1.0 / 60)
	assertVecNear(t, rl.Vector3{X: 0.2, Y: 1.9, Z: -1.42}, c.Position)
}

func TestFlyTo_IdleUpdateIsNoop(t *testing.T) {
	c, f := newTestFlyTo()
	before := *c

	assert.False(t, f.Update(1))
	assert.Equal(t, before, *c)
}

func TestFlyTo_OnLandOncePerCompletedFlight(t *testing.T) {
	c, f := newTestFlyTo()
	var landed []Flight
	f.OnLand = func(fl Flight) { landed = append(landed, fl) }

	f.ToFocus(rl.Vector3{X: -4.02, Y: 1.88, Z: 0})
	f.Update(0.2)
	second := f.ToFocus(rl.Vector3{X: 2.7, Y: 0.4, Z: 0.2})
	for i := 0; i < 60; i++ {
		f.Update(1.0 / 60.0)
	}
	f.Update(0.5)

	assert.False(t, f.Active())
	assert.Equal(t, []Flight{second}, landed, "the replaced flight never lands")
	assert.Equal(t, second.End, c.Position)
}
