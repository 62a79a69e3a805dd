package tween

import (
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEase(t *testing.T) {
	for _, name := range []string{"linear", "quadOut", "QUADINOUT", "cubicInOut", "sineInOut"} {
		fn, err := Ease(name)
		require.NoError(t, err, name)
		assert.InDelta(t, 0, fn(0, 0, 1, 1), 1e-6, name)
		assert.InDelta(t, 1, fn(1, 0, 1, 1), 1e-6, name)
	}

	_, err := Ease("bounce-wobble")
	assert.Error(t, err)
}

func TestStep_LandsExactlyOnEnd(t *testing.T) {
	from := rl.Vector3{X: 0, Y: 1, Z: 5}
	to := rl.Vector3{X: -4.02, Y: 2.88, Z: 0.5}
	tw := New(from, to, time.Second, nil)

	var updates int
	completed := 0
	tw.OnUpdate = func(rl.Vector3) { updates++ }
	tw.OnComplete = func() { completed++ }

	for i := 0; i < 59; i++ {
		tw.Step(1.0 / 60)
	}
	require.False(t, tw.Done())
	assert.Equal(t, 0, completed)

	tw.Step(1.0 / 60)

	assert.True(t, tw.Done(), "60 frames of 1/60 s must finish a 1 s tween")
	assert.Equal(t, to, tw.Value())
	assert.Equal(t, 1, completed)
	assert.Equal(t, float32(1), tw.Progress())

	before := updates
	tw.Step(1.0 / 60)
	assert.Equal(t, before, updates, "finished tween must not fire OnUpdate again")
}

func TestStep_IntermediateValuesStayBetweenEnds(t *testing.T) {
	linear, err := Ease("linear")
	require.NoError(t, err)
	tw := New(rl.Vector3{}, rl.Vector3{X: 10, Y: -10, Z: 4}, time.Second, linear)

	v := tw.Step(0.25)
	assert.InDelta(t, 2.5, v.X, 1e-4)
	assert.InDelta(t, -2.5, v.Y, 1e-4)
	assert.InDelta(t, 1, v.Z, 1e-4)
	assert.False(t, tw.Done())

	eased := New(rl.Vector3{}, rl.Vector3{X: 1}, time.Second, nil)
	prev := float32(0)
	for i := 0; i < 10; i++ {
		x := eased.Step(0.09).X
		assert.GreaterOrEqual(t, x, prev)
		assert.LessOrEqual(t, x, float32(1))
		prev = x
	}
}

func TestStep_ZeroDurationCompletesImmediately(t *testing.T) {
	to := rl.Vector3{X: 1, Y: 2, Z: 3}
	tw := New(rl.Vector3{}, to, 0, nil)

	assert.Equal(t, to, tw.Step(0))
	assert.True(t, tw.Done())
}
