// Package tween animates a Vector3 from one value to another over a fixed
// duration using raylib-go's Penner easing curves.
package tween

import (
	"fmt"
	"strings"
	"time"

	"github.com/gen2brain/raylib-go/easings"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// EaseFunc has the Penner signature used by the easings package:
// t elapsed, b start, c change, d duration.
type EaseFunc func(t, b, c, d float32) float32

var easeByName = map[string]EaseFunc{
	"linear":     easings.LinearNone,
	"quadin":     easings.QuadIn,
	"quadout":    easings.QuadOut,
	"quadinout":  easings.QuadInOut,
	"cubicin":    easings.CubicIn,
	"cubicout":   easings.CubicOut,
	"cubicinout": easings.CubicInOut,
	"sineinout":  easings.SineInOut,
}

// Ease resolves a curve by name, case-insensitively.
func Ease(name string) (EaseFunc, error) {
	if fn, ok := easeByName[strings.ToLower(name)]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("unknown easing %q", name)
}

// Tween moves a Vector3 from From to To. OnUpdate runs after every Step,
// OnComplete once when the end value is reached.
type Tween struct {
	From       rl.Vector3
	To         rl.Vector3
	Duration   float32
	Ease       EaseFunc
	OnUpdate   func(v rl.Vector3)
	OnComplete func()

	elapsed float32
	value   rl.Vector3
	done    bool
}

// landSlack absorbs float32 drift when summing per-frame deltas, so 60 steps
// of 1/60 s finish a 1 s tween on the 60th step.
const landSlack = 1e-5

func New(from, to rl.Vector3, duration time.Duration, ease EaseFunc) *Tween {
	if ease == nil {
		ease = easings.QuadOut
	}
	return &Tween{
		From:     from,
		To:       to,
		Duration: float32(duration.Seconds()),
		Ease:     ease,
		value:    from,
	}
}

// Step advances the tween by dt seconds and returns the new value. The step
// that reaches Duration, within landSlack, returns To exactly.
func (t *Tween) Step(dt float32) rl.Vector3 {
	if t.done {
		return t.value
	}
	if dt < 0 {
		dt = 0
	}
	t.elapsed += dt
	if t.Duration <= 0 || t.elapsed >= t.Duration-landSlack {
		t.elapsed = t.Duration
		t.value = t.To
		t.done = true
	} else {
		t.value = rl.Vector3{
			X: t.Ease(t.elapsed, t.From.X, t.To.X-t.From.X, t.Duration),
			Y: t.Ease(t.elapsed, t.From.Y, t.To.Y-t.From.Y, t.Duration),
			Z: t.Ease(t.elapsed, t.From.Z, t.To.Z-t.From.Z, t.Duration),
		}
	}

	if t.OnUpdate != nil {
		t.OnUpdate(t.value)
	}
	if t.done && t.OnComplete != nil {
		t.OnComplete()
	}
	return t.value
}

func (t *Tween) Value() rl.Vector3 {
	return t.value
}

func (t *Tween) Done() bool {
	return t.done
}

// Progress is elapsed/Duration in [0, 1].
func (t *Tween) Progress() float32 {
	if t.Duration <= 0 {
		return 1
	}
	return t.elapsed / t.Duration
}
