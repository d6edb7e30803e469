package theme

import (
	"math"
	"time"

	"honnef.co/go/swipeback/layout"
	"honnef.co/go/stuff/math/mathutil"

	"gioui.org/op"
	"golang.org/x/exp/constraints"
)

type EasingFunction func(float64) float64

// Animation interpolates between two numbers over a period of frame time.
// The zero value is done and reports its EndValue.
type Animation[T constraints.Integer | constraints.Float] struct {
	StartValue T
	EndValue   T
	StartTime  time.Time
	Duration   time.Duration
	Ease       EasingFunction

	active bool
}

func (anim *Animation[T]) Start(gtx layout.Context, v1, v2 T, d time.Duration, ease EasingFunction) {
	anim.StartValue = v1
	anim.EndValue = v2
	anim.StartTime = gtx.Now
	anim.Duration = d
	anim.Ease = ease
	anim.active = true
	op.InvalidateOp{}.Add(gtx.Ops)
}

// Value returns the animation's value at gtx.Now and schedules another
// frame while the animation is running.
func (anim *Animation[T]) Value(gtx layout.Context) T {
	if !anim.active {
		return anim.EndValue
	}

	d := gtx.Now.Sub(anim.StartTime)
	if d >= anim.Duration {
		anim.active = false
		return anim.EndValue
	}

	ratio := float64(d) / float64(anim.Duration)
	if anim.Ease != nil {
		ratio = anim.Ease(ratio)
	}
	op.InvalidateOp{}.Add(gtx.Ops)
	return mathutil.Lerp(anim.StartValue, anim.EndValue, ratio)
}

func (anim *Animation[T]) Cancel() {
	anim.active = false
}

func (anim *Animation[T]) Done() bool {
	return !anim.active
}

func EaseOut(power int) EasingFunction {
	switch power {
	case 1:
		return func(r float64) float64 { return r }
	case 2:
		return func(r float64) float64 { r = 1 - r; return 1 - r*r }
	case 3:
		return func(r float64) float64 { r = 1 - r; return 1 - r*r*r }
	default:
		return func(r float64) float64 { return 1 - math.Pow(1-r, float64(power)) }
	}
}
