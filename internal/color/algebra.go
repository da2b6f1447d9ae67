package color

import (
	"errors"
	"fmt"
)

// Color is the coercion contract shared by the color models in this
// package: anything that can express itself as HSL participates in the
// color algebra.
type Color interface {
	HSL() HSL
}

// Equivalent reports whether c and other represent the same color to
// within the global Tolerance on every HSL component. The relation is
// reflexive and symmetric but approximate, so it must not be used to
// bucket colors for hashing without tolerance-aware bucketing.
func (c HSL) Equivalent(other Color) bool {
	o := other.HSL()
	return EquivalentValue(c.H, o.H) &&
		EquivalentValue(c.S, o.S) &&
		EquivalentValue(c.L, o.L)
}

// Mix linearly interpolates each HSL component toward other by ratio and
// returns the result through the raw-fraction path. No wrap or clamp is
// reapplied, so ratios outside [0, 1] extrapolate past either endpoint.
//
// Hue interpolates in fraction space, not around the circle: mixing
// h=0.0 into h=0.9 at ratio 0.5 crosses the far arc and lands on 0.45,
// not on the 0.95 a shortest-arc blend would give.
func (c HSL) Mix(other Color, ratio float64) HSL {
	a := c.Components()
	b := other.HSL().Components()
	var out [3]float64
	for i := range a {
		out[i] = a[i] + (b[i]-a[i])*ratio
	}
	return FromFraction(out[0], out[1], out[2])
}

// ErrCannotCoerce reports a value with no conversion to HSL.
var ErrCannotCoerce = errors.New("value cannot be coerced to HSL")

// Coerce converts a dynamically-typed value to HSL. Any Color
// implementation is accepted, directly or behind a pointer; anything
// else fails with ErrCannotCoerce rather than producing a default color.
func Coerce(v any) (HSL, error) {
	switch t := v.(type) {
	case Color:
		return t.HSL(), nil
	case *HSL:
		return t.HSL(), nil
	case *RGB:
		return t.HSL(), nil
	case *Grayscale:
		return t.HSL(), nil
	default:
		return HSL{}, fmt.Errorf("%w: %T", ErrCannotCoerce, v)
	}
}
