package color

import (
	"errors"
	"fmt"
	"math"
)

// Mode selects one of the historically diverging HSL→RGB conversion
// formulas. All three share the same contract (canonical HSL fractions
// in, RGB fractions plus full alpha out) and agree on achromatic input
// and at the black/white boundaries; elsewhere they differ in the
// low-order bits, which matters when reproducing output generated by a
// particular reference implementation.
type Mode int

const (
	// Foley is the Foley & van Dam piecewise formula, the default.
	Foley Mode = iota
	// FoleyAlt is the p/q formulation of the Foley formula with strict
	// region comparisons instead of tolerance-aware ones.
	FoleyAlt
	// Wikipedia is the chroma-based formulation.
	Wikipedia
)

var modeNames = [...]string{
	Foley:     "foley",
	FoleyAlt:  "foley_alt",
	Wikipedia: "wikipedia",
}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ErrUnknownMode reports a conversion mode that is not one of the
// defined strategies. There is no fallback mode.
var ErrUnknownMode = errors.New("unknown conversion mode")

// ParseMode maps a mode name ("foley", "foley_alt", "wikipedia") to its
// Mode value.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// ToRGB converts using the default Foley formula.
func (c HSL) ToRGB() RGB {
	rgb, _ := c.RGB(Foley)
	return rgb
}

// RGB converts the color to RGB using the selected formula. Alpha is
// always 1.0 for this conversion. An unrecognized mode returns
// ErrUnknownMode without attempting a conversion.
func (c HSL) RGB(mode Mode) (RGB, error) {
	// An unrecognized mode fails before any conversion work happens.
	if mode != Foley && mode != FoleyAlt && mode != Wikipedia {
		return RGB{}, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}

	// Shared edge handling: lightness at either extreme is pure black or
	// white and zero saturation is an achromatic gray, regardless of the
	// formula. The checks use the global tolerance so values a rounding
	// error away from the boundary land exactly on it.
	switch {
	case NearZeroOrLess(c.L):
		return RGB{R: 0, G: 0, B: 0, A: 1}, nil
	case NearOneOrMore(c.L):
		return RGB{R: 1, G: 1, B: 1, A: 1}, nil
	case NearZeroOrLess(c.S):
		l := Normalize(c.L)
		return RGB{R: l, G: l, B: l, A: 1}, nil
	}

	switch mode {
	case FoleyAlt:
		return c.rgbFoleyAlt(), nil
	case Wikipedia:
		return c.rgbWikipedia(), nil
	default:
		return c.rgbFoley(), nil
	}
}

// rgbFoley implements the Foley & van Dam conversion: two intermediates
// t1/t2 from saturation and lightness, one hue offset per channel, and a
// four-region piecewise map over the hue circle.
func (c HSL) rgbFoley() RGB {
	var t2 float64
	if NearZeroOrLess(c.L - 0.5) {
		t2 = c.L * (1 + c.S)
	} else {
		t2 = c.L + c.S - c.L*c.S
	}
	t1 := 2*c.L - t2

	return RGB{
		R: foleyChannel(rotateHue(c.H+1.0/3.0), t1, t2),
		G: foleyChannel(rotateHue(c.H), t1, t2),
		B: foleyChannel(rotateHue(c.H-1.0/3.0), t1, t2),
		A: 1,
	}
}

// rotateHue wraps a per-channel hue offset back into [0, 1). Offsets are
// at most 1/3 outside the range for a canonical hue, so a single step
// suffices.
func rotateHue(hv float64) float64 {
	if NearZeroOrLess(hv) {
		hv++
	} else if NearOneOrMore(hv) {
		hv--
	}
	return hv
}

// foleyChannel maps one rotated hue value onto a channel intensity.
// Region boundaries (1/6, 1/2, 2/3) are compared through the tolerance
// helpers so exact boundary values do not flicker between regions on
// floating-point error.
func foleyChannel(hv, t1, t2 float64) float64 {
	switch {
	case NearZeroOrLess(6*hv - 1):
		return t1 + (t2-t1)*hv*6
	case NearZeroOrLess(2*hv - 1):
		return t2
	case NearZeroOrLess(3*hv - 2):
		return t1 + (t2-t1)*(2.0/3.0-hv)*6
	default:
		return t1
	}
}

// rgbFoleyAlt is the p/q formulation of the Foley formula as it
// circulated through CSS reference code: identical intermediates under
// different names, strict comparisons at the region boundaries.
func (c HSL) rgbFoleyAlt() RGB {
	var q float64
	if c.L < 0.5 {
		q = c.L * (1 + c.S)
	} else {
		q = c.L + c.S - c.L*c.S
	}
	p := 2*c.L - q

	return RGB{
		R: hueToChannel(p, q, c.H+1.0/3.0),
		G: hueToChannel(p, q, c.H),
		B: hueToChannel(p, q, c.H-1.0/3.0),
		A: 1,
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// rgbWikipedia is the chroma-based formulation: chroma C from saturation
// and lightness, a secondary component X from the position within the
// hue sextant, and a lightness match m added to every channel.
func (c HSL) rgbWikipedia() RGB {
	h6 := c.H * 6
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	x := chroma * (1 - math.Abs(math.Mod(h6, 2)-1))
	m := c.L - chroma/2

	var r, g, b float64
	switch {
	case h6 < 1:
		r, g, b = chroma, x, 0
	case h6 < 2:
		r, g, b = x, chroma, 0
	case h6 < 3:
		r, g, b = 0, chroma, x
	case h6 < 4:
		r, g, b = 0, x, chroma
	case h6 < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{
		R: Normalize(r + m),
		G: Normalize(g + m),
		B: Normalize(b + m),
		A: 1,
	}
}
