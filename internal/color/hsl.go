package color

// HSL represents a color as hue, saturation and lightness fractions.
//
// The exported fields are the raw fraction storage. Canonical ranges
// (0 ≤ H < 1, 0 ≤ S ≤ 1, 0 ≤ L ≤ 1) are enforced only by the setter
// methods; FromFraction and struct literals store values untouched, so
// callers on that path must supply in-range fractions themselves.
type HSL struct {
	H float64 `json:"h"` // Hue fraction: [0, 1) of a full 360° circle
	S float64 `json:"s"` // Saturation fraction: [0, 1]
	L float64 `json:"l"` // Lightness fraction: [0, 1]
}

// FromFraction builds an HSL from raw fraction components without
// wraparound or clamping. Conversions and Mix use this path so derived
// values round-trip exactly.
func FromFraction(h, s, l float64) HSL {
	return HSL{H: h, S: s, L: l}
}

// New builds an HSL from a hue in degrees (0-360) and saturation and
// lightness in percent (0-100).
func New(hue, saturation, lightness float64) HSL {
	return NewWithRadix(hue, saturation, lightness, 360.0, 100.0)
}

// NewWithRadix builds an HSL from components expressed against arbitrary
// radices. Passing hueRadix = 2π constructs from radians, hueRadix = 400
// from gradians, and so on.
func NewWithRadix(h, s, l, hueRadix, otherRadix float64) HSL {
	return HSL{H: h / hueRadix, S: s / otherRadix, L: l / otherRadix}
}

// HSL implements the Color interface.
func (c HSL) HSL() HSL { return c }

// Hue returns the hue in degrees (0-360).
func (c HSL) Hue() float64 { return c.H * 360.0 }

// Saturation returns the saturation in percent (0-100).
func (c HSL) Saturation() float64 { return c.S * 100.0 }

// Luminosity returns the lightness in percent (0-100).
func (c HSL) Luminosity() float64 { return c.L * 100.0 }

// Lightness is an alias for Luminosity.
func (c HSL) Lightness() float64 { return c.Luminosity() }

// Brightness returns the raw lightness fraction.
func (c HSL) Brightness() float64 { return c.L }

// SetHue sets the hue from degrees. A value up to one full circle out of
// range is wrapped back in (-10° stores the same fraction as 350°, 360°
// wraps to 0°). Inputs more than 360° outside [0, 360) are out of
// contract and are only clamped, not reduced modulo 360.
func (c *HSL) SetHue(deg float64) {
	h := deg / 360.0
	if h < 0 {
		h++
	} else if h >= 1 {
		h--
	}
	c.H = Normalize(h)
}

// SetHueFraction sets the hue from a fraction clamped into [0, 1], with
// a full circle wrapping to zero.
func (c *HSL) SetHueFraction(h float64) {
	h = Normalize(h)
	if h == 1 {
		h = 0
	}
	c.H = h
}

// SetSaturation sets the saturation from a percentage, clamped to [0, 100].
func (c *HSL) SetSaturation(pct float64) {
	c.S = Normalize(pct / 100.0)
}

// SetSaturationFraction sets the saturation fraction, clamped to [0, 1].
func (c *HSL) SetSaturationFraction(s float64) {
	c.S = Normalize(s)
}

// SetLuminosity sets the lightness from a percentage, clamped to [0, 100].
func (c *HSL) SetLuminosity(pct float64) {
	c.L = Normalize(pct / 100.0)
}

// SetLuminosityFraction sets the lightness fraction, clamped to [0, 1].
func (c *HSL) SetLuminosityFraction(l float64) {
	c.L = Normalize(l)
}

// Components returns the raw fractions as [h, s, l] in that fixed order.
func (c HSL) Components() [3]float64 {
	return [3]float64{c.H, c.S, c.L}
}

// Grayscale reduces the color to its lightness alone.
func (c HSL) Grayscale() Grayscale {
	return Grayscale{Level: c.L}
}

func (c HSL) String() string { return c.CSSHSL() }
