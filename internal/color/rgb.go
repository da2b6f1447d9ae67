package color

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB represents a color as red, green, blue and alpha fractions in
// [0, 1]. It is the conversion target of the HSL engine and the bridge
// to hex notation and CSS rgb()/rgba() rendering.
type RGB struct {
	R float64 `json:"r"` // Red fraction: [0, 1]
	G float64 `json:"g"` // Green fraction: [0, 1]
	B float64 `json:"b"` // Blue fraction: [0, 1]
	A float64 `json:"a"` // Alpha fraction: [0, 1], 1 = opaque
}

// NewRGB builds an RGB from channel fractions, clamping each into [0, 1].
func NewRGB(r, g, b, a float64) RGB {
	return RGB{
		R: Normalize(r),
		G: Normalize(g),
		B: Normalize(b),
		A: Normalize(a),
	}
}

// ParseHex parses a "#rrggbb" hex string (the leading "#" is optional)
// into an RGB with full alpha.
func ParseHex(s string) (RGB, error) {
	if len(s) > 0 && s[0] != '#' {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// HSL converts to the HSL model, implementing the Color interface.
// go-colorful reports the hue in degrees; it is stored as a fraction.
func (c RGB) HSL() HSL {
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return FromFraction(h/360.0, s, l)
}

// Hex returns the lowercase "#rrggbb" form. Hex notation carries no
// alpha; use CSSRGBA when transparency matters.
func (c RGB) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Hex()
}

// HTML is an alias for Hex, matching the HTML attribute color form.
func (c RGB) HTML() string { return c.Hex() }

// CSSRGB formats the color as CSS rgb() with percentage channels.
func (c RGB) CSSRGB() string {
	return fmt.Sprintf("rgb(%3.2f%%, %3.2f%%, %3.2f%%)", c.R*100, c.G*100, c.B*100)
}

// CSSRGBA formats the color as CSS rgba() with percentage channels and a
// fractional alpha.
func (c RGB) CSSRGBA() string {
	return fmt.Sprintf("rgba(%3.2f%%, %3.2f%%, %3.2f%%, %1.2f)", c.R*100, c.G*100, c.B*100, c.A)
}

func (c RGB) String() string { return c.CSSRGBA() }
