package color

import "math"

// Peripheral color models. Each exposes only the narrow conversion
// contract the rest of the system consumes; none of them participates in
// the conversion engine or the algebra beyond what is defined here.

// YIQ is the NTSC luma/chroma model.
type YIQ struct {
	Y float64 `json:"y"` // Luma: [0, 1]
	I float64 `json:"i"` // In-phase chroma, clamped to [0, 1]
	Q float64 `json:"q"` // Quadrature chroma, clamped to [0, 1]
}

// YIQ converts using the NTSC 1953 coefficients. The chroma axes can go
// negative for saturated blues and greens and are clamped at zero.
func (c RGB) YIQ() YIQ {
	return YIQ{
		Y: Normalize(0.299*c.R + 0.587*c.G + 0.114*c.B),
		I: Normalize(0.596*c.R - 0.275*c.G - 0.321*c.B),
		Q: Normalize(0.212*c.R - 0.523*c.G + 0.311*c.B),
	}
}

// CMYK is the subtractive print model.
type CMYK struct {
	C float64 `json:"c"` // Cyan: [0, 1]
	M float64 `json:"m"` // Magenta: [0, 1]
	Y float64 `json:"y"` // Yellow: [0, 1]
	K float64 `json:"k"` // Key (black): [0, 1]
}

// CMYK converts via the standard key-extraction formula.
func (c RGB) CMYK() CMYK {
	k := 1 - math.Max(c.R, math.Max(c.G, c.B))
	if NearOneOrMore(k) {
		return CMYK{K: 1}
	}
	d := 1 - k
	return CMYK{
		C: (1 - c.R - k) / d,
		M: (1 - c.G - k) / d,
		Y: (1 - c.B - k) / d,
		K: k,
	}
}

// Grayscale is a single gray level fraction.
type Grayscale struct {
	Level float64 `json:"level"` // Gray level: [0, 1], 0 = black
}

// HSL implements the Color interface: a gray is the achromatic HSL with
// the level as lightness.
func (g Grayscale) HSL() HSL {
	return FromFraction(0, 0, g.Level)
}

// Grayscale converts by lightness, the same (max+min)/2 the HSL model
// uses, so RGB→Grayscale and RGB→HSL→Grayscale agree.
func (c RGB) Grayscale() Grayscale {
	max := math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))
	return Grayscale{Level: (max + min) / 2}
}
