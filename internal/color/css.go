package color

import "fmt"

// CSS string rendering. Numeric components use a fixed two-decimal,
// minimum-three-significant-digit format matching common CSS color
// syntax.

// CSSHSL formats the color as CSS hsl() with the hue in degrees and
// saturation and lightness as percentages.
func (c HSL) CSSHSL() string {
	return fmt.Sprintf("hsl(%3.2f, %3.2f%%, %3.2f%%)", c.Hue(), c.Saturation(), c.Luminosity())
}

// CSSHSLA formats the color as CSS hsla(). HSL carries no alpha of its
// own and the conversion contract fixes alpha at fully opaque, so the
// rendered alpha is always 1.00.
func (c HSL) CSSHSLA() string {
	return fmt.Sprintf("hsla(%3.2f, %3.2f%%, %3.2f%%, %1.2f)", c.Hue(), c.Saturation(), c.Luminosity(), 1.0)
}

// HTML renders the hex form through the default RGB conversion.
func (c HSL) HTML() string { return c.ToRGB().HTML() }

// CSSRGB renders rgb() through the default RGB conversion.
func (c HSL) CSSRGB() string { return c.ToRGB().CSSRGB() }

// CSSRGBA renders rgba() through the default RGB conversion.
func (c HSL) CSSRGBA() string { return c.ToRGB().CSSRGBA() }
