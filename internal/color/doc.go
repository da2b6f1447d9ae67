// Package color implements the HSL color model and its conversion to RGB,
// together with the color algebra (mixing, tolerance equality) the tool
// server is built on.
//
// # Representation
//
// All components are stored as fractions:
//   - Hue: [0, 1) of a full 360° circle (0 = red, 1/3 = green, 2/3 = blue)
//   - Saturation: [0, 1] (0 = gray, 1 = fully vivid)
//   - Lightness: [0, 1] (0 = black, 0.5 = normal, 1 = white)
//
// Constructors taking degrees and percentages (New) divide by their radix
// before storing; accessors such as Hue and Saturation scale back out.
// FromFraction and direct struct construction are the unchecked fast path:
// they store values exactly as given, and only the setter methods enforce
// the canonical ranges (wraparound for hue, clamping for the rest).
//
// # Conversion
//
// HSL to RGB is available through three historically diverging formulas,
// selected by a Mode value: Foley (the Foley & van Dam piecewise formula,
// the default), FoleyAlt (the p/q formulation of the same formula), and
// Wikipedia (the chroma-based formulation). All three agree on achromatic
// input and at the pure black/white boundaries; elsewhere they differ in
// the low-order bits, which matters when reproducing legacy output.
//
// RGB to HSL goes through github.com/lucasb-eyer/go-colorful, whose output
// is treated as the reference for that direction.
//
// # Tolerance
//
// Every approximate comparison in the package uses the single fixed
// Tolerance constant. Conversion boundary checks go through the same
// constant so values a rounding error away from 0 or 1 land exactly on
// the boundary instead of flickering across it.
//
// # Thread Safety
//
// Values are plain data. Distinct values may be used concurrently without
// restriction; mutating one value from several goroutines needs external
// synchronization, as with any Go struct.
package color
