// Package imaging provides the image-side operations of the color tool
// server: pixel color sampling, dominant-color extraction, palette and
// gradient rendering, and whole-image HSL adjustment.
//
// All pixel coordinates are 0-based with the origin at the top-left
// corner; X increases rightward and Y downward. Region coordinates are
// inclusive at (x1,y1) and exclusive at (x2,y2).
//
// Sampled colors are reported through the internal/color package, so a
// single sample carries the hex form, the RGB fractions, the HSL model
// in degree/percent units, and the CSS renderings together.
//
// Rendered output (swatches, gradients, adjusted images) is returned as
// base64-encoded PNG so it can travel inside a JSON tool result.
//
// The ImageCache type is safe for concurrent use. The rendering and
// sampling functions are stateless and may be called concurrently on
// different images.
package imaging
