package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/adjust"
)

// AdjustHSL shifts an entire image in HSL terms: the hue rotates by
// hueShift degrees, and saturation and lightness move by relative
// deltas in [-1, 1] (0 leaves the channel untouched).
//
// Like the setter contract on the color type, hue shifts are limited to
// one full circle in either direction.
func AdjustHSL(img image.Image, hueShift int, satDelta, lightDelta float64) (*RenderResult, error) {
	if hueShift < -360 || hueShift > 360 {
		return nil, fmt.Errorf("hue shift %d outside [-360, 360]", hueShift)
	}
	if satDelta < -1 || satDelta > 1 {
		return nil, fmt.Errorf("saturation delta %v outside [-1, 1]", satDelta)
	}
	if lightDelta < -1 || lightDelta > 1 {
		return nil, fmt.Errorf("lightness delta %v outside [-1, 1]", lightDelta)
	}

	out := adjust.Hue(img, hueShift)
	if satDelta != 0 {
		out = adjust.Saturation(out, satDelta)
	}
	if lightDelta != 0 {
		out = adjust.Brightness(out, lightDelta)
	}

	return encodeResult(out)
}
