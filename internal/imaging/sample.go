package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/ironsheep/color-tools-mcp/internal/color"
)

// HSLReport presents an HSL value in the degree/percent units tool
// callers expect, rather than the fraction storage the core uses.
type HSLReport struct {
	Hue        float64 `json:"hue"`        // 0-360 degrees
	Saturation float64 `json:"saturation"` // 0-100 percent
	Lightness  float64 `json:"lightness"`  // 0-100 percent
}

func reportHSL(c color.HSL) HSLReport {
	return HSLReport{
		Hue:        c.Hue(),
		Saturation: c.Saturation(),
		Lightness:  c.Lightness(),
	}
}

// ColorResult carries one color in every representation the tools report.
type ColorResult struct {
	Hex     string    `json:"hex"`      // "#rrggbb", alpha excluded
	RGB     color.RGB `json:"rgb"`      // channel fractions [0,1]
	HSL     HSLReport `json:"hsl"`      // degree/percent units
	CSSHSL  string    `json:"css_hsl"`  // hsl() rendering
	CSSRGBA string    `json:"css_rgba"` // rgba() rendering
}

// Describe reports an RGB color in every representation.
func Describe(rgb color.RGB) ColorResult {
	hsl := rgb.HSL()
	return ColorResult{
		Hex:     rgb.Hex(),
		RGB:     rgb,
		HSL:     reportHSL(hsl),
		CSSHSL:  hsl.CSSHSL(),
		CSSRGBA: rgb.CSSRGBA(),
	}
}

// DescribeHSL reports an HSL color converted through mode. The HSL
// portion of the result is the input itself rather than a round trip
// through RGB, so exact degree/percent inputs come back exact.
func DescribeHSL(c color.HSL, mode color.Mode) (ColorResult, error) {
	rgb, err := c.RGB(mode)
	if err != nil {
		return ColorResult{}, err
	}
	return ColorResult{
		Hex:     rgb.Hex(),
		RGB:     rgb,
		HSL:     reportHSL(c),
		CSSHSL:  c.CSSHSL(),
		CSSRGBA: rgb.CSSRGBA(),
	}, nil
}

// SampleColor extracts the color at a pixel coordinate. Coordinates are
// 0-based; anything outside the image bounds is an error.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, a := img.At(x, y).RGBA()
	rgb := color.NewRGB(
		float64(r)/65535.0,
		float64(g)/65535.0,
		float64(b)/65535.0,
		float64(a)/65535.0,
	)

	result := Describe(rgb)
	return &result, nil
}

// LabeledPoint is a pixel coordinate with an optional identifying label
// (e.g. "button_background"). Unlabeled points are still sampled.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label
}

// LabeledColorResult combines a sample with its location and label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains samples in the same order as the input points.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples several coordinates in one pass. Any
// out-of-bounds point fails the whole call; no partial results.
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		sample, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *sample,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// Region is a rectangle within an image: (X1,Y1) inclusive top-left,
// (X2,Y2) exclusive bottom-right.
type Region struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// ColorFrequency is one quantized color and how much of the region it
// covers.
type ColorFrequency struct {
	Color      ColorResult `json:"color"`
	Percentage float64     `json:"percentage"` // 0-100 of sampled pixels
}

// DominantColorsResult lists colors by frequency, most common first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors extracts the count most common colors from an image or
// region. To group near-identical pixels, channels are quantized to
// steps of 16 before counting; each returned color is described in full
// (hex, RGB, HSL, CSS) from its quantized value.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	bounds := img.Bounds()
	if region != nil {
		bounds = image.Rect(region.X1, region.Y1, region.X2, region.Y2)
		if !bounds.In(img.Bounds()) {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds",
				region.X1, region.Y1, region.X2, region.Y2)
		}
	}
	if bounds.Empty() {
		return nil, fmt.Errorf("empty sample region")
	}

	type key struct{ r, g, b uint8 }
	counts := make(map[key]int)
	total := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			counts[key{
				r: uint8(r>>8) / 16 * 16,
				g: uint8(g>>8) / 16 * 16,
				b: uint8(b>>8) / 16 * 16,
			}]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for k, n := range counts {
		rgb := color.NewRGB(
			float64(k.r)/255.0,
			float64(k.g)/255.0,
			float64(k.b)/255.0,
			1,
		)
		colors = append(colors, ColorFrequency{
			Color:      Describe(rgb),
			Percentage: float64(n) / float64(total) * 100,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		// Stable order for equally-frequent colors.
		return colors[i].Color.Hex < colors[j].Color.Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}
