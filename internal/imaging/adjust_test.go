package imaging

import (
	stdcolor "image/color"
	"testing"
)

func TestAdjustHSL_Identity(t *testing.T) {
	img := createInMemoryImage(20, 20, stdcolor.RGBA{255, 0, 0, 255})

	res, err := AdjustHSL(img, 0, 0, 0)
	if err != nil {
		t.Fatalf("AdjustHSL failed: %v", err)
	}
	if res.Width != 20 || res.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want 20x20", res.Width, res.Height)
	}

	out := decodeResult(t, res)
	r, g, b, _ := rgba8At(out, 10, 10)
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("identity adjustment changed pixel: got (%d,%d,%d)", r, g, b)
	}
}

func TestAdjustHSL_HueRotation(t *testing.T) {
	// Rotating red by a third of the circle lands on green.
	img := createInMemoryImage(20, 20, stdcolor.RGBA{255, 0, 0, 255})

	res, err := AdjustHSL(img, 120, 0, 0)
	if err != nil {
		t.Fatalf("AdjustHSL failed: %v", err)
	}
	out := decodeResult(t, res)
	r, g, b, _ := rgba8At(out, 10, 10)
	if g < 250 {
		t.Errorf("green channel: got %d, want ~255", g)
	}
	if r > 5 || b > 5 {
		t.Errorf("red/blue channels: got %d/%d, want ~0", r, b)
	}
}

func TestAdjustHSL_Desaturate(t *testing.T) {
	img := createInMemoryImage(20, 20, stdcolor.RGBA{255, 0, 0, 255})

	res, err := AdjustHSL(img, 0, -1, 0)
	if err != nil {
		t.Fatalf("AdjustHSL failed: %v", err)
	}
	out := decodeResult(t, res)
	r, g, b, _ := rgba8At(out, 10, 10)

	// Fully desaturated pixels are gray: all channels nearly equal.
	maxC, minC := r, r
	for _, v := range []uint8{g, b} {
		if v > maxC {
			maxC = v
		}
		if v < minC {
			minC = v
		}
	}
	if maxC-minC > 3 {
		t.Errorf("desaturated pixel not gray: (%d,%d,%d)", r, g, b)
	}
}

func TestAdjustHSL_Validation(t *testing.T) {
	img := createInMemoryImage(4, 4, stdcolor.RGBA{0, 0, 0, 255})

	tests := []struct {
		name       string
		hueShift   int
		sat, light float64
	}{
		{"hue too far positive", 400, 0, 0},
		{"hue too far negative", -400, 0, 0},
		{"saturation delta high", 0, 1.5, 0},
		{"saturation delta low", 0, -1.5, 0},
		{"lightness delta high", 0, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := AdjustHSL(img, tt.hueShift, tt.sat, tt.light); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
