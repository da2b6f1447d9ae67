package color

import (
	"math"
	"testing"
)

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestNew_RoundTrip(t *testing.T) {
	tests := []struct {
		name            string
		hue, sat, light float64
	}{
		{"red", 0, 100, 50},
		{"spring green", 145, 30, 50},
		{"dark blue", 240, 100, 25},
		{"near wrap", 359.9, 10, 90},
		{"achromatic", 0, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.hue, tt.sat, tt.light)

			if !approx(c.Hue(), tt.hue, 1e-9) {
				t.Errorf("Hue: got %v, want %v", c.Hue(), tt.hue)
			}
			if !approx(c.Saturation(), tt.sat, 1e-9) {
				t.Errorf("Saturation: got %v, want %v", c.Saturation(), tt.sat)
			}
			if !approx(c.Luminosity(), tt.light, 1e-9) {
				t.Errorf("Luminosity: got %v, want %v", c.Luminosity(), tt.light)
			}
			if c.Lightness() != c.Luminosity() {
				t.Errorf("Lightness alias: got %v, want %v", c.Lightness(), c.Luminosity())
			}
		})
	}
}

func TestNewWithRadix(t *testing.T) {
	// Radians for the hue, fractions for the rest.
	c := NewWithRadix(math.Pi, 0.5, 0.5, 2*math.Pi, 1.0)
	if !approx(c.H, 0.5, 1e-12) {
		t.Errorf("H: got %v, want 0.5", c.H)
	}
	if c.S != 0.5 || c.L != 0.5 {
		t.Errorf("S/L: got %v/%v, want 0.5/0.5", c.S, c.L)
	}
}

func TestFromFraction_Unchecked(t *testing.T) {
	// The raw-fraction path stores out-of-range values untouched; only
	// setters enforce the canonical ranges.
	c := FromFraction(1.2, -0.1, 2.0)
	if c.H != 1.2 || c.S != -0.1 || c.L != 2.0 {
		t.Errorf("FromFraction altered values: got %+v", c)
	}
}

func TestSetHue_Wraparound(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		want float64
	}{
		{"in range", 180, 0.5},
		{"negative wraps up", -10, 350.0 / 360.0},
		{"over full circle wraps down", 370, 10.0 / 360.0},
		{"full circle is zero", 360, 0},
		{"zero stays", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c HSL
			c.SetHue(tt.deg)
			if !approx(c.H, tt.want, 1e-12) {
				t.Errorf("SetHue(%v): got %v, want %v", tt.deg, c.H, tt.want)
			}
		})
	}
}

func TestSetHue_NegativeMatchesPositive(t *testing.T) {
	var a, b HSL
	a.SetHue(-10)
	b.SetHue(350)
	if a.H != b.H {
		t.Errorf("SetHue(-10) stored %v, SetHue(350) stored %v", a.H, b.H)
	}
}

func TestSetHueFraction(t *testing.T) {
	tests := []struct {
		name string
		f    float64
		want float64
	}{
		{"in range", 0.25, 0.25},
		{"below clamps", -0.5, 0},
		{"above clamps", 1.5, 0},
		{"exactly one wraps to zero", 1.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c HSL
			c.SetHueFraction(tt.f)
			if c.H != tt.want {
				t.Errorf("SetHueFraction(%v): got %v, want %v", tt.f, c.H, tt.want)
			}
		})
	}
}

func TestSetters_Clamp(t *testing.T) {
	var c HSL

	c.SetSaturation(150)
	if c.S != 1 {
		t.Errorf("SetSaturation(150): got %v, want 1", c.S)
	}
	c.SetSaturation(-20)
	if c.S != 0 {
		t.Errorf("SetSaturation(-20): got %v, want 0", c.S)
	}

	c.SetLuminosity(50)
	if c.L != 0.5 {
		t.Errorf("SetLuminosity(50): got %v, want 0.5", c.L)
	}
	c.SetLuminosityFraction(1.7)
	if c.L != 1 {
		t.Errorf("SetLuminosityFraction(1.7): got %v, want 1", c.L)
	}
	c.SetSaturationFraction(0.3)
	if c.S != 0.3 {
		t.Errorf("SetSaturationFraction(0.3): got %v, want 0.3", c.S)
	}
}

func TestComponents_Order(t *testing.T) {
	c := FromFraction(0.1, 0.2, 0.3)
	got := c.Components()
	want := [3]float64{0.1, 0.2, 0.3}
	if got != want {
		t.Errorf("Components: got %v, want %v", got, want)
	}
}

func TestBrightnessAndGrayscale(t *testing.T) {
	c := New(145, 30, 50)
	if c.Brightness() != c.L {
		t.Errorf("Brightness: got %v, want %v", c.Brightness(), c.L)
	}

	g := c.Grayscale()
	if g.Level != c.L {
		t.Errorf("Grayscale level: got %v, want %v", g.Level, c.L)
	}
	// A gray coerces back to the achromatic HSL at the same lightness.
	back := g.HSL()
	if back.H != 0 || back.S != 0 || back.L != c.L {
		t.Errorf("Grayscale round-trip: got %+v", back)
	}
}

func TestTolerance_Helpers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) bool
		x    float64
		want bool
	}{
		{"NearZero at zero", NearZero, 0, true},
		{"NearZero within", NearZero, Tolerance / 2, true},
		{"NearZero outside", NearZero, Tolerance * 2, false},
		{"NearZeroOrLess negative", NearZeroOrLess, -5, true},
		{"NearZeroOrLess above", NearZeroOrLess, 0.01, false},
		{"NearOne at one", NearOne, 1, true},
		{"NearOne outside", NearOne, 0.99, false},
		{"NearOneOrMore above", NearOneOrMore, 1.5, true},
		{"NearOneOrMore below", NearOneOrMore, 0.9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.x); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(-0.5); got != 0 {
		t.Errorf("Normalize(-0.5): got %v, want 0", got)
	}
	if got := Normalize(1.5); got != 1 {
		t.Errorf("Normalize(1.5): got %v, want 1", got)
	}
	if got := Normalize(0.42); got != 0.42 {
		t.Errorf("Normalize(0.42): got %v, want 0.42", got)
	}
}
