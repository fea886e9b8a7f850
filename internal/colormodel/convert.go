package colormodel

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSV returns the hue/saturation/value representation.
//
// Hue is in degrees [0,360), saturation and value are percentages [0,100].
// The conversion uses the standard max/min-channel formulas on channels
// normalized to [0,1]:
//   - v = max(r,g,b)
//   - s = 0 when v = 0, otherwise (max-min)/max
//   - hue from the 60-degree sector of the maximal channel, wrapped into [0,360)
//
// Gray input (r=g=b) has saturation 0 and, by convention, hue 0.
func (c Color) HSV() (h, s, v float64) {
	max, min := c.maxMin()
	d := max - min

	v = max
	if max > 0 {
		s = d / max
	}
	return hue(c, max, d), s * 100, v * 100
}

// HSB returns the hue/saturation/brightness representation.
//
// HSB is an alias for HSV; this delegates to HSV so the two can never drift
// apart numerically.
func (c Color) HSB() (h, s, b float64) {
	return c.HSV()
}

// HSL returns the hue/saturation/lightness representation.
//
// Hue is identical to HSV's hue. Lightness is (max+min)/2 and saturation is
// (max-min)/(1-|2l-1|), with gray input yielding saturation 0. Saturation and
// lightness are percentages [0,100].
func (c Color) HSL() (h, s, l float64) {
	max, min := c.maxMin()
	d := max - min

	l = (max + min) / 2
	if d > 0 {
		s = d / (1 - math.Abs(2*l-1))
	}
	return hue(c, max, d), s * 100, l * 100
}

// CMYK returns the cyan/magenta/yellow/key representation as percentages
// [0,100].
//
// Pure black (k=1) is defined as (0,0,0,100) so the chromatic channels never
// divide by zero.
func (c Color) CMYK() (cy, m, y, k float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	key := 1 - math.Max(r, math.Max(g, b))
	if key == 1 {
		return 0, 0, 0, 100
	}

	cy = (1 - r - key) / (1 - key)
	m = (1 - g - key) / (1 - key)
	y = (1 - b - key) / (1 - key)
	return cy * 100, m * 100, y * 100, key * 100
}

// FromHSV constructs a fully opaque Color from hue in degrees [0,360] and
// saturation/value percentages [0,100].
//
// The inverse conversion is delegated to go-colorful and the result is
// quantized to 8-bit channels.
func FromHSV(h, s, v float64) (Color, error) {
	if err := checkCylindrical("hsv", h, s, v); err != nil {
		return Color{}, err
	}
	r, g, b := colorful.Hsv(math.Mod(h, 360), s/100, v/100).Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: 255}, nil
}

// FromHSL constructs a fully opaque Color from hue in degrees [0,360] and
// saturation/lightness percentages [0,100].
func FromHSL(h, s, l float64) (Color, error) {
	if err := checkCylindrical("hsl", h, s, l); err != nil {
		return Color{}, err
	}
	r, g, b := colorful.Hsl(math.Mod(h, 360), s/100, l/100).Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: 255}, nil
}

// maxMin returns the maximal and minimal channel, normalized to [0,1].
func (c Color) maxMin() (max, min float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	return math.Max(r, math.Max(g, b)), math.Min(r, math.Min(g, b))
}

// hue computes the shared HSV/HSL hue in degrees [0,360) from the normalized
// maximal channel and chroma d.
func hue(c Color, max, d float64) float64 {
	if d == 0 {
		return 0
	}

	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	var h float64
	switch max {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h
}

func checkCylindrical(space string, h, a, b float64) error {
	if h < 0 || h > 360 {
		return fmt.Errorf("%w: %s hue=%g", ErrInvalidComponent, space, h)
	}
	if a < 0 || a > 100 || b < 0 || b > 100 {
		return fmt.Errorf("%w: %s components (%g, %g) outside [0,100]", ErrInvalidComponent, space, a, b)
	}
	return nil
}
