package colormodel

import "fmt"

// RGB holds 8-bit channels without alpha.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSV holds hue in degrees and saturation/value percentages.
type HSV struct {
	H float64 `json:"h"` // Hue: 0-360 degrees
	S float64 `json:"s"` // Saturation: 0-100 percent
	V float64 `json:"v"` // Value: 0-100 percent
}

// HSL holds hue in degrees and saturation/lightness percentages.
type HSL struct {
	H float64 `json:"h"` // Hue: 0-360 degrees
	S float64 `json:"s"` // Saturation: 0-100 percent
	L float64 `json:"l"` // Lightness: 0-100 percent
}

// CMYK holds the four process-color percentages.
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// ReportText carries the display strings, one per color space, each rounded
// to one decimal place.
type ReportText struct {
	RGB  string `json:"rgb"`
	HSV  string `json:"hsv"`
	HSL  string `json:"hsl"`
	CMYK string `json:"cmyk"`
}

// Report aggregates every derived representation of one canonical color.
//
// This is the shape returned by the MCP tools: numeric values rounded to one
// decimal place for degrees and percentages, plus ready-to-render display
// strings. Name is the nearest palette name and is filled in by the caller
// (the palette is a collaborator, not part of the conversion engine).
type Report struct {
	Hex     string     `json:"hex"`     // "#RRGGBB", alpha excluded
	Alpha   uint8      `json:"alpha"`   // Alpha exposed separately from Hex
	RGB     RGB        `json:"rgb"`     // 8-bit channels
	RGBA    Color      `json:"rgba"`    // Canonical value including alpha
	HSV     HSV        `json:"hsv"`     // Hue/saturation/value
	HSB     HSV        `json:"hsb"`     // Alias of HSV, always identical
	HSL     HSL        `json:"hsl"`     // Hue/saturation/lightness
	CMYK    CMYK       `json:"cmyk"`    // Process color percentages
	Decimal int        `json:"decimal"` // (r<<16)|(g<<8)|b
	Name    string     `json:"name,omitempty"`
	Text    ReportText `json:"text"`
}

// NewReport derives every representation of c. The name argument is the
// nearest palette name; pass an empty string to omit it.
func NewReport(c Color, name string) *Report {
	h, s, v := c.HSV()
	hl, sl, l := c.HSL()
	cy, m, y, k := c.CMYK()

	hsv := HSV{H: round1(h), S: round1(s), V: round1(v)}
	return &Report{
		Hex:     c.Hex(),
		Alpha:   c.A,
		RGB:     RGB{R: c.R, G: c.G, B: c.B},
		RGBA:    c,
		HSV:     hsv,
		HSB:     hsv,
		HSL:     HSL{H: round1(hl), S: round1(sl), L: round1(l)},
		CMYK:    CMYK{C: round1(cy), M: round1(m), Y: round1(y), K: round1(k)},
		Decimal: c.Decimal(),
		Name:    name,
		Text: ReportText{
			RGB:  c.RGBText(),
			HSV:  c.HSVText(),
			HSL:  c.HSLText(),
			CMYK: c.CMYKText(),
		},
	}
}

// RGBText returns the display form "rgb(r, g, b)".
func (c Color) RGBText() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSVText returns the display form "hsv(h°, s%, v%)" with one decimal place.
func (c Color) HSVText() string {
	h, s, v := c.HSV()
	return fmt.Sprintf("hsv(%.1f°, %.1f%%, %.1f%%)", h, s, v)
}

// HSLText returns the display form "hsl(h°, s%, l%)" with one decimal place.
func (c Color) HSLText() string {
	h, s, l := c.HSL()
	return fmt.Sprintf("hsl(%.1f°, %.1f%%, %.1f%%)", h, s, l)
}

// CMYKText returns the display form "cmyk(c%, m%, y%, k%)" with one decimal
// place.
func (c Color) CMYKText() string {
	cy, m, y, k := c.CMYK()
	return fmt.Sprintf("cmyk(%.1f%%, %.1f%%, %.1f%%, %.1f%%)", cy, m, y, k)
}

// round1 rounds to one decimal place. Display precision only; the conversion
// methods themselves return exact values.
func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
