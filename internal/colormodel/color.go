package colormodel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidComponent reports a color component outside the [0,255] range.
//
// Construction rejects bad input outright instead of clamping it, so every
// Color in circulation satisfies the range invariant.
var ErrInvalidComponent = errors.New("color component out of range")

// Color is the canonical RGBA color value with 8-bit components.
//
// Color is an immutable value type: all derived representations are computed
// from it on demand, and a "modified" color is always a new Color produced by
// one of the constructors.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255, 255 = opaque)
}

// New constructs a Color from integer components.
//
// Parameters:
//   - r, g, b: color channels, each must be in [0,255]
//   - a: alpha channel, must be in [0,255] (255 = fully opaque)
//
// Returns ErrInvalidComponent (wrapped with the offending channel) if any
// component is out of range. Values are never clamped.
func New(r, g, b, a int) (Color, error) {
	for _, ch := range []struct {
		name  string
		value int
	}{{"red", r}, {"green", g}, {"blue", b}, {"alpha", a}} {
		if ch.value < 0 || ch.value > 255 {
			return Color{}, fmt.Errorf("%w: %s=%d", ErrInvalidComponent, ch.name, ch.value)
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// NewOpaque constructs a fully opaque Color (alpha 255).
func NewOpaque(r, g, b int) (Color, error) {
	return New(r, g, b, 255)
}

// ParseHex constructs a Color from a hex string.
//
// Accepted forms are "#RRGGBB" and "#RRGGBBAA" (the leading "#" is optional,
// hex digits are case-insensitive). A six-digit string yields a fully opaque
// color. Anything else is rejected.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("invalid hex color %q: want 6 or 8 hex digits", s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	if len(h) == 6 {
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Hex returns the color as "#RRGGBB": uppercase hexadecimal, two zero-padded
// digits per channel. Alpha is excluded; read it from the A field.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA8 returns the four 8-bit components. Identity projection of the
// canonical value.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return c.R, c.G, c.B, c.A
}

// Decimal returns the packed-decimal representation (r<<16)|(g<<8)|b.
//
// Alpha is ignored; the result is in [0, 16777215].
func (c Color) Decimal() int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}
