// Package colormodel implements the color conversion engine for the MCP server.
//
// The canonical representation is an 8-bit RGBA Color value. Every other
// representation — hex string, HSL, HSV/HSB, CMYK, packed decimal — is derived
// on demand from the canonical value and never stored, so derived output can
// never go stale relative to the channels it was computed from.
//
// # Canonical Value
//
// Color is an immutable value type. Construction validates that every channel
// is within [0,255]; out-of-range input is rejected with ErrInvalidComponent
// rather than clamped, so conversion code can assume the invariant holds.
// A "change" to a color is always a newly constructed Color.
//
// # Derived Representations
//
// All conversions are pure functions of the Color:
//   - Hex: 6-character uppercase "#RRGGBB" (alpha excluded, exposed separately)
//   - HSV/HSB: Hue 0-360 degrees, Saturation and Value 0-100 percent
//   - HSL: Hue shared with HSV, Saturation and Lightness 0-100 percent
//   - CMYK: all four components 0-100 percent, pure black defined as (0,0,0,100)
//   - Decimal: (r<<16)|(g<<8)|b, range 0-16777215
//
// Conversions use the exact normalized formulas, not integer-scaled
// approximations; display rounding to one decimal place is applied only in
// the *Text helpers and in Report.
//
// # Thread Safety
//
// All functions and methods are referentially transparent and safe for
// unsynchronized concurrent use.
package colormodel
