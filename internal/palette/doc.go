// Package palette provides the named-color palette and nearest-name lookup.
//
// A Palette is a read-only list of (name, RGB) entries with a fixed iteration
// order. Nearest returns the entry with the smallest squared Euclidean
// distance in RGB space; when several entries tie, the first one in iteration
// order wins, which makes the lookup deterministic for a given palette.
//
// Naming is a convenience, not a correctness-critical feature: an empty
// palette degrades to the Unknown sentinel instead of failing.
//
// At the default palette's size (around 140 entries) a linear scan is the
// right tool; a spatial index would only pay off for palettes orders of
// magnitude larger.
package palette
