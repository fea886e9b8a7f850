package palette

import "sort"

// Unknown is the name reported when no palette entry can be matched, i.e.
// when the palette is empty. A degraded result, not an error.
const Unknown = "unknown"

// Entry is one named color.
type Entry struct {
	Name string `json:"name"`
	R    uint8  `json:"r"`
	G    uint8  `json:"g"`
	B    uint8  `json:"b"`
}

// Palette is a read-only, ordered collection of named colors.
//
// The entry order is fixed at construction and determines tie-breaking in
// Nearest. A Palette is safe for unsynchronized concurrent reads.
type Palette struct {
	entries []Entry
}

// New builds a Palette preserving the given entry order.
func New(entries []Entry) *Palette {
	p := &Palette{entries: make([]Entry, len(entries))}
	copy(p.entries, entries)
	return p
}

// FromMap builds a Palette from an unordered name-to-RGB mapping.
//
// Map iteration order is randomized in Go, so entries are sorted by name to
// give the palette — and therefore Nearest's tie-breaking — a deterministic
// order regardless of input.
func FromMap(colors map[string][3]uint8) *Palette {
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		rgb := colors[name]
		entries = append(entries, Entry{Name: name, R: rgb[0], G: rgb[1], B: rgb[2]})
	}
	return &Palette{entries: entries}
}

// Default returns the built-in CSS3/X11 extended named-color palette.
func Default() *Palette {
	return New(cssEntries)
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Match is the result of a nearest-name lookup.
type Match struct {
	// Name is the matched entry's name, or Unknown for an empty palette.
	Name string `json:"name"`

	// Distance is the squared Euclidean RGB distance to the matched entry;
	// 0 for an exact match, -1 when no entry matched.
	Distance int `json:"distance"`

	// Exact reports whether the input RGB equals the entry's RGB.
	Exact bool `json:"exact"`
}

// Nearest finds the palette entry closest to the given RGB triple.
//
// An exact RGB match returns immediately with distance 0. Otherwise every
// entry's squared Euclidean distance is computed and the minimum wins; ties
// go to the first such entry in palette order. An empty palette yields the
// Unknown sentinel with distance -1.
func (p *Palette) Nearest(r, g, b uint8) Match {
	if len(p.entries) == 0 {
		return Match{Name: Unknown, Distance: -1}
	}

	best := -1
	bestIdx := 0
	for i, e := range p.entries {
		if e.R == r && e.G == g && e.B == b {
			return Match{Name: e.Name, Distance: 0, Exact: true}
		}
		d := sqDist(e.R, r) + sqDist(e.G, g) + sqDist(e.B, b)
		if best < 0 || d < best {
			best = d
			bestIdx = i
		}
	}
	return Match{Name: p.entries[bestIdx].Name, Distance: best}
}

func sqDist(a, b uint8) int {
	d := int(a) - int(b)
	return d * d
}
