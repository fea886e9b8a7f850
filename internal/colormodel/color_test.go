package colormodel

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	c, err := New(0, 128, 255, 255)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if c.R != 0 || c.G != 128 || c.B != 255 || c.A != 255 {
		t.Errorf("got (%d,%d,%d,%d), want (0,128,255,255)", c.R, c.G, c.B, c.A)
	}
}

func TestNew_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a int
	}{
		{"negative red", -1, 0, 0, 255},
		{"red too large", 256, 0, 0, 255},
		{"negative green", 0, -5, 0, 255},
		{"green too large", 0, 300, 0, 255},
		{"blue too large", 0, 0, 1000, 255},
		{"negative alpha", 0, 0, 0, -1},
		{"alpha too large", 0, 0, 0, 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.r, tt.g, tt.b, tt.a)
			if err == nil {
				t.Fatal("New should reject out-of-range component")
			}
			if !errors.Is(err, ErrInvalidComponent) {
				t.Errorf("error %v is not ErrInvalidComponent", err)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a int
		want       string
	}{
		{"mixed", 0, 128, 255, 255, "#0080FF"},
		{"black", 0, 0, 0, 255, "#000000"},
		{"white", 255, 255, 255, 255, "#FFFFFF"},
		{"zero padded", 1, 2, 3, 255, "#010203"},
		{"alpha excluded", 255, 0, 0, 0, "#FF0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.r, tt.g, tt.b, tt.a)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if got := c.Hex(); got != tt.want {
				t.Errorf("Hex: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{"six digits", "#0080FF", Color{0, 128, 255, 255}},
		{"lowercase", "#ff8040", Color{255, 128, 64, 255}},
		{"no hash", "0080FF", Color{0, 128, 255, 255}},
		{"eight digits", "#0080FF7F", Color{0, 128, 255, 127}},
		{"surrounding space", " #010203 ", Color{1, 2, 3, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if err != nil {
				t.Fatalf("ParseHex(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q): got %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"short", "#FFF"},
		{"seven digits", "#1234567"},
		{"non-hex", "#GGHHII"},
		{"too long", "#0011223344"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseHex(tt.input); err == nil {
				t.Errorf("ParseHex(%q) should fail", tt.input)
			}
		})
	}
}

func TestDecimal(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    int
	}{
		{"red", 255, 0, 0, 16711680},
		{"green", 0, 255, 0, 65280},
		{"blue", 0, 0, 255, 255},
		{"white", 255, 255, 255, 16777215},
		{"black", 0, 0, 0, 0},
		{"mixed", 0, 128, 255, 33023},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewOpaque(tt.r, tt.g, tt.b)
			if err != nil {
				t.Fatalf("NewOpaque failed: %v", err)
			}
			if got := c.Decimal(); got != tt.want {
				t.Errorf("Decimal: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDecimal_IgnoresAlpha(t *testing.T) {
	a, _ := New(10, 20, 30, 0)
	b, _ := New(10, 20, 30, 255)
	if a.Decimal() != b.Decimal() {
		t.Errorf("Decimal should not depend on alpha: %d vs %d", a.Decimal(), b.Decimal())
	}
}

func TestRGBA8(t *testing.T) {
	c, _ := New(12, 34, 56, 78)
	r, g, b, a := c.RGBA8()
	if r != 12 || g != 34 || b != 56 || a != 78 {
		t.Errorf("RGBA8: got (%d,%d,%d,%d), want (12,34,56,78)", r, g, b, a)
	}
}

func TestNewReport(t *testing.T) {
	c, _ := NewOpaque(0, 128, 255)
	rep := NewReport(c, "dodgerblue")

	if rep.Hex != "#0080FF" {
		t.Errorf("Hex: got %s, want #0080FF", rep.Hex)
	}
	if rep.Alpha != 255 {
		t.Errorf("Alpha: got %d, want 255", rep.Alpha)
	}
	if rep.Decimal != 33023 {
		t.Errorf("Decimal: got %d, want 33023", rep.Decimal)
	}
	if rep.Name != "dodgerblue" {
		t.Errorf("Name: got %s, want dodgerblue", rep.Name)
	}
	if rep.HSB != rep.HSV {
		t.Errorf("HSB %+v must equal HSV %+v", rep.HSB, rep.HSV)
	}
	if rep.Text.RGB != "rgb(0, 128, 255)" {
		t.Errorf("Text.RGB: got %s", rep.Text.RGB)
	}
}

func TestReportText_OneDecimalPlace(t *testing.T) {
	c, _ := NewOpaque(250, 5, 5)

	got := c.HSVText()
	want := "hsv(0.0°, 98.0%, 98.0%)"
	if got != want {
		t.Errorf("HSVText: got %s, want %s", got, want)
	}
}
