package sampler

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"
)

// staticProvider returns a fixed frame, or an error when frame is nil.
type staticProvider struct {
	frame Frame
	err   error
}

func (p *staticProvider) Capture() (Frame, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.frame, nil
}

// solidFrame builds a uniformly colored frame.
func solidFrame(t *testing.T, width, height int, c color.RGBA) *ImageFrame {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return NewImageFrame(img)
}

// gradientFrame builds a frame where the pixel at (x, y) is (x%256, y%256, 0),
// so the sampled pixel identifies the coordinates that were read.
func gradientFrame(t *testing.T, width, height int) *ImageFrame {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 0, 255})
		}
	}
	return NewImageFrame(img)
}

func capturedSession(t *testing.T, f Frame) *Session {
	t.Helper()
	s := NewSession(&staticProvider{frame: f})
	if _, err := s.Begin(); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	return s
}

func TestBegin(t *testing.T) {
	f := solidFrame(t, 10, 10, color.RGBA{1, 2, 3, 255})
	s := NewSession(&staticProvider{frame: f})

	if s.State() != StateIdle {
		t.Fatalf("initial state: got %s, want idle", s.State())
	}

	got, err := s.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if got != Frame(f) {
		t.Error("Begin should return the provider's frame")
	}
	if s.State() != StateCaptured {
		t.Errorf("state after Begin: got %s, want captured", s.State())
	}
}

func TestBegin_CaptureUnavailable(t *testing.T) {
	s := NewSession(&staticProvider{err: fmt.Errorf("no display access")})

	_, err := s.Begin()
	if err == nil {
		t.Fatal("Begin should fail when the provider fails")
	}
	if !errors.Is(err, ErrCaptureUnavailable) {
		t.Errorf("error %v is not ErrCaptureUnavailable", err)
	}
	if s.State() != StateIdle {
		t.Errorf("failed capture must leave the session idle, got %s", s.State())
	}
}

func TestBegin_OnlyOnce(t *testing.T) {
	s := capturedSession(t, solidFrame(t, 10, 10, color.RGBA{0, 0, 0, 255}))

	if _, err := s.Begin(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second Begin: got %v, want ErrInvalidState", err)
	}
}

func TestResolvePointer_ScalesAndClamps(t *testing.T) {
	tests := []struct {
		name         string
		frameW       int
		frameH       int
		mapping      DisplayMapping
		wantX, wantY int
	}{
		{
			"unscaled center",
			100, 100,
			DisplayMapping{DisplayWidth: 100, DisplayHeight: 100, PointerX: 42, PointerY: 17},
			42, 17,
		},
		{
			"2x display, edge press clamps",
			100, 100,
			DisplayMapping{DisplayWidth: 200, DisplayHeight: 200, PointerX: 199, PointerY: 199},
			99, 99,
		},
		{
			"2x display, origin",
			100, 100,
			DisplayMapping{DisplayWidth: 200, DisplayHeight: 200, PointerX: 0, PointerY: 0},
			0, 0,
		},
		{
			"downscaled display",
			200, 100,
			DisplayMapping{DisplayWidth: 100, DisplayHeight: 50, PointerX: 25, PointerY: 25},
			50, 50,
		},
		{
			"press past the displayed edge",
			100, 100,
			DisplayMapping{DisplayWidth: 200, DisplayHeight: 200, PointerX: 250, PointerY: 201},
			99, 99,
		},
		{
			"negative pointer clamps to origin",
			100, 100,
			DisplayMapping{DisplayWidth: 100, DisplayHeight: 100, PointerX: -3, PointerY: -1},
			0, 0,
		},
		{
			"non-uniform scale",
			120, 80,
			DisplayMapping{DisplayWidth: 240, DisplayHeight: 320, PointerX: 121, PointerY: 100},
			60, 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := capturedSession(t, gradientFrame(t, tt.frameW, tt.frameH))

			c, err := s.ResolvePointer(tt.mapping)
			if err != nil {
				t.Fatalf("ResolvePointer failed: %v", err)
			}
			if int(c.R) != tt.wantX%256 || int(c.G) != tt.wantY%256 {
				t.Errorf("sampled (%d,%d), want (%d,%d)", c.R, c.G, tt.wantX, tt.wantY)
			}
			if s.State() != StateResolved {
				t.Errorf("state: got %s, want resolved", s.State())
			}
		})
	}
}

func TestResolvePointer_ForcesOpaqueAlpha(t *testing.T) {
	// The frame pixel is semi-transparent; the resolved color must not be.
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3] = 10, 20, 30, 128
	s := capturedSession(t, NewImageFrame(img))

	c, err := s.ResolvePointer(DisplayMapping{DisplayWidth: 1, DisplayHeight: 1})
	if err != nil {
		t.Fatalf("ResolvePointer failed: %v", err)
	}
	if c.A != 255 {
		t.Errorf("alpha: got %d, want 255", c.A)
	}
}

func TestResolvePointer_InvalidStates(t *testing.T) {
	f := solidFrame(t, 10, 10, color.RGBA{0, 0, 0, 255})
	m := DisplayMapping{DisplayWidth: 10, DisplayHeight: 10, PointerX: 5, PointerY: 5}

	t.Run("before Begin", func(t *testing.T) {
		s := NewSession(&staticProvider{frame: f})
		if _, err := s.ResolvePointer(m); !errors.Is(err, ErrInvalidState) {
			t.Errorf("got %v, want ErrInvalidState", err)
		}
	})

	t.Run("after Resolved", func(t *testing.T) {
		s := capturedSession(t, f)
		if _, err := s.ResolvePointer(m); err != nil {
			t.Fatalf("first resolve failed: %v", err)
		}
		if _, err := s.ResolvePointer(m); !errors.Is(err, ErrInvalidState) {
			t.Errorf("got %v, want ErrInvalidState", err)
		}
	})

	t.Run("after Cancelled", func(t *testing.T) {
		s := capturedSession(t, f)
		if err := s.Cancel(); err != nil {
			t.Fatalf("Cancel failed: %v", err)
		}
		if _, err := s.ResolvePointer(m); !errors.Is(err, ErrInvalidState) {
			t.Errorf("got %v, want ErrInvalidState", err)
		}
	})
}

func TestResolvePointer_InvalidMapping(t *testing.T) {
	tests := []struct {
		name    string
		mapping DisplayMapping
	}{
		{"zero width", DisplayMapping{DisplayWidth: 0, DisplayHeight: 100}},
		{"zero height", DisplayMapping{DisplayWidth: 100, DisplayHeight: 0}},
		{"negative width", DisplayMapping{DisplayWidth: -100, DisplayHeight: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := capturedSession(t, solidFrame(t, 10, 10, color.RGBA{0, 0, 0, 255}))
			if _, err := s.ResolvePointer(tt.mapping); !errors.Is(err, ErrInvalidMapping) {
				t.Errorf("got %v, want ErrInvalidMapping", err)
			}
			// A rejected mapping is not a terminal event.
			if s.State() != StateCaptured {
				t.Errorf("state: got %s, want captured", s.State())
			}
		})
	}
}

func TestCancel(t *testing.T) {
	s := capturedSession(t, solidFrame(t, 10, 10, color.RGBA{0, 0, 0, 255}))

	if err := s.Cancel(); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if s.State() != StateCancelled {
		t.Errorf("state: got %s, want cancelled", s.State())
	}
	if s.Frame() != nil {
		t.Error("Cancel must release the frame")
	}
}

func TestCancel_InvalidStates(t *testing.T) {
	f := solidFrame(t, 10, 10, color.RGBA{0, 0, 0, 255})

	t.Run("before Begin", func(t *testing.T) {
		s := NewSession(&staticProvider{frame: f})
		if err := s.Cancel(); !errors.Is(err, ErrInvalidState) {
			t.Errorf("got %v, want ErrInvalidState", err)
		}
	})

	t.Run("after Resolved", func(t *testing.T) {
		s := capturedSession(t, f)
		if _, err := s.ResolvePointer(DisplayMapping{DisplayWidth: 10, DisplayHeight: 10}); err != nil {
			t.Fatalf("resolve failed: %v", err)
		}
		if err := s.Cancel(); !errors.Is(err, ErrInvalidState) {
			t.Errorf("got %v, want ErrInvalidState", err)
		}
	})

	t.Run("twice", func(t *testing.T) {
		s := capturedSession(t, f)
		if err := s.Cancel(); err != nil {
			t.Fatalf("first Cancel failed: %v", err)
		}
		if err := s.Cancel(); !errors.Is(err, ErrInvalidState) {
			t.Errorf("got %v, want ErrInvalidState", err)
		}
	})
}

func TestResolvePointer_ReadsSampledPixel(t *testing.T) {
	s := capturedSession(t, solidFrame(t, 4, 4, color.RGBA{255, 128, 64, 255}))

	c, err := s.ResolvePointer(DisplayMapping{DisplayWidth: 4, DisplayHeight: 4, PointerX: 2, PointerY: 2})
	if err != nil {
		t.Fatalf("ResolvePointer failed: %v", err)
	}
	if c.Hex() != "#FF8040" {
		t.Errorf("got %s, want #FF8040", c.Hex())
	}
}
