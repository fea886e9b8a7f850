package capture

import (
	"fmt"

	"github.com/kbinani/screenshot"

	"github.com/ironsheep/color-inspect-mcp/internal/sampler"
)

// Screen captures a physical display identified by index.
//
// Capture failures (no display access, headless environment, index out of
// range) are reported as errors; the session layer wraps them in its
// capture-unavailable error so callers can retry.
type Screen struct {
	display int
}

// NewScreen creates a provider for the given display index (0 = primary).
func NewScreen(display int) *Screen {
	return &Screen{display: display}
}

// Capture grabs the display's current contents as an immutable frame.
func (s *Screen) Capture() (sampler.Frame, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, fmt.Errorf("no active displays")
	}
	if s.display < 0 || s.display >= n {
		return nil, fmt.Errorf("display %d out of range (have %d)", s.display, n)
	}

	img, err := screenshot.CaptureRect(screenshot.GetDisplayBounds(s.display))
	if err != nil {
		return nil, fmt.Errorf("capturing display %d: %w", s.display, err)
	}
	return sampler.NewImageFrame(img), nil
}
