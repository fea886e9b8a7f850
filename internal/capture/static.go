package capture

import (
	"errors"

	"github.com/ironsheep/color-inspect-mcp/internal/sampler"
)

// Static is a capture provider that returns a fixed, pre-captured frame.
// Useful in tests and for hosts that obtained the pixel buffer themselves.
type Static struct {
	frame sampler.Frame
}

// NewStatic wraps an existing frame. A nil frame makes Capture fail, which
// models an unavailable capture source.
func NewStatic(frame sampler.Frame) *Static {
	return &Static{frame: frame}
}

// Capture returns the wrapped frame.
func (s *Static) Capture() (sampler.Frame, error) {
	if s.frame == nil {
		return nil, errors.New("no frame available")
	}
	return s.frame, nil
}
