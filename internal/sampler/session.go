package sampler

import (
	"errors"
	"fmt"

	"github.com/ironsheep/color-inspect-mcp/internal/colormodel"
)

// ErrCaptureUnavailable reports that the capture provider could not supply a
// frame. The session stays Idle; the caller may retry with a new session.
var ErrCaptureUnavailable = errors.New("capture unavailable")

// ErrInvalidState reports an operation that is not legal in the session's
// current state, e.g. resolving before Begin or cancelling twice.
var ErrInvalidState = errors.New("invalid session state")

// ErrInvalidMapping reports a DisplayMapping with a non-positive displayed
// size, for which no pointer-to-pixel ratio exists.
var ErrInvalidMapping = errors.New("invalid display mapping")

// State is the sampling session state.
type State int

const (
	// StateIdle is the initial state; no frame has been captured.
	StateIdle State = iota

	// StateCaptured holds an immutable frame and waits for a pointer press.
	StateCaptured

	// StateResolved is terminal; a pointer press was mapped to a pixel.
	StateResolved

	// StateCancelled is terminal; the session ended without a press.
	StateCancelled
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCaptured:
		return "captured"
	case StateResolved:
		return "resolved"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// DisplayMapping describes how the captured frame is currently shown: the
// displayed size (which may differ from the frame size due to scaling) and a
// pointer position in displayed coordinates.
type DisplayMapping struct {
	DisplayWidth  int `json:"display_width"`
	DisplayHeight int `json:"display_height"`
	PointerX      int `json:"x"`
	PointerY      int `json:"y"`
}

// Session is one eyedropper interaction, from frame capture to a resolved
// color or cancellation. Single-use and single-owner; see the package
// documentation for the state machine.
type Session struct {
	provider CaptureProvider
	state    State
	frame    Frame
}

// NewSession creates an Idle session backed by the given provider.
func NewSession(provider CaptureProvider) *Session {
	return &Session{provider: provider, state: StateIdle}
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Frame returns the captured frame, or nil outside the Captured state.
func (s *Session) Frame() Frame {
	return s.frame
}

// Begin requests a frame from the capture provider and enters Captured.
//
// Valid only in Idle, and only once per session. A provider failure is
// returned wrapped in ErrCaptureUnavailable and leaves the session Idle.
func (s *Session) Begin() (Frame, error) {
	if s.state != StateIdle {
		return nil, fmt.Errorf("%w: Begin in state %s", ErrInvalidState, s.state)
	}

	frame, err := s.provider.Capture()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureUnavailable, err)
	}

	s.frame = frame
	s.state = StateCaptured
	return frame, nil
}

// ResolvePointer maps a pointer press to a frame pixel and returns its color.
//
// Valid only in Captured; the session transitions to Resolved and releases
// the frame. Pointer coordinates are scaled by frameSize/displaySize with
// integer floor division and clamped into frame bounds, so presses at or
// beyond the displayed edge resolve to the nearest edge pixel rather than
// failing. The returned color is fully opaque.
func (s *Session) ResolvePointer(m DisplayMapping) (colormodel.Color, error) {
	if s.state != StateCaptured {
		return colormodel.Color{}, fmt.Errorf("%w: ResolvePointer in state %s", ErrInvalidState, s.state)
	}
	if m.DisplayWidth <= 0 || m.DisplayHeight <= 0 {
		return colormodel.Color{}, fmt.Errorf("%w: displayed size %dx%d", ErrInvalidMapping, m.DisplayWidth, m.DisplayHeight)
	}

	x := clamp(m.PointerX*s.frame.Width()/m.DisplayWidth, 0, s.frame.Width()-1)
	y := clamp(m.PointerY*s.frame.Height()/m.DisplayHeight, 0, s.frame.Height()-1)

	r, g, b := s.frame.PixelAt(x, y)

	s.state = StateResolved
	s.frame = nil
	return colormodel.Color{R: r, G: g, B: b, A: 255}, nil
}

// Cancel ends the session without resolving a color.
//
// Valid only in Captured. Cancelling an already-terminal session is rejected
// with ErrInvalidState rather than treated as a no-op, so double-teardown
// bugs in the caller surface immediately.
func (s *Session) Cancel() error {
	if s.state != StateCaptured {
		return fmt.Errorf("%w: Cancel in state %s", ErrInvalidState, s.state)
	}
	s.state = StateCancelled
	s.frame = nil
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
