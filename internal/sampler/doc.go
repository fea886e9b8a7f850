// Package sampler implements the eyedropper session: mapping a pointer
// position over a (possibly scaled) displayed frame back to a source pixel
// and reading the color there.
//
// # Session Lifecycle
//
// A Session is a single-use state machine:
//
//	Idle --Begin--> Captured --ResolvePointer--> Resolved
//	                        \--Cancel----------> Cancelled
//
// Begin asks the capture provider for a frame exactly once; if the provider
// fails, the error wraps ErrCaptureUnavailable and the session stays Idle so
// the caller can retry with a fresh session. The frame is immutable for the
// rest of the session: screen changes after capture are invisible to the
// sampler, so the pixel resolved is the pixel that was displayed.
//
// # Coordinate Mapping
//
// A pointer press arrives in displayed coordinates together with the
// displayed size, which may differ from the frame size when the presentation
// layer scales the frame. The source pixel is computed with the same integer
// (floor) division on both axes:
//
//	x = px * frameWidth / displayWidth
//	y = py * frameHeight / displayHeight
//
// and then clamped into frame bounds, so a press at or just past the
// displayed edge still resolves to a valid pixel. The resolved color is
// always fully opaque: a screen capture carries no meaningful alpha.
//
// # Concurrency
//
// A Session is owned by a single goroutine; it is not safe for concurrent
// use. Start a new session only after the previous one reached a terminal
// state.
package sampler
