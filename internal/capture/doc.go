// Package capture provides the frame sources a sampling session draws from.
//
// Three providers implement sampler.CaptureProvider:
//   - Screen grabs a physical display via the OS screenshot facility.
//   - FileSource decodes an image file, through a thread-safe FileCache.
//   - Static hands out a fixed in-memory frame, for tests and for hosts that
//     captured the buffer themselves.
//
// Every provider returns the frame as an *image.RGBA-backed sampler.Frame,
// so pixel reads during a session are plain slice accesses. A provider is
// called exactly once per session; the capture happens before any pointer
// event for that session is processed.
package capture
