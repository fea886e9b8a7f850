package sampler

import "image"

// Frame is an immutable captured pixel buffer.
//
// PixelAt must be valid for 0 <= x < Width() and 0 <= y < Height();
// callers are responsible for staying in bounds.
type Frame interface {
	Width() int
	Height() int
	PixelAt(x, y int) (r, g, b uint8)
}

// CaptureProvider supplies one frame per sampling session.
//
// Implementations live in the capture package; tests supply their own.
type CaptureProvider interface {
	Capture() (Frame, error)
}

// ImageFrame adapts an *image.RGBA to the Frame interface with direct
// Pix/Stride access, avoiding the color.Color boxing of image.Image.At.
type ImageFrame struct {
	img *image.RGBA
}

// NewImageFrame wraps an RGBA image. The image must not be mutated for the
// lifetime of the frame.
func NewImageFrame(img *image.RGBA) *ImageFrame {
	return &ImageFrame{img: img}
}

// Width returns the frame width in pixels.
func (f *ImageFrame) Width() int {
	return f.img.Rect.Dx()
}

// Height returns the frame height in pixels.
func (f *ImageFrame) Height() int {
	return f.img.Rect.Dy()
}

// PixelAt returns the RGB channels of the pixel at (x, y), with (0,0) the
// top-left pixel regardless of the underlying image's bounds origin.
func (f *ImageFrame) PixelAt(x, y int) (r, g, b uint8) {
	off := f.img.PixOffset(f.img.Rect.Min.X+x, f.img.Rect.Min.Y+y)
	return f.img.Pix[off], f.img.Pix[off+1], f.img.Pix[off+2]
}

// Image returns the underlying RGBA image, for consumers that need whole-
// frame access such as preview rendering.
func (f *ImageFrame) Image() *image.RGBA {
	return f.img
}
