package sampler

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// PreviewResult contains a frame rendered at the displayed size.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Preview renders a frame as a base64 PNG scaled to the displayed size, the
// image a presentation layer shows during a sampling session. Pointer
// coordinates sent back in a DisplayMapping refer to exactly this rendering.
//
// The displayed size must be positive; a frame shown unscaled is requested by
// passing the frame's own dimensions (no resampling happens in that case).
func Preview(f Frame, displayWidth, displayHeight int) (*PreviewResult, error) {
	if displayWidth <= 0 || displayHeight <= 0 {
		return nil, fmt.Errorf("%w: preview size %dx%d", ErrInvalidMapping, displayWidth, displayHeight)
	}

	img := frameImage(f)
	if displayWidth != f.Width() || displayHeight != f.Height() {
		img = imaging.Resize(img, displayWidth, displayHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       displayWidth,
		Height:      displayHeight,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// frameImage returns the frame as an image.Image, reusing the backing image
// of an ImageFrame and rebuilding pixel by pixel for any other Frame.
func frameImage(f Frame) image.Image {
	if imgFrame, ok := f.(*ImageFrame); ok {
		return imgFrame.Image()
	}

	img := image.NewRGBA(image.Rect(0, 0, f.Width(), f.Height()))
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			r, g, b := f.PixelAt(x, y)
			off := img.PixOffset(x, y)
			img.Pix[off] = r
			img.Pix[off+1] = g
			img.Pix[off+2] = b
			img.Pix[off+3] = 255
		}
	}
	return img
}
