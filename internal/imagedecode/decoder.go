// Package imagedecode turns uploaded image bytes into the pixel buffers
// the analysis core consumes. It is the platform-bound collaborator the
// core deliberately excludes: codec handling and resizing happen here so
// the pipeline stays pure.
package imagedecode

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/Srushti24695/tonalize/internal/analysis"
)

// ErrUnprocessableImage is returned when the payload cannot be decoded by
// any registered codec. The core never invents pixel data.
var ErrUnprocessableImage = errors.New("image cannot be decoded")

// DefaultMaxDimension bounds the working image size. Uploads are
// downscaled so the per-pixel scan stays cheap and signatures are built
// from a comparable resolution regardless of source size.
const DefaultMaxDimension = 512

// Decoder decodes JPEG, PNG, GIF, and WebP payloads into pixel buffers.
type Decoder struct {
	maxDim int
}

// NewDecoder builds a Decoder; maxDim <= 0 selects the default bound.
func NewDecoder(maxDim int) *Decoder {
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}
	return &Decoder{maxDim: maxDim}
}

// Decode parses the payload and normalizes it into an RGBA pixel buffer
// no larger than the configured bound.
func (d *Decoder) Decode(data []byte) (*analysis.PixelBuffer, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnprocessableImage, err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %s image has empty bounds", ErrUnprocessableImage, format)
	}

	w, h = fitWithin(w, h, d.maxDim)
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == bounds.Dx() && h == bounds.Dy() {
		draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)
	} else {
		xdraw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), src, bounds, xdraw.Src, nil)
	}

	buf := &analysis.PixelBuffer{Width: w, Height: h, Pix: rgba.Pix}
	return buf, nil
}

// fitWithin scales (w, h) down proportionally so the longer side does not
// exceed max. Dimensions never drop below 1.
func fitWithin(w, h, max int) (int, int) {
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= max {
		return w, h
	}
	scaled := func(v int) int {
		s := v * max / longest
		if s < 1 {
			return 1
		}
		return s
	}
	return scaled(w), scaled(h)
}
