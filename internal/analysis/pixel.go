package analysis

// PixelBuffer is a decoded image: row-major RGBA samples. It is owned by
// the analysis call that received it and must not be shared across
// concurrent analyses.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte // 4 bytes per pixel, row-major
}

// NewPixelBuffer allocates a zeroed buffer of the given dimensions.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// RGBAt returns the color channels of the pixel at (x, y).
func (p *PixelBuffer) RGBAt(x, y int) (r, g, b uint8) {
	i := (y*p.Width + x) * 4
	return p.Pix[i], p.Pix[i+1], p.Pix[i+2]
}

// SetRGB writes the color channels of the pixel at (x, y) with full alpha.
func (p *PixelBuffer) SetRGB(x, y int, r, g, b uint8) {
	i := (y*p.Width + x) * 4
	p.Pix[i] = r
	p.Pix[i+1] = g
	p.Pix[i+2] = b
	p.Pix[i+3] = 0xff
}

// Bounds returns the buffer as a full-size region.
func (p *PixelBuffer) Bounds() Region {
	return Region{X: 0, Y: 0, Width: p.Width, Height: p.Height}
}

func (p *PixelBuffer) empty() bool {
	return p == nil || p.Width <= 0 || p.Height <= 0 || len(p.Pix) < p.Width*p.Height*4
}

// IsSkin reports whether an RGB triple falls within the assumed human-skin
// range. Total over [0,255]^3. The bounds are a deliberately broad,
// ethnicity-agnostic heuristic, cheap enough to run on every pixel; some
// false positives and negatives are accepted.
func (c SkinConfig) IsSkin(r, g, b uint8) bool {
	ri, gi, bi := int(r), int(g), int(b)

	if ri <= c.MinRed || gi <= c.MinGreen || bi <= c.MinBlue {
		return false
	}
	if ri >= c.MaxChannel || gi >= c.MaxChannel || bi >= c.MaxChannel {
		return false
	}
	// Red must not fall meaningfully below blue or green, and must not
	// diverge wildly from green.
	if ri <= bi-c.BlueTolerance {
		return false
	}
	if ri <= gi-c.GreenTolerance {
		return false
	}
	if abs(ri-gi) >= c.RedGreenSpread {
		return false
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
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
