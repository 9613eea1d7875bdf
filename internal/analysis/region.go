package analysis

// Region is an axis-aligned box in source-image pixel coordinates.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// skinPoint is a skin-classified sample with its source position.
type skinPoint struct {
	x, y    int
	r, g, b uint8
}

// collectSkinPoints scans the given window with the configured stride and
// returns every sample the skin predicate accepts.
func collectSkinPoints(buf *PixelBuffer, win Region, stride int, skin SkinConfig) []skinPoint {
	if stride < 1 {
		stride = 1
	}
	var pts []skinPoint
	for y := win.Y; y < win.Y+win.Height; y += stride {
		for x := win.X; x < win.X+win.Width; x += stride {
			r, g, b := buf.RGBAt(x, y)
			if skin.IsSkin(r, g, b) {
				pts = append(pts, skinPoint{x: x, y: y, r: r, g: g, b: b})
			}
		}
	}
	return pts
}

// candidateWindow returns the portion of the image scanned for a face:
// the center of the frame, upper WindowHeight of it. Faces are assumed
// roughly centered and in the upper part of a portrait.
func candidateWindow(buf *PixelBuffer, cfg RegionConfig) Region {
	inset := int(float64(buf.Width) * cfg.WindowInsetX)
	height := int(float64(buf.Height) * cfg.WindowHeight)
	if height < 1 {
		height = buf.Height
	}
	win := Region{X: inset, Y: 0, Width: buf.Width - 2*inset, Height: height}
	if win.Width < 1 {
		win = Region{X: 0, Y: 0, Width: buf.Width, Height: height}
	}
	return win
}

// locateRegion finds a plausible face region in the buffer. A false return
// means "no face detected" and is an expected negative result, not a
// failure. The collected skin points are returned as a side product so
// callers can reuse them for undertone sampling.
func locateRegion(buf *PixelBuffer, cfg RegionConfig, skin SkinConfig) (Region, []skinPoint, bool) {
	if buf.empty() {
		return Region{}, nil, false
	}
	stride := cfg.SampleStride
	if stride < 1 {
		stride = 1
	}

	win := candidateWindow(buf, cfg)
	pts := collectSkinPoints(buf, win, stride, skin)

	scanned := strideCount(win.Width, stride) * strideCount(win.Height, stride)
	if scanned == 0 || float64(len(pts)) < cfg.MinSkinFraction*float64(scanned) {
		return Region{}, pts, false
	}

	minX, minY := pts[0].x, pts[0].y
	maxX, maxY := minX, minY
	for _, pt := range pts[1:] {
		if pt.x < minX {
			minX = pt.x
		}
		if pt.x > maxX {
			maxX = pt.x
		}
		if pt.y < minY {
			minY = pt.y
		}
		if pt.y > maxY {
			maxY = pt.y
		}
	}

	bw := maxX - minX + 1
	bh := maxY - minY + 1
	aspect := float64(bw) / float64(bh)
	if aspect < cfg.MinAspect || aspect > cfg.MaxAspect {
		return Region{}, pts, false
	}

	// Sampled grid positions inside the box; the box corners are
	// themselves sampled positions, so the counts divide evenly.
	nx := (maxX-minX)/stride + 1
	ny := (maxY-minY)/stride + 1
	density := float64(len(pts)) / float64(nx*ny)
	if density < cfg.MinBoxDensity {
		return Region{}, pts, false
	}

	// Grow the box to pull in hair/neck context, then clamp.
	padX := int(float64(bw) * cfg.PadFraction / 2)
	padY := int(float64(bh) * cfg.PadFraction / 2)
	x0 := clamp(minX-padX, 0, buf.Width-1)
	y0 := clamp(minY-padY, 0, buf.Height-1)
	x1 := clamp(maxX+padX, 0, buf.Width-1)
	y1 := clamp(maxY+padY, 0, buf.Height-1)

	reg := Region{X: x0, Y: y0, Width: x1 - x0 + 1, Height: y1 - y0 + 1}
	if reg.Width < cfg.MinDimension || reg.Height < cfg.MinDimension {
		return Region{}, pts, false
	}
	return reg, pts, true
}

func strideCount(span, stride int) int {
	if span <= 0 {
		return 0
	}
	return (span + stride - 1) / stride
}
