package analysis

import "testing"

const (
	skinR = 180
	skinG = 140
	skinB = 110
)

func uniformBuffer(w, h int, r, g, b uint8) *PixelBuffer {
	buf := NewPixelBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.SetRGB(x, y, r, g, b)
		}
	}
	return buf
}

// paintRect fills an axis-aligned rectangle with the reference skin tone.
func paintRect(buf *PixelBuffer, reg Region) {
	for y := reg.Y; y < reg.Y+reg.Height; y++ {
		for x := reg.X; x < reg.X+reg.Width; x++ {
			buf.SetRGB(x, y, skinR, skinG, skinB)
		}
	}
}

// fullFrameRegionConfig scans every pixel of the whole frame so bounding
// boxes in tests match painted rectangles exactly.
func fullFrameRegionConfig() RegionConfig {
	cfg := DefaultConfig().Region
	cfg.WindowInsetX = 0
	cfg.WindowHeight = 1.0
	cfg.SampleStride = 1
	return cfg
}

func TestLocateRegionFindsUniformSkinFrame(t *testing.T) {
	cfg := DefaultConfig()
	buf := uniformBuffer(100, 100, skinR, skinG, skinB)

	reg, pts, ok := locateRegion(buf, cfg.Region, cfg.Skin)
	if !ok {
		t.Fatal("expected a region on a uniformly skin-colored frame")
	}
	if len(pts) == 0 {
		t.Fatal("expected skin points as a side product")
	}
	if reg.Width <= 0 || reg.Height <= 0 {
		t.Fatalf("degenerate region %+v", reg)
	}
	if reg.X < 0 || reg.Y < 0 || reg.X+reg.Width > 100 || reg.Y+reg.Height > 100 {
		t.Fatalf("region %+v exceeds source bounds", reg)
	}
}

func TestLocateRegionRejectsAllBlackFrame(t *testing.T) {
	cfg := DefaultConfig()
	buf := uniformBuffer(100, 100, 0, 0, 0)

	if _, _, ok := locateRegion(buf, cfg.Region, cfg.Skin); ok {
		t.Fatal("expected no region on an all-black frame")
	}
}

func TestLocateRegionAspectBoundary(t *testing.T) {
	skin := DefaultConfig().Skin
	cfg := fullFrameRegionConfig()

	// Aspect exactly 2.0 is accepted (inclusive band).
	buf := uniformBuffer(200, 150, 0, 0, 0)
	paintRect(buf, Region{X: 40, Y: 40, Width: 80, Height: 40})
	if _, _, ok := locateRegion(buf, cfg, skin); !ok {
		t.Fatal("expected aspect 2.0 box to be accepted")
	}

	// Aspect 3.0 is always rejected.
	buf = uniformBuffer(200, 150, 0, 0, 0)
	paintRect(buf, Region{X: 40, Y: 40, Width: 90, Height: 30})
	if _, _, ok := locateRegion(buf, cfg, skin); ok {
		t.Fatal("expected aspect 3.0 box to be rejected")
	}

	// Tall boxes below the lower bound are rejected too.
	buf = uniformBuffer(200, 150, 0, 0, 0)
	paintRect(buf, Region{X: 40, Y: 10, Width: 30, Height: 120})
	if _, _, ok := locateRegion(buf, cfg, skin); ok {
		t.Fatal("expected aspect 0.25 box to be rejected")
	}
}

func TestLocateRegionRejectsSparseScatter(t *testing.T) {
	skin := DefaultConfig().Skin
	cfg := fullFrameRegionConfig()

	// Skin pixels only in opposite corners of a large box: bounding box
	// aspect is fine but the interior density is far below the minimum.
	buf := uniformBuffer(200, 200, 0, 0, 0)
	paintRect(buf, Region{X: 20, Y: 20, Width: 20, Height: 20})
	paintRect(buf, Region{X: 160, Y: 160, Width: 20, Height: 20})

	if _, _, ok := locateRegion(buf, cfg, skin); ok {
		t.Fatal("expected loose scatter to be rejected")
	}
}

func TestLocateRegionRejectsInsufficientDensity(t *testing.T) {
	skin := DefaultConfig().Skin
	cfg := fullFrameRegionConfig()

	// Fewer than 1% of scanned samples are skin.
	buf := uniformBuffer(200, 200, 0, 0, 0)
	paintRect(buf, Region{X: 100, Y: 100, Width: 10, Height: 10})

	if _, _, ok := locateRegion(buf, cfg, skin); ok {
		t.Fatal("expected sub-1%% skin coverage to be rejected")
	}
}

func TestLocateRegionPadsAndClampsToBounds(t *testing.T) {
	skin := DefaultConfig().Skin
	cfg := fullFrameRegionConfig()

	buf := uniformBuffer(200, 200, 0, 0, 0)
	painted := Region{X: 60, Y: 60, Width: 60, Height: 80}
	paintRect(buf, painted)

	reg, _, ok := locateRegion(buf, cfg, skin)
	if !ok {
		t.Fatal("expected region")
	}
	if reg.Width <= painted.Width || reg.Height <= painted.Height {
		t.Fatalf("expected padded region larger than %+v, got %+v", painted, reg)
	}
	if reg.X < 0 || reg.Y < 0 || reg.X+reg.Width > 200 || reg.Y+reg.Height > 200 {
		t.Fatalf("padded region %+v exceeds source bounds", reg)
	}
}
