package analysis

import "testing"

func TestExtractSignatureLengthAndOrdering(t *testing.T) {
	buf := uniformBuffer(100, 100, skinR, skinG, skinB)
	sig := extractSignature(buf, buf.Bounds(), 5)

	if len(sig) != 75 {
		t.Fatalf("expected 75 values (5x5 cells, 3 channels), got %d", len(sig))
	}
	for i := 0; i+2 < len(sig); i += 3 {
		if sig[i] != skinR || sig[i+1] != skinG || sig[i+2] != skinB {
			t.Fatalf("cell %d: expected (%d, %d, %d), got (%d, %d, %d)",
				i/3, skinR, skinG, skinB, sig[i], sig[i+1], sig[i+2])
		}
	}
}

func TestExtractSignatureRowMajorCellOrder(t *testing.T) {
	// Top half white-ish, bottom half dark: the first half of the cells
	// must be brighter than the last half.
	buf := uniformBuffer(50, 50, 10, 10, 10)
	paintRect(buf, Region{X: 0, Y: 0, Width: 50, Height: 25})

	sig := extractSignature(buf, buf.Bounds(), 5)
	if len(sig) != 75 {
		t.Fatalf("unexpected signature length %d", len(sig))
	}
	if sig[0] <= sig[72] {
		t.Fatalf("expected first cell brighter than last: %d vs %d", sig[0], sig[72])
	}
}

func TestExtractSignatureDegenerateRegion(t *testing.T) {
	buf := uniformBuffer(10, 10, skinR, skinG, skinB)
	if sig := extractSignature(buf, Region{}, 5); sig != nil {
		t.Fatalf("expected nil signature for empty region, got %d values", len(sig))
	}
	if sig := extractSignature(nil, Region{X: 0, Y: 0, Width: 5, Height: 5}, 5); sig != nil {
		t.Fatal("expected nil signature for nil buffer")
	}
}

func TestSimilaritySymmetryAndIdentity(t *testing.T) {
	scale := DefaultConfig().Cache.DiffScale
	a := Signature{10, 20, 30, 40, 50, 60}
	b := Signature{12, 18, 33, 37, 55, 58}

	if got := a.Similarity(a, scale); got != 100 {
		t.Fatalf("Similarity(a, a) = %v, want 100", got)
	}
	if ab, ba := a.Similarity(b, scale), b.Similarity(a, scale); ab != ba {
		t.Fatalf("similarity not symmetric: %v vs %v", ab, ba)
	}
}

func TestSimilarityMismatchedLengthsNeverMatch(t *testing.T) {
	scale := DefaultConfig().Cache.DiffScale
	a := Signature{1, 2, 3}
	b := Signature{1, 2, 3, 4}

	if got := a.Similarity(b, scale); got != 0 {
		t.Fatalf("expected 0 for unequal lengths, got %v", got)
	}
	var empty Signature
	if got := empty.Similarity(empty, scale); got != 0 {
		t.Fatalf("expected 0 for empty signatures, got %v", got)
	}
}

func TestSimilarityFloorsAtZero(t *testing.T) {
	a := Signature{0, 0, 0}
	b := Signature{255, 255, 255}
	if got := a.Similarity(b, 0.4); got != 0 {
		t.Fatalf("expected clamped 0, got %v", got)
	}
}

func TestHashStability(t *testing.T) {
	mod := DefaultConfig().Palette.HashModulus
	sig := make(Signature, 75)
	for i := range sig {
		sig[i] = (i * 37) % 256
	}

	h1 := sig.Hash(mod)
	h2 := sig.Hash(mod)
	if h1 != h2 {
		t.Fatalf("hash not stable: %d vs %d", h1, h2)
	}
	if h1 < 0 || h1 >= mod {
		t.Fatalf("hash %d outside [0, %d)", h1, mod)
	}

	// A single changed cell inside the hashed central window must move
	// the hash.
	altered := make(Signature, len(sig))
	copy(altered, sig)
	altered[len(sig)/2]++
	if altered.Hash(mod) == h1 {
		t.Fatal("expected single-cell change to alter the hash")
	}
}
