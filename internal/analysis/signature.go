package analysis

// Signature is a fixed-length color fingerprint of a region: the rounded
// mean R, G, B of each grid cell in row-major cell order. Two signatures
// are only comparable when built with the same grid size.
type Signature []int

// extractSignature partitions the region into a GridSize x GridSize grid
// and appends each cell's mean color. Cells that map to zero pixels (tiny
// regions) are skipped.
func extractSignature(buf *PixelBuffer, reg Region, grid int) Signature {
	if buf.empty() || grid < 1 || reg.Width < 1 || reg.Height < 1 {
		return nil
	}

	sig := make(Signature, 0, grid*grid*3)
	for gy := 0; gy < grid; gy++ {
		y0 := reg.Y + gy*reg.Height/grid
		y1 := reg.Y + (gy+1)*reg.Height/grid
		for gx := 0; gx < grid; gx++ {
			x0 := reg.X + gx*reg.Width/grid
			x1 := reg.X + (gx+1)*reg.Width/grid

			var sumR, sumG, sumB, n int
			for y := y0; y < y1 && y < buf.Height; y++ {
				for x := x0; x < x1 && x < buf.Width; x++ {
					r, g, b := buf.RGBAt(x, y)
					sumR += int(r)
					sumG += int(g)
					sumB += int(b)
					n++
				}
			}
			if n == 0 {
				continue
			}
			sig = append(sig, (sumR+n/2)/n, (sumG+n/2)/n, (sumB+n/2)/n)
		}
	}
	return sig
}

// Similarity scores two signatures on a 0-100 scale from their mean
// absolute per-component difference. Signatures of unequal length never
// match and score 0. The score is symmetric and Similarity(s, s) == 100.
func (s Signature) Similarity(o Signature, scale float64) float64 {
	if len(s) == 0 || len(s) != len(o) {
		return 0
	}
	total := 0
	for i := range s {
		total += abs(s[i] - o[i])
	}
	score := 100 - float64(total)/float64(len(s))*scale
	if score < 0 {
		return 0
	}
	return score
}

// Hash folds the signature into a deterministic non-negative integer in
// [0, modulus). Only the central half of the values contributes, biasing
// the hash toward the face center and away from edge-of-frame noise.
func (s Signature) Hash(modulus int) int {
	if modulus < 1 {
		modulus = 1
	}
	start := len(s) / 4
	end := start + len(s)/2
	if end > len(s) {
		end = len(s)
	}

	h := uint64(17)
	for _, v := range s[start:end] {
		h = h*31 + uint64(v)
		h ^= h >> 13
	}
	return int(h % uint64(modulus))
}
