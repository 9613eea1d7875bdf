package analysis

import (
	"fmt"
	"math"
	"sort"
)

// Undertone is the coarse temperature classification of skin color,
// independent of overall lightness.
type Undertone string

const (
	UndertoneWarm    Undertone = "warm"
	UndertoneCool    Undertone = "cool"
	UndertoneNeutral Undertone = "neutral"
)

type sample struct {
	r, g, b int
}

// classifyUndertone aggregates skin samples into a robust central color
// and maps it onto the warm/neutral/cool bands. ok is false when there is
// too little evidence, in which case the caller falls back to neutral.
func classifyUndertone(samples []sample, cfg UndertoneConfig) (tone Undertone, blended sample, ok bool) {
	if len(samples) < cfg.MinSamples {
		return UndertoneNeutral, sample{}, false
	}

	// Median by total brightness resists glare and shadow outliers.
	sorted := make([]sample, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].r+sorted[i].g+sorted[i].b < sorted[j].r+sorted[j].g+sorted[j].b
	})
	median := sorted[len(sorted)/2]

	var sumR, sumG, sumB int
	for _, s := range samples {
		sumR += s.r
		sumG += s.g
		sumB += s.b
	}
	n := float64(len(samples))
	w := cfg.MedianWeight

	blended = sample{
		r: int(math.Round(w*float64(median.r) + (1-w)*float64(sumR)/n)),
		g: int(math.Round(w*float64(median.g) + (1-w)*float64(sumG)/n)),
		b: int(math.Round(w*float64(median.b) + (1-w)*float64(sumB)/n)),
	}

	rb := blended.r - blended.b
	rg := blended.r - blended.g
	switch {
	case rb > cfg.WarmRedBlueMargin && rg > cfg.WarmRedGreenMargin:
		tone = UndertoneWarm
	case rb < cfg.CoolRedBlueMargin || blended.b >= blended.g:
		tone = UndertoneCool
	default:
		tone = UndertoneNeutral
	}
	return tone, blended, true
}

// skinLabel renders a human-readable description of the blended skin
// color, e.g. "medium with warm undertone".
func skinLabel(blended sample, tone Undertone) string {
	depth := "deep"
	switch avg := (blended.r + blended.g + blended.b) / 3; {
	case avg >= 200:
		depth = "light"
	case avg >= 160:
		depth = "fair"
	case avg >= 120:
		depth = "medium"
	case avg >= 85:
		depth = "tan"
	}
	return fmt.Sprintf("%s with %s undertone", depth, tone)
}
