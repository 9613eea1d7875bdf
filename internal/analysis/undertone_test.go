package analysis

import "testing"

func repeatSamples(s sample, n int) []sample {
	out := make([]sample, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func TestClassifyUndertoneInsufficientSamples(t *testing.T) {
	cfg := DefaultConfig().Undertone
	tone, _, ok := classifyUndertone(repeatSamples(sample{r: 180, g: 140, b: 110}, cfg.MinSamples-1), cfg)
	if ok {
		t.Fatal("expected ok=false below the sample minimum")
	}
	if tone != UndertoneNeutral {
		t.Fatalf("expected neutral fallback, got %s", tone)
	}
}

func TestClassifyUndertoneWarm(t *testing.T) {
	cfg := DefaultConfig().Undertone
	tone, blended, ok := classifyUndertone(repeatSamples(sample{r: 180, g: 140, b: 110}, 100), cfg)
	if !ok {
		t.Fatal("expected classification with enough samples")
	}
	if tone != UndertoneWarm {
		t.Fatalf("expected warm, got %s", tone)
	}
	if blended != (sample{r: 180, g: 140, b: 110}) {
		t.Fatalf("uniform samples must blend to themselves, got %+v", blended)
	}
}

func TestClassifyUndertoneCool(t *testing.T) {
	cfg := DefaultConfig().Undertone
	// Blue meets green: unambiguously cool.
	tone, _, ok := classifyUndertone(repeatSamples(sample{r: 150, g: 120, b: 135}, 100), cfg)
	if !ok {
		t.Fatal("expected classification with enough samples")
	}
	if tone != UndertoneCool {
		t.Fatalf("expected cool, got %s", tone)
	}
}

func TestClassifyUndertoneNeutralBand(t *testing.T) {
	cfg := DefaultConfig().Undertone
	// Red-blue margin sits between the cool and warm thresholds and the
	// red-green margin stays small.
	tone, _, ok := classifyUndertone(repeatSamples(sample{r: 160, g: 152, b: 145}, 100), cfg)
	if !ok {
		t.Fatal("expected classification with enough samples")
	}
	if tone != UndertoneNeutral {
		t.Fatalf("expected neutral, got %s", tone)
	}
}

func TestClassifyUndertoneMedianResistsOutliers(t *testing.T) {
	cfg := DefaultConfig().Undertone
	samples := repeatSamples(sample{r: 180, g: 140, b: 110}, 90)
	// A handful of overexposed glare pixels must not flip the result.
	samples = append(samples, repeatSamples(sample{r: 249, g: 249, b: 249}, 10)...)

	tone, _, ok := classifyUndertone(samples, cfg)
	if !ok || tone != UndertoneWarm {
		t.Fatalf("expected warm despite glare outliers, got %s (ok=%v)", tone, ok)
	}
}

func TestSkinLabelBands(t *testing.T) {
	cases := []struct {
		in   sample
		tone Undertone
		want string
	}{
		{sample{r: 230, g: 210, b: 200}, UndertoneCool, "light with cool undertone"},
		{sample{r: 180, g: 140, b: 110}, UndertoneWarm, "medium with warm undertone"},
		{sample{r: 110, g: 85, b: 70}, UndertoneNeutral, "tan with neutral undertone"},
		{sample{r: 70, g: 55, b: 45}, UndertoneWarm, "deep with warm undertone"},
	}
	for _, c := range cases {
		if got := skinLabel(c.in, c.tone); got != c.want {
			t.Fatalf("skinLabel(%+v, %s) = %q, want %q", c.in, c.tone, got, c.want)
		}
	}
}
