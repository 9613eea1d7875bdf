// Package analysis implements the skin-undertone classification pipeline:
// skin-pixel classification, face-region localization, signature
// extraction, undertone classification, a similarity-based consistency
// cache, and the deterministic hash-to-palette mapping. The pipeline is
// pure and synchronous; image decoding is a collaborator concern.
package analysis

// Result is the full outcome of one analysis. It is fully determined by
// the undertone and season; the color lists are a static lookup.
type Result struct {
	Undertone     Undertone    `json:"undertone"`
	SkinLabel     string       `json:"skin_label"`
	Season        Season       `json:"season"`
	BestColors    []ColorEntry `json:"best_colors"`
	NeutralColors []ColorEntry `json:"neutral_colors"`
	AvoidColors   []ColorEntry `json:"avoid_colors"`
	FaceDetected  bool         `json:"face_detected"`
	FromCache     bool         `json:"from_cache"`
	SignatureHash int          `json:"signature_hash"`
}

// Detection reports whether a face region was located, without running
// the rest of the pipeline. Signature is nil when no region was found.
type Detection struct {
	FaceDetected bool      `json:"face_detected"`
	Region       *Region   `json:"region,omitempty"`
	Signature    Signature `json:"signature,omitempty"`
}

// Analyzer runs the analysis pipeline. Safe for concurrent use: the only
// shared state is the consistency cache, which carries its own lock.
type Analyzer struct {
	cfg   Config
	cache *ConsistencyCache
}

// NewAnalyzer creates an Analyzer. A nil config selects the defaults; a
// nil cache allocates a fresh one, so callers can scope caches per
// session by passing their own.
func NewAnalyzer(cfg *Config, cache *ConsistencyCache) *Analyzer {
	if cfg == nil {
		c := DefaultConfig()
		cfg = &c
	}
	if cache == nil {
		cache = NewConsistencyCache(cfg.Cache)
	}
	return &Analyzer{cfg: *cfg, cache: cache}
}

// Cache exposes the consistency cache for session scoping and tests.
func (a *Analyzer) Cache() *ConsistencyCache {
	return a.cache
}

// DetectFace locates a face region and extracts its signature. A negative
// result is an advisory for the caller, not a failure; Analyze still
// proceeds via whole-image sampling.
func (a *Analyzer) DetectFace(buf *PixelBuffer) Detection {
	reg, _, ok := locateRegion(buf, a.cfg.Region, a.cfg.Skin)
	if !ok {
		return Detection{}
	}
	sig := extractSignature(buf, reg, a.cfg.Signature.GridSize)
	return Detection{FaceDetected: true, Region: &reg, Signature: sig}
}

// Analyze classifies the image and derives its palette recommendation. It
// never fails outward: every internal negative (no face, too few skin
// samples, degenerate signature) falls back to a neutral undertone and
// the default season.
func (a *Analyzer) Analyze(buf *PixelBuffer) Result {
	if buf.empty() {
		return a.fallbackResult(false)
	}

	reg, pts, found := locateRegion(buf, a.cfg.Region, a.cfg.Skin)
	if found {
		// Restrict undertone sampling to the located region.
		pts = pointsWithin(pts, reg)
	} else {
		// No face: sample the whole frame instead.
		reg = buf.Bounds()
		pts = collectSkinPoints(buf, reg, a.cfg.Region.SampleStride, a.cfg.Skin)
	}

	sig := extractSignature(buf, reg, a.cfg.Signature.GridSize)
	if cached, hit := a.cache.Lookup(sig); hit {
		cached.FromCache = true
		cached.FaceDetected = found
		return cached
	}

	samples := make([]sample, 0, len(pts)+len(sig)/3)
	for _, pt := range pts {
		samples = append(samples, sample{r: int(pt.r), g: int(pt.g), b: int(pt.b)})
	}
	// Signature cells act as additional virtual samples when they pass
	// the same skin predicate.
	for i := 0; i+2 < len(sig); i += 3 {
		r := clamp(sig[i], 0, 255)
		g := clamp(sig[i+1], 0, 255)
		b := clamp(sig[i+2], 0, 255)
		if a.cfg.Skin.IsSkin(uint8(r), uint8(g), uint8(b)) {
			samples = append(samples, sample{r: r, g: g, b: b})
		}
	}

	hash := sig.Hash(a.cfg.Palette.HashModulus)
	var res Result
	tone, blended, ok := classifyUndertone(samples, a.cfg.Undertone)
	if !ok {
		res = a.fallbackResult(found)
	} else {
		res = a.buildResult(tone, skinLabel(blended, tone), seasonFor(tone, hash), found)
	}
	res.SignatureHash = hash

	a.cache.Record(sig, res)
	return res
}

func (a *Analyzer) buildResult(tone Undertone, label string, season Season, face bool) Result {
	best, neutral, avoid := PaletteColors(season)
	return Result{
		Undertone:     tone,
		SkinLabel:     label,
		Season:        season,
		BestColors:    best,
		NeutralColors: neutral,
		AvoidColors:   avoid,
		FaceDetected:  face,
	}
}

func (a *Analyzer) fallbackResult(face bool) Result {
	return a.buildResult(UndertoneNeutral, "undetermined", a.cfg.Palette.DefaultSeason, face)
}

func pointsWithin(pts []skinPoint, reg Region) []skinPoint {
	kept := pts[:0]
	for _, pt := range pts {
		if pt.x >= reg.X && pt.x < reg.X+reg.Width && pt.y >= reg.Y && pt.y < reg.Y+reg.Height {
			kept = append(kept, pt)
		}
	}
	return kept
}
