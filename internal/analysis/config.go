package analysis

// Config holds all tunable parameters for the analysis pipeline.
type Config struct {
	Skin      SkinConfig
	Region    RegionConfig
	Signature SignatureConfig
	Undertone UndertoneConfig
	Cache     CacheConfig
	Palette   PaletteConfig
}

// SkinConfig holds the bounds and tolerances of the skin-pixel predicate.
type SkinConfig struct {
	MinRed         int // Lower bound for the red channel
	MinGreen       int // Lower bound for the green channel
	MinBlue        int // Lower bound for the blue channel
	MaxChannel     int // Upper bound for every channel; rejects overexposed pixels
	BlueTolerance  int // Red may trail blue by at most this much
	RedGreenSpread int // Max absolute red/green divergence
	GreenTolerance int // Red may trail green by at most this much
}

// RegionConfig holds parameters for face-region localization.
type RegionConfig struct {
	WindowInsetX    float64 // Fraction of width cropped from each side of the candidate window
	WindowHeight    float64 // Fraction of height scanned from the top
	SampleStride    int     // Pixel step while scanning the candidate window
	MinSkinFraction float64 // Min fraction of scanned samples that must be skin
	MinAspect       float64 // Min accepted bounding-box aspect ratio (w/h), inclusive
	MaxAspect       float64 // Max accepted bounding-box aspect ratio (w/h), inclusive
	MinBoxDensity   float64 // Min skin-sample density inside the bounding box
	PadFraction     float64 // Box is grown by this fraction of its own size before clamping
	MinDimension    int     // Regions narrower than this in either axis are rejected
}

// SignatureConfig holds parameters for signature extraction.
type SignatureConfig struct {
	GridSize int // Cells per axis; GridSize*GridSize cells, 3 values each
}

// UndertoneConfig holds parameters for undertone classification.
type UndertoneConfig struct {
	MinSamples         int     // Below this many skin samples the result is neutral
	MedianWeight       float64 // Weight of the median sample in the blend; mean gets the rest
	WarmRedBlueMargin  int     // Warm requires red-blue margin above this
	WarmRedGreenMargin int     // Warm requires red-green margin above this
	CoolRedBlueMargin  int     // Cool when the red-blue margin falls below this
}

// CacheConfig holds parameters for the consistency cache.
type CacheConfig struct {
	Capacity            int     // Max retained entries; oldest evicted first
	SimilarityThreshold float64 // A prior entry is reused when similarity exceeds this
	DiffScale           float64 // Scale applied to mean absolute diff in the similarity score
}

// PaletteConfig holds parameters for the hash-to-palette mapping.
type PaletteConfig struct {
	HashModulus   int    // Signature hash is folded into [0, HashModulus)
	DefaultSeason Season // Season used when classification has no evidence
}

// DefaultConfig returns a Config with the reference tuning.
func DefaultConfig() Config {
	return Config{
		Skin: SkinConfig{
			MinRed:         50,
			MinGreen:       35,
			MinBlue:        20,
			MaxChannel:     250,
			BlueTolerance:  15,
			RedGreenSpread: 80,
			GreenTolerance: 15,
		},
		Region: RegionConfig{
			WindowInsetX:    0.125,
			WindowHeight:    0.67,
			SampleStride:    2,
			MinSkinFraction: 0.01,
			MinAspect:       0.5,
			MaxAspect:       2.0,
			MinBoxDensity:   0.2,
			PadFraction:     0.5,
			MinDimension:    10,
		},
		Signature: SignatureConfig{
			GridSize: 5,
		},
		Undertone: UndertoneConfig{
			MinSamples:         40,
			MedianWeight:       0.7,
			WarmRedBlueMargin:  20,
			WarmRedGreenMargin: 12,
			CoolRedBlueMargin:  10,
		},
		Cache: CacheConfig{
			Capacity:            5,
			SimilarityThreshold: 80.0,
			DiffScale:           0.4,
		},
		Palette: PaletteConfig{
			HashModulus:   1_000_000,
			DefaultSeason: SeasonSummer,
		},
	}
}
