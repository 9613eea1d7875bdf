package analysis

// Season names one of the four seasonal color palettes.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// Seasons lists every palette in a fixed order.
func Seasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}
}

// ValidSeason reports whether s names a known palette.
func ValidSeason(s Season) bool {
	_, ok := palettes[s]
	return ok
}

// ColorEntry is one curated recommendation color. Static reference data,
// never derived from the input image.
type ColorEntry struct {
	Name        string `json:"name"`
	Hex         string `json:"hex"`
	Description string `json:"description"`
}

type paletteSet struct {
	best    []ColorEntry
	neutral []ColorEntry
	avoid   []ColorEntry
}

// seasonFor maps an undertone and a stable signature hash onto a season.
// Warm skin splits between the two warm palettes, cool between the two
// cool ones, and neutral may land anywhere; the hash keeps the choice
// deterministic per signature.
func seasonFor(tone Undertone, hash int) Season {
	bucket := hash % 100
	if bucket < 0 {
		bucket = -bucket
	}
	switch tone {
	case UndertoneWarm:
		if bucket < 50 {
			return SeasonSpring
		}
		return SeasonAutumn
	case UndertoneCool:
		if bucket < 50 {
			return SeasonSummer
		}
		return SeasonWinter
	default:
		switch {
		case bucket < 25:
			return SeasonSpring
		case bucket < 50:
			return SeasonSummer
		case bucket < 75:
			return SeasonAutumn
		default:
			return SeasonWinter
		}
	}
}

// PaletteColors returns the curated best/neutral/avoid lists for a season.
// Unknown seasons fall back to summer so the lookup is total.
func PaletteColors(s Season) (best, neutral, avoid []ColorEntry) {
	set, ok := palettes[s]
	if !ok {
		set = palettes[SeasonSummer]
	}
	return set.best, set.neutral, set.avoid
}

var palettes = map[Season]paletteSet{
	SeasonSpring: {
		best: []ColorEntry{
			{Name: "Coral", Hex: "#FF6F61", Description: "Lively warm pink-orange that brightens the face"},
			{Name: "Salmon", Hex: "#FA8072", Description: "Soft warm pink with golden depth"},
			{Name: "Peach", Hex: "#FFB347", Description: "Sunny mid-tone that echoes a golden undertone"},
			{Name: "Golden Yellow", Hex: "#FFD166", Description: "Clear warm yellow, best near the face"},
			{Name: "Apple Green", Hex: "#8DB600", Description: "Fresh yellow-green with spring clarity"},
			{Name: "Turquoise", Hex: "#40E0D0", Description: "Bright warm-leaning aqua"},
			{Name: "Warm Pink", Hex: "#FF69B4", Description: "Vivid pink that stays on the warm side"},
			{Name: "Periwinkle", Hex: "#AEC6FF", Description: "Light clear blue for contrast pieces"},
		},
		neutral: []ColorEntry{
			{Name: "Ivory", Hex: "#FFFFF0", Description: "Soft warm white instead of stark white"},
			{Name: "Camel", Hex: "#C19A6B", Description: "Golden tan base for coats and knits"},
			{Name: "Warm Beige", Hex: "#E8D6B3", Description: "Light sandy neutral"},
			{Name: "Light Warm Gray", Hex: "#D3CBC2", Description: "Gray warmed toward taupe"},
		},
		avoid: []ColorEntry{
			{Name: "Black", Hex: "#000000", Description: "Too heavy against a light warm complexion"},
			{Name: "Pure White", Hex: "#FFFFFF", Description: "Stark white washes out golden skin"},
			{Name: "Burgundy", Hex: "#800020", Description: "Deep cool red drains spring coloring"},
			{Name: "Charcoal", Hex: "#36454F", Description: "Cool near-black dulls warm brightness"},
		},
	},
	SeasonSummer: {
		best: []ColorEntry{
			{Name: "Powder Blue", Hex: "#B0E0E6", Description: "Soft cool blue that flatters rosy skin"},
			{Name: "Sky Blue", Hex: "#87CEEB", Description: "Light clear blue with gray softness"},
			{Name: "Lavender", Hex: "#E6E6FA", Description: "Muted violet, gentle near the face"},
			{Name: "Soft Rose", Hex: "#F7CAC9", Description: "Dusty pink matching a cool flush"},
			{Name: "Mauve", Hex: "#C8A2C8", Description: "Grayed purple-pink, a summer staple"},
			{Name: "Seafoam", Hex: "#93E9BE", Description: "Cool pale green with a blue cast"},
			{Name: "Slate Blue", Hex: "#6A5ACD", Description: "Deeper blue-violet for contrast"},
			{Name: "Raspberry", Hex: "#B3446C", Description: "Cool berry red instead of warm red"},
		},
		neutral: []ColorEntry{
			{Name: "Soft White", Hex: "#F5F5F5", Description: "Off-white, kinder than pure white"},
			{Name: "Dove Gray", Hex: "#B8B8B8", Description: "Light cool gray base"},
			{Name: "Rose Taupe", Hex: "#905D5D", Description: "Cool pink-brown neutral"},
			{Name: "Soft Navy", Hex: "#34496B", Description: "Grayed navy instead of black"},
		},
		avoid: []ColorEntry{
			{Name: "Orange", Hex: "#FF8C00", Description: "Strong warm orange clashes with cool skin"},
			{Name: "Tomato Red", Hex: "#FF6347", Description: "Warm red pulls skin sallow"},
			{Name: "Mustard", Hex: "#FFDB58", Description: "Warm yellow overwhelms muted coloring"},
			{Name: "Warm Brown", Hex: "#8B4513", Description: "Golden brown fights the cool base"},
		},
	},
	SeasonAutumn: {
		best: []ColorEntry{
			{Name: "Rust", Hex: "#B7410E", Description: "Deep warm red-orange, a signature shade"},
			{Name: "Terracotta", Hex: "#E2725B", Description: "Earthy clay tone close to the skin"},
			{Name: "Burnt Orange", Hex: "#CC5500", Description: "Rich orange with brown depth"},
			{Name: "Mustard", Hex: "#FFDB58", Description: "Golden spice yellow"},
			{Name: "Olive", Hex: "#808000", Description: "Muted warm green"},
			{Name: "Moss Green", Hex: "#8A9A5B", Description: "Soft earthy green"},
			{Name: "Teal", Hex: "#008080", Description: "Deep blue-green, the autumn blue"},
			{Name: "Gold", Hex: "#D4AF37", Description: "Metallic warmth for accents"},
		},
		neutral: []ColorEntry{
			{Name: "Cream", Hex: "#FFFDD0", Description: "Warm white base"},
			{Name: "Camel", Hex: "#C19A6B", Description: "Classic golden tan"},
			{Name: "Chocolate", Hex: "#7B3F00", Description: "Deep warm brown instead of black"},
			{Name: "Olive Gray", Hex: "#8F8B66", Description: "Green-cast gray neutral"},
		},
		avoid: []ColorEntry{
			{Name: "Fuchsia", Hex: "#FF00FF", Description: "Cool neon pink fights earthy warmth"},
			{Name: "Icy Blue", Hex: "#D6ECEF", Description: "Frosted pastel reads washed out"},
			{Name: "Pure White", Hex: "#FFFFFF", Description: "Stark white is too cool and bright"},
			{Name: "Cool Gray", Hex: "#8C92AC", Description: "Blue-gray dulls golden skin"},
		},
	},
	SeasonWinter: {
		best: []ColorEntry{
			{Name: "True Red", Hex: "#C8102E", Description: "Clear blue-based red"},
			{Name: "Royal Blue", Hex: "#4169E1", Description: "Saturated cool blue"},
			{Name: "Emerald", Hex: "#50C878", Description: "Jewel green with high clarity"},
			{Name: "Magenta", Hex: "#D0417E", Description: "Vivid cool pink"},
			{Name: "Violet", Hex: "#8F00FF", Description: "Deep clear purple"},
			{Name: "Hot Pink", Hex: "#FF69B4", Description: "High-contrast pink accent"},
			{Name: "Icy Blue", Hex: "#AFDBF5", Description: "Frosted pastel, crisp not muted"},
			{Name: "Lemon Ice", Hex: "#FFF44F", Description: "Sharp cool yellow in small doses"},
		},
		neutral: []ColorEntry{
			{Name: "Black", Hex: "#000000", Description: "True black carries winter contrast"},
			{Name: "Pure White", Hex: "#FFFFFF", Description: "Stark white, crisp against cool skin"},
			{Name: "Charcoal", Hex: "#36454F", Description: "Deep cool gray"},
			{Name: "Navy", Hex: "#000080", Description: "Dark saturated blue base"},
		},
		avoid: []ColorEntry{
			{Name: "Orange", Hex: "#FF8C00", Description: "Warm orange overwhelms cool contrast"},
			{Name: "Rust", Hex: "#B7410E", Description: "Earthy warm red muddies the palette"},
			{Name: "Camel", Hex: "#C19A6B", Description: "Golden tan reads dull on winter coloring"},
			{Name: "Olive", Hex: "#808000", Description: "Muted warm green flattens clear skin"},
		},
	},
}
