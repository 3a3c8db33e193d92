package color

// Named colors used throughout the demo scenes and tests.
var (
	Black   = CRGB{0, 0, 0}
	White   = CRGB{255, 255, 255}
	Red     = CRGB{255, 0, 0}
	Green   = CRGB{0, 255, 0}
	Blue    = CRGB{0, 0, 255}
	Yellow  = CRGB{255, 255, 0}
	Cyan    = CRGB{0, 255, 255}
	Magenta = CRGB{255, 0, 255}
	Orange  = CRGB{255, 165, 0}
	Purple  = CRGB{128, 0, 128}
)

var namedColors = map[string]CRGB{
	"black":   Black,
	"white":   White,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"yellow":  Yellow,
	"cyan":    Cyan,
	"magenta": Magenta,
	"orange":  Orange,
	"purple":  Purple,
}

// ByName looks up a color by its lowercase name.
func ByName(name string) (CRGB, bool) {
	c, ok := namedColors[name]
	return c, ok
}

// Predefined palettes, same anchor layout as the usual LED gradient sets.
var (
	RainbowColors = Palette{
		{255, 0, 0}, {213, 42, 0}, {171, 85, 0}, {171, 127, 0},
		{171, 171, 0}, {86, 213, 0}, {0, 255, 0}, {0, 213, 42},
		{0, 171, 85}, {0, 86, 170}, {0, 0, 255}, {42, 0, 213},
		{85, 0, 171}, {127, 0, 129}, {171, 0, 85}, {213, 0, 43},
	}

	PartyColors = Palette{
		{85, 0, 171}, {132, 0, 124}, {181, 0, 75}, {229, 0, 27},
		{232, 23, 0}, {184, 71, 0}, {171, 119, 0}, {171, 171, 0},
		{171, 85, 0}, {221, 34, 0}, {242, 0, 14}, {194, 0, 62},
		{143, 0, 113}, {95, 0, 161}, {47, 0, 208}, {0, 7, 249},
	}

	OceanColors = Palette{
		{25, 25, 112}, {0, 0, 139}, {25, 25, 112}, {0, 0, 128},
		{0, 0, 139}, {0, 0, 205}, {46, 139, 87}, {0, 128, 128},
		{95, 158, 160}, {0, 0, 255}, {0, 139, 139}, {100, 149, 237},
		{127, 255, 212}, {46, 139, 87}, {0, 255, 255}, {135, 206, 250},
	}

	LavaColors = Palette{
		{0, 0, 0}, {128, 0, 0}, {0, 0, 0}, {128, 0, 0},
		{139, 0, 0}, {128, 0, 0}, {139, 0, 0}, {139, 0, 0},
		{139, 0, 0}, {178, 34, 34}, {255, 0, 0}, {255, 165, 0},
		{255, 255, 255}, {255, 165, 0}, {255, 0, 0}, {139, 0, 0},
	}

	ForestColors = Palette{
		{0, 100, 0}, {0, 100, 0}, {85, 107, 47}, {0, 100, 0},
		{0, 128, 0}, {34, 139, 34}, {107, 142, 35}, {0, 128, 0},
		{46, 139, 87}, {102, 205, 170}, {50, 205, 50}, {154, 205, 50},
		{144, 238, 144}, {124, 252, 0}, {102, 205, 170}, {34, 139, 34},
	}

	CloudColors = Palette{
		{0, 0, 255}, {0, 0, 139}, {0, 0, 139}, {0, 0, 139},
		{0, 0, 139}, {0, 0, 139}, {0, 0, 139}, {0, 0, 139},
		{0, 0, 255}, {0, 0, 139}, {135, 206, 235}, {135, 206, 235},
		{173, 216, 230}, {255, 255, 255}, {173, 216, 230}, {135, 206, 235},
	}

	// HeatColors runs black -> red -> yellow -> white, for fire effects.
	HeatColors = FromGradient([]GradientStop{
		{0, Black},
		{85, Red},
		{170, CRGB{255, 255, 0}},
		{255, White},
	})
)
