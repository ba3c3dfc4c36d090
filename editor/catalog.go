package editor

import (
	"fmt"

	"garment-studio/core"
)

// garmentArt maps every garment style and surface to its base artwork. The
// catalog is closed: three styles, two surfaces, six entries.
var garmentArt = map[core.GarmentStyle]map[core.Surface]string{
	core.StyleSleeveless: {
		core.SurfaceFront: "/assets/shirts/sleeveless-front.jpg",
		core.SurfaceBack:  "/assets/shirts/sleeveless-back.jpg",
	},
	core.StyleHalfSleeve: {
		core.SurfaceFront: "/assets/shirts/half-sleeve-front.jpg",
		core.SurfaceBack:  "/assets/shirts/half-sleeve-back.jpg",
	},
	core.StyleFullSleeve: {
		core.SurfaceFront: "/assets/shirts/full-sleeve-front.jpg",
		core.SurfaceBack:  "/assets/shirts/full-sleeve-back.jpg",
	},
}

// GarmentImage returns the base garment artwork rendered behind the design
// elements. A missing entry is a programming error, not a runtime failure.
func GarmentImage(style core.GarmentStyle, surface core.Surface) string {
	art, ok := garmentArt[style][surface]
	if !ok {
		panic(fmt.Sprintf("no garment artwork for style %q surface %q", style, surface))
	}
	return art
}

// Styles returns the selectable garment styles in display order.
func Styles() []core.GarmentStyle {
	return []core.GarmentStyle{core.StyleSleeveless, core.StyleHalfSleeve, core.StyleFullSleeve}
}
