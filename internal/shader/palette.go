// internal/shader/palette.go
package shader

// RGB is a base palette entry.
type RGB struct {
	R, G, B float32
}

// PaletteSize is the number of entries per body class. Palette indices wrap.
const PaletteSize = 4

var (
	// RockyPalette: earth, blue-grey, grey, brown.
	RockyPalette = [PaletteSize]RGB{
		{0.55, 0.48, 0.38},
		{0.38, 0.42, 0.60},
		{0.65, 0.62, 0.5},
		{0.7, 0.5, 0.3},
	}
	// GasPalette: yellow, light blue, green, fallback grey.
	GasPalette = [PaletteSize]RGB{
		{0.95, 0.7, 0.25},
		{0.45, 0.7, 0.95},
		{0.7, 0.9, 0.6},
		{0.6, 0.6, 0.6},
	}
)

// BasePalette selects the base colour for a body class and palette index.
func BasePalette(gas bool, index uint) RGB {
	if gas {
		return GasPalette[index%PaletteSize]
	}
	return RockyPalette[index%PaletteSize]
}
