package screen

import "image/color"

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15),
// 216 color cube (16-231), 24 grayscale (232-255).
var DefaultPalette [256]color.RGBA

func init() {
	named := [16]color.RGBA{
		{0, 0, 0, 255}, {205, 49, 49, 255}, {13, 188, 121, 255}, {229, 229, 16, 255},
		{36, 114, 200, 255}, {188, 63, 188, 255}, {17, 168, 205, 255}, {229, 229, 229, 255},
		{102, 102, 102, 255}, {241, 76, 76, 255}, {35, 209, 139, 255}, {245, 245, 67, 255},
		{59, 142, 234, 255}, {214, 112, 214, 255}, {41, 184, 219, 255}, {255, 255, 255, 255},
	}
	copy(DefaultPalette[:16], named[:])

	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51), A: 255}
				i++
			}
		}
	}
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{R: gray, G: gray, B: gray, A: 255}
	}
}

// DefaultForeground and DefaultBackground are used whenever a Cell's Fg/Bg
// is ColorDefault.
var (
	DefaultForeground = color.RGBA{R: 229, G: 229, B: 229, A: 255}
	DefaultBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// ResolveRGB converts a Cell color index (or ColorDefault) to a concrete
// RGBA, used by snapshotting consumers that want to describe presentation
// rather than just the index.
func ResolveRGB(index int, fg bool) color.RGBA {
	switch {
	case index == ColorDefault:
		if fg {
			return DefaultForeground
		}
		return DefaultBackground
	case index >= 0 && index < 256:
		return DefaultPalette[index]
	default:
		if fg {
			return DefaultForeground
		}
		return DefaultBackground
	}
}
