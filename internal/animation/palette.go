package animation

import (
	"image/color"
	"math/rand/v2"

	"basic-gui-threads/internal/models"
)

// GenerateColor draws one opaque color from the palette of mode
func GenerateColor(mode models.ColorMode, rng *rand.Rand) color.RGBA {
	switch mode {
	case models.ColorModeBlues:
		return color.RGBA{B: uint8(127 + rng.IntN(128)), A: 0xff}
	case models.ColorModeGreens:
		return color.RGBA{G: uint8(127 + rng.IntN(128)), A: 0xff}
	case models.ColorModeGrayscale:
		gray := uint8(rng.IntN(256))
		return color.RGBA{R: gray, G: gray, B: gray, A: 0xff}
	case models.ColorModePink:
		return color.RGBA{
			R: 0xff,
			G: uint8(170 + rng.IntN(40)),
			B: uint8(180 + rng.IntN(40)),
			A: 0xff,
		}
	default:
		return color.RGBA{
			R: uint8(rng.IntN(256)),
			G: uint8(rng.IntN(256)),
			B: uint8(rng.IntN(256)),
			A: 0xff,
		}
	}
}
