package render

import (
	"image/color"

	"gonum.org/v1/plot/palette"
)

var (
	salmon      = color.RGBA{R: 250, G: 128, B: 114, A: 255}
	green       = color.RGBA{G: 128, A: 255}
	red         = color.RGBA{R: 255, A: 255}
	purple      = color.RGBA{R: 128, B: 128, A: 255}
	orange      = color.RGBA{R: 255, G: 165, A: 255}
	saddleBrown = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	steelBlue   = color.RGBA{R: 70, G: 130, B: 180, A: 255}
)

// husl spreads n evenly spaced hues at a fixed saturation and value.
func husl(n int) []color.Color {
	return hues(n, 0.65, 0.85)
}

// pastel is a lighter, less saturated variant of husl.
func pastel(n int) []color.Color {
	return hues(n, 0.35, 0.97)
}

func hues(n int, sat, val float64) []color.Color {
	if n < 2 {
		return []color.Color{steelBlue}
	}
	// stop short of a full turn so the first and last colors differ
	end := palette.Hue(float64(n-1) / float64(n))
	return palette.Rainbow(n, palette.Red, end, sat, val, 1).Colors()
}
