package scene

import "soundbubbles/internal/render"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func lerpU8(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{R: lerpU8(a.R, b.R, t), G: lerpU8(a.G, b.G, t), B: lerpU8(a.B, b.B, t)}
}

// Alpha converts c to a draw colour with alpha in 0..255.
func (c RGB) Alpha(a float64) render.Color {
	return render.RGBA(float64(c.R), float64(c.G), float64(c.B), a)
}

func randRGB(rng *Rand, lo, hi [3]float64) RGB {
	return RGB{
		R: uint8(rng.RangeF(lo[0], hi[0])),
		G: uint8(rng.RangeF(lo[1], hi[1])),
		B: uint8(rng.RangeF(lo[2], hi[2])),
	}
}

// Backdrop colours.
var (
	Night      = RGB{5, 10, 20}
	IntroNight = RGB{10, 15, 25}
	PanelInk   = RGB{20, 25, 35}
)

// Rim colour endpoints for the soap-film shimmer.
var (
	rimCyan   = RGB{120, 220, 255}
	rimPink   = RGB{255, 180, 230}
	rimGreen  = RGB{150, 255, 150}
	rimYellow = RGB{255, 240, 150}
)

// bubbleTints are the eight [lo, hi] channel ranges a bubble colour is drawn from.
var bubbleTints = [8][2][3]float64{
	{{80, 150, 200}, {150, 220, 255}},
	{{180, 100, 200}, {255, 180, 255}},
	{{220, 150, 80}, {255, 200, 140}},
	{{100, 200, 150}, {180, 255, 200}},
	{{220, 100, 140}, {255, 150, 200}},
	{{80, 200, 200}, {150, 255, 255}},
	{{150, 100, 220}, {200, 160, 255}},
	{{180, 220, 100}, {230, 255, 160}},
}
