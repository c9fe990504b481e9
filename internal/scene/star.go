package scene

import "math"

// Star is a fixed point in a pseudo-3D volume; only its twinkle animates.
type Star struct {
	X, Y, Z      float64
	Brightness   float64
	TwinkleSpeed float64
	TwinklePhase float64
}

func NewStar(rng *Rand, w, h float64) Star {
	return Star{
		X:            rng.RangeF(-w*2, w*2),
		Y:            rng.RangeF(-h*2, h*2),
		Z:            rng.RangeF(200, 2400),
		Brightness:   rng.RangeF(100, 255),
		TwinkleSpeed: rng.RangeF(0.01, 0.03),
		TwinklePhase: rng.Angle(),
	}
}

func (s *Star) Update() { s.TwinklePhase += s.TwinkleSpeed }

// Project returns the screen position, diameter and alpha (0..255).
func (s *Star) Project(w, h float64) (x, y, size, alpha float64) {
	f := math.Min(w, h) * 0.9
	x = w/2 + s.X/s.Z*f
	y = h/2 + s.Y/s.Z*f
	size = mapRange(s.Z, 200, 2400, 2.8, 0.6)
	alpha = s.Brightness * (0.7 + 0.3*math.Sin(s.TwinklePhase))
	return x, y, size, alpha
}
