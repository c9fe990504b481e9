package render

// Color is a straight (non-premultiplied) RGBA colour with channels in 0..1.
type Color struct {
	R, G, B, A float32
}

// RGBA builds a colour from 0..255 channel values; out-of-range input is clamped.
func RGBA(r, g, b, a float64) Color {
	return Color{R: unit(r), G: unit(g), B: unit(b), A: unit(a)}
}

// Gray builds a grey level colour from 0..255 values.
func Gray(v, a float64) Color {
	return RGBA(v, v, v, a)
}

// WithAlpha returns c with alpha replaced by a (0..255).
func (c Color) WithAlpha(a float64) Color {
	c.A = unit(a)
	return c
}

// Lerp blends two colours channel-wise.
func Lerp(a, b Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	f := float32(t)
	return Color{
		R: a.R + (b.R-a.R)*f,
		G: a.G + (b.G-a.G)*f,
		B: a.B + (b.B-a.B)*f,
		A: a.A + (b.A-a.A)*f,
	}
}

func unit(v float64) float32 {
	v /= 255
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return float32(v)
}
