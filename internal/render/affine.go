package render

import "math"

// Affine is a 2D transform in row-major form:
//
//	| A C E |
//	| B D F |
type Affine struct {
	A, B, C, D, E, F float64
}

func Identity() Affine { return Affine{A: 1, D: 1} }

func Translation(x, y float64) Affine { return Affine{A: 1, D: 1, E: x, F: y} }

func Scaling(s float64) Affine { return Affine{A: s, D: s} }

func Rotation(rad float64) Affine {
	s, c := math.Sincos(rad)
	return Affine{A: c, B: s, C: -s, D: c}
}

// Mul returns m followed by n applied in local space (m * n).
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply transforms a point and narrows it for the vertex buffer.
func (m Affine) Apply(x, y float64) (float32, float32) {
	return float32(m.A*x + m.C*y + m.E), float32(m.B*x + m.D*y + m.F)
}

// ScaleFactor is the uniform scale of m, used to size tessellation.
func (m Affine) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}
