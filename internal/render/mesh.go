package render

import "math"

const (
	SphereDetailX = 24
	SphereDetailY = 16
)

// Mesh is an indexed triangle list with interleaved position and normal.
type Mesh struct {
	Verts   []float32 // x, y, z, nx, ny, nz
	Indices []uint16
}

// UnitSphere builds a latitude/longitude sphere of radius 1 with outward,
// counter-clockwise faces.
func UnitSphere(detailX, detailY int) Mesh {
	if detailX < 3 {
		detailX = 3
	}
	if detailY < 2 {
		detailY = 2
	}
	var m Mesh
	for j := 0; j <= detailY; j++ {
		phi := math.Pi * float64(j) / float64(detailY)
		sp, cp := math.Sincos(phi)
		for i := 0; i <= detailX; i++ {
			theta := 2 * math.Pi * float64(i) / float64(detailX)
			st, ct := math.Sincos(theta)
			x, y, z := float32(sp*ct), float32(cp), float32(sp*st)
			m.Verts = append(m.Verts, x, y, z, x, y, z)
		}
	}
	row := detailX + 1
	for j := 0; j < detailY; j++ {
		for i := 0; i < detailX; i++ {
			a := uint16(j*row + i)
			b := a + uint16(row)
			m.Indices = append(m.Indices, a, a+1, b, b, a+1, b+1)
		}
	}
	return m
}
