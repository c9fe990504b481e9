package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the default perspective used for depth passes. World units match
// pixels on the z = 0 plane, the origin sits at the screen centre and +y points
// down, so (x, y, 0) lands on pixel (W/2 + x, H/2 + y).
type Camera struct {
	W, H     float64
	EyeZ     float64
	ViewProj mgl32.Mat4
}

const cameraFOV = math.Pi / 3

func NewCamera(w, h int) Camera {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	fw, fh := float64(w), float64(h)
	eyeZ := (fh / 2) / math.Tan(cameraFOV/2)
	proj := mgl32.Perspective(float32(cameraFOV), float32(fw/fh), float32(eyeZ/10), float32(eyeZ*10))
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, float32(eyeZ)}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	flip := mgl32.Scale3D(1, -1, 1)
	return Camera{W: fw, H: fh, EyeZ: eyeZ, ViewProj: proj.Mul4(view).Mul4(flip)}
}

// Project maps a world point to screen pixels. ok is false for points at or
// behind the eye.
func (c Camera) Project(x, y, z float64) (sx, sy float64, ok bool) {
	clip := c.ViewProj.Mul4x1(mgl32.Vec4{float32(x), float32(y), float32(z), 1})
	if clip.W() <= 0 {
		return 0, 0, false
	}
	nx := float64(clip.X() / clip.W())
	ny := float64(clip.Y() / clip.W())
	return (nx + 1) / 2 * c.W, (1 - ny) / 2 * c.H, true
}

// Perspective is the on-screen scale of a length at depth z.
func (c Camera) Perspective(z float64) float64 {
	d := c.EyeZ - z
	if d <= 1e-6 {
		return 0
	}
	return c.EyeZ / d
}

// Model builds a sphere transform: translate to (x, y, z), spin about z, scale to radius.
func Model(x, y, z, rotZ, radius float64) mgl32.Mat4 {
	return mgl32.Translate3D(float32(x), float32(y), float32(z)).
		Mul4(mgl32.HomogRotate3DZ(float32(rotZ))).
		Mul4(mgl32.Scale3D(float32(radius), float32(radius), float32(radius)))
}
