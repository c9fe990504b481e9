package render

import "github.com/go-gl/mathgl/mgl32"

// DirLight is a directional light; Dir points from the light into the scene.
type DirLight struct {
	Color mgl32.Vec3
	Dir   mgl32.Vec3
}

// Sphere lighting. Colours are normalised 0..1.
var (
	Ambient = mgl32.Vec3{18.0 / 255, 18.0 / 255, 24.0 / 255}
	Lights  = [2]DirLight{
		{Color: mgl32.Vec3{55.0 / 255, 55.0 / 255, 65.0 / 255}, Dir: mgl32.Vec3{-0.2, -0.6, -1}.Normalize()},
		{Color: mgl32.Vec3{28.0 / 255, 32.0 / 255, 45.0 / 255}, Dir: mgl32.Vec3{0.8, 0.2, -1}.Normalize()},
	}
)

const (
	Specular  = 80.0 / 255
	Shininess = 10
	// Emissive keeps the translucent shells visible under the dim rig.
	Emissive = 0.35
)
