package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CmdKind selects the pipeline a command is drawn with.
type CmdKind uint8

const (
	CmdShapes   CmdKind = iota // coloured triangles: x, y, r, g, b, a
	CmdTextured                // textured triangles: x, y, u, v, r, g, b, a
	CmdSphere                  // one lit sphere instance
)

// Floats per vertex for each batched command kind.
const (
	ShapeStride    = 6
	TexturedStride = 8
)

// TexID names a texture slot. Non-negative IDs are avatar images.
type TexID int

const (
	TexSans TexID = -1
	TexMono TexID = -2
)

// SphereInstance is one sphere draw: a unit sphere transformed by Model.
type SphereInstance struct {
	Model mgl32.Mat4
	Color Color
}

type Cmd struct {
	Kind   CmdKind
	Verts  []float32
	Tex    TexID
	Sphere SphereInstance
}

// Pass is a run of commands drawn with one depth-test setting. Overlay passes
// (Depth == false) are drawn in screen pixels with the depth test disabled.
type Pass struct {
	Depth bool
	Cmds  []Cmd
}

// DrawList is the per-frame output of the scene: an ordered list of passes
// that a GL backend replays.
type DrawList struct {
	W, H   int
	Clear  Color
	Camera Camera
	Passes []Pass

	fonts *Fonts
	xf    Affine
	stack []Affine
}

func NewDrawList(fonts *Fonts) *DrawList {
	return &DrawList{fonts: fonts, xf: Identity()}
}

func (d *DrawList) Fonts() *Fonts { return d.fonts }

// Reset clears the list for a new frame of the given framebuffer size.
func (d *DrawList) Reset(w, h int, clear Color) {
	d.W, d.H = w, h
	d.Clear = clear
	d.Camera = NewCamera(w, h)
	for i := range d.Passes {
		d.Passes[i].Cmds = d.Passes[i].Cmds[:0]
	}
	d.Passes = d.Passes[:0]
	d.xf = Identity()
	d.stack = d.stack[:0]
}

// Background replaces the clear colour and drops everything drawn so far.
func (d *DrawList) Background(c Color) {
	d.Reset(d.W, d.H, c)
}

// Begin2D opens an overlay pass (depth test disabled).
func (d *DrawList) Begin2D() { d.begin(false) }

// Begin3D opens a depth-tested pass for sphere geometry.
func (d *DrawList) Begin3D() { d.begin(true) }

func (d *DrawList) begin(depth bool) {
	if n := len(d.Passes); n > 0 && len(d.Passes[n-1].Cmds) == 0 {
		d.Passes[n-1].Depth = depth
		return
	}
	d.Passes = append(d.Passes, Pass{Depth: depth})
}

func (d *DrawList) pass() *Pass {
	if len(d.Passes) == 0 {
		d.Begin2D()
	}
	return &d.Passes[len(d.Passes)-1]
}

// Push saves the current 2D transform.
func (d *DrawList) Push() { d.stack = append(d.stack, d.xf) }

// Pop restores the last saved 2D transform.
func (d *DrawList) Pop() {
	if n := len(d.stack); n > 0 {
		d.xf = d.stack[n-1]
		d.stack = d.stack[:n-1]
	}
}

func (d *DrawList) Translate(x, y float64) { d.xf = d.xf.Mul(Translation(x, y)) }
func (d *DrawList) Scale(s float64)        { d.xf = d.xf.Mul(Scaling(s)) }
func (d *DrawList) Rotate(rad float64)     { d.xf = d.xf.Mul(Rotation(rad)) }

// batch returns the vertex slice of a trailing command of the same kind and
// texture, starting a new command when needed.
func (d *DrawList) batch(kind CmdKind, tex TexID) *Cmd {
	p := d.pass()
	if n := len(p.Cmds); n > 0 {
		last := &p.Cmds[n-1]
		if last.Kind == kind && last.Tex == tex {
			return last
		}
	}
	p.Cmds = append(p.Cmds, Cmd{Kind: kind, Tex: tex})
	return &p.Cmds[len(p.Cmds)-1]
}

func (d *DrawList) tri(c *Cmd, col Color, x1, y1, x2, y2, x3, y3 float64) {
	ax, ay := d.xf.Apply(x1, y1)
	bx, by := d.xf.Apply(x2, y2)
	cx, cy := d.xf.Apply(x3, y3)
	c.Verts = append(c.Verts,
		ax, ay, col.R, col.G, col.B, col.A,
		bx, by, col.R, col.G, col.B, col.A,
		cx, cy, col.R, col.G, col.B, col.A,
	)
}

func (d *DrawList) quad(c *Cmd, col Color, x1, y1, x2, y2, x3, y3, x4, y4 float64) {
	d.tri(c, col, x1, y1, x2, y2, x3, y3)
	d.tri(c, col, x1, y1, x3, y3, x4, y4)
}

// Sphere queues a lit sphere. It must be called inside a Begin3D pass.
func (d *DrawList) Sphere(model mgl32.Mat4, col Color) {
	p := d.pass()
	p.Cmds = append(p.Cmds, Cmd{Kind: CmdSphere, Sphere: SphereInstance{Model: model, Color: col}})
}

// Image queues a textured quad centred on (cx, cy).
func (d *DrawList) Image(tex TexID, cx, cy, w, h float64, tint Color) {
	c := d.batch(CmdTextured, tex)
	x0, y0 := cx-w/2, cy-h/2
	x1, y1 := cx+w/2, cy+h/2
	d.texQuad(c, tint, x0, y0, x1, y1, 0, 0, 1, 1)
}

func (d *DrawList) texQuad(c *Cmd, col Color, x0, y0, x1, y1 float64, u0, v0, u1, v1 float32) {
	ax, ay := d.xf.Apply(x0, y0)
	bx, by := d.xf.Apply(x1, y0)
	cx, cy := d.xf.Apply(x1, y1)
	dx, dy := d.xf.Apply(x0, y1)
	c.Verts = append(c.Verts,
		ax, ay, u0, v0, col.R, col.G, col.B, col.A,
		bx, by, u1, v0, col.R, col.G, col.B, col.A,
		cx, cy, u1, v1, col.R, col.G, col.B, col.A,
		ax, ay, u0, v0, col.R, col.G, col.B, col.A,
		cx, cy, u1, v1, col.R, col.G, col.B, col.A,
		dx, dy, u0, v1, col.R, col.G, col.B, col.A,
	)
}

// VertexCount reports the number of batched vertices in a command.
func (c Cmd) VertexCount() int {
	switch c.Kind {
	case CmdShapes:
		return len(c.Verts) / ShapeStride
	case CmdTextured:
		return len(c.Verts) / TexturedStride
	default:
		return 0
	}
}

// segmentsFor picks a circle tessellation level for an on-screen radius.
func segmentsFor(r float64) int {
	n := int(math.Ceil(r * 0.75))
	if n < 16 {
		return 16
	}
	if n > 96 {
		return 96
	}
	return n
}
