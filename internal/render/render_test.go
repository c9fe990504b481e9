package render

import (
	"math"
	"strings"
	"testing"
)

func TestCameraMapsPlaneToPixels(t *testing.T) {
	c := NewCamera(800, 600)
	cases := []struct{ x, y, wantX, wantY float64 }{
		{0, 0, 400, 300},
		{100, 50, 500, 350},
		{-200, -150, 200, 150},
	}
	for _, tc := range cases {
		sx, sy, ok := c.Project(tc.x, tc.y, 0)
		if !ok {
			t.Fatalf("Project(%v,%v) not visible", tc.x, tc.y)
		}
		if math.Abs(sx-tc.wantX) > 0.5 || math.Abs(sy-tc.wantY) > 0.5 {
			t.Errorf("Project(%v,%v) = (%.2f,%.2f), want (%v,%v)", tc.x, tc.y, sx, sy, tc.wantX, tc.wantY)
		}
	}
}

func TestCameraDepthShrinks(t *testing.T) {
	c := NewCamera(800, 600)
	if p := c.Perspective(0); math.Abs(p-1) > 1e-9 {
		t.Fatalf("Perspective(0) = %v, want 1", p)
	}
	if c.Perspective(-1000) >= 1 {
		t.Error("far points should shrink")
	}
	if c.Perspective(c.EyeZ+1) != 0 {
		t.Error("points behind the eye should collapse")
	}
	sx, _, _ := c.Project(100, 0, -1000)
	if sx >= 500 || sx <= 400 {
		t.Errorf("distant point at x=100 projected to %v", sx)
	}
}

func TestAffineComposition(t *testing.T) {
	m := Translation(10, 20).Mul(Scaling(2)).Mul(Rotation(math.Pi / 2))
	x, y := m.Apply(1, 0)
	if math.Abs(float64(x)-10) > 1e-5 || math.Abs(float64(y)-22) > 1e-5 {
		t.Fatalf("Apply = (%v,%v), want (10,22)", x, y)
	}
	if s := m.ScaleFactor(); math.Abs(s-2) > 1e-9 {
		t.Fatalf("ScaleFactor = %v", s)
	}
}

func TestPassesAndBatching(t *testing.T) {
	d := NewDrawList(nil)
	d.Reset(640, 480, Gray(0, 255))
	d.FillRect(0, 0, 10, 10, Gray(255, 255))
	d.FillCircle(50, 50, 20, Gray(255, 255))
	d.Begin3D()
	d.Sphere(Model(0, 0, 0, 0, 40), Gray(200, 100))
	d.Begin2D()
	d.StrokeCircle(0, 0, 30, 2, Gray(255, 255))

	if len(d.Passes) != 3 {
		t.Fatalf("passes = %d, want 3", len(d.Passes))
	}
	if d.Passes[0].Depth || !d.Passes[1].Depth || d.Passes[2].Depth {
		t.Fatalf("depth flags wrong: %+v", []bool{d.Passes[0].Depth, d.Passes[1].Depth, d.Passes[2].Depth})
	}
	if n := len(d.Passes[0].Cmds); n != 1 {
		t.Fatalf("shapes should batch into one command, got %d", n)
	}
	if c := d.Passes[0].Cmds[0]; c.VertexCount()%3 != 0 || c.VertexCount() < 6+16*3 {
		t.Fatalf("unexpected vertex count %d", c.VertexCount())
	}
	if d.Passes[1].Cmds[0].Kind != CmdSphere {
		t.Fatal("3D pass should hold the sphere")
	}

	d.Reset(640, 480, Gray(0, 255))
	if len(d.Passes) != 0 {
		t.Fatal("Reset should drop passes")
	}
}

func TestEmptyPassIsReused(t *testing.T) {
	d := NewDrawList(nil)
	d.Reset(100, 100, Color{})
	d.Begin2D()
	d.Begin3D()
	if len(d.Passes) != 1 || !d.Passes[0].Depth {
		t.Fatalf("empty pass should be re-flagged, got %+v", d.Passes)
	}
}

func TestPushPopTransform(t *testing.T) {
	d := NewDrawList(nil)
	d.Reset(100, 100, Color{})
	d.Push()
	d.Translate(50, 50)
	d.Triangle(0, 0, 1, 0, 0, 1, Gray(255, 255))
	d.Pop()
	d.Triangle(0, 0, 1, 0, 0, 1, Gray(255, 255))
	v := d.Passes[0].Cmds[0].Verts
	if v[0] != 50 || v[1] != 50 {
		t.Fatalf("translated vertex = (%v,%v)", v[0], v[1])
	}
	if v[3*ShapeStride] != 0 || v[3*ShapeStride+1] != 0 {
		t.Fatalf("Pop did not restore identity: (%v,%v)", v[3*ShapeStride], v[3*ShapeStride+1])
	}
}

func TestDegenerateShapesEmitNothing(t *testing.T) {
	d := NewDrawList(nil)
	d.Reset(100, 100, Color{})
	d.FillCircle(0, 0, 0, Gray(255, 255))
	d.FillArc(0, 0, 10, 1, 1, Gray(255, 255))
	d.Polyline([]Point{{1, 1}}, 3, Gray(255, 255))
	d.FillRoundRect(0, 0, 0, 10, 2, Gray(255, 255))
	for _, p := range d.Passes {
		for _, c := range p.Cmds {
			if c.VertexCount() != 0 {
				t.Fatalf("degenerate shape emitted %d vertices", c.VertexCount())
			}
		}
	}
}

func TestUnitSphere(t *testing.T) {
	m := UnitSphere(SphereDetailX, SphereDetailY)
	wantVerts := (SphereDetailX + 1) * (SphereDetailY + 1)
	if len(m.Verts) != wantVerts*6 {
		t.Fatalf("verts = %d, want %d", len(m.Verts)/6, wantVerts)
	}
	if len(m.Indices) != SphereDetailX*SphereDetailY*6 {
		t.Fatalf("indices = %d", len(m.Indices))
	}
	for i := 0; i < len(m.Verts); i += 6 {
		x, y, z := m.Verts[i], m.Verts[i+1], m.Verts[i+2]
		if r := math.Sqrt(float64(x*x + y*y + z*z)); math.Abs(r-1) > 1e-5 {
			t.Fatalf("vertex %d radius %v", i/6, r)
		}
	}
}

func TestColorClamps(t *testing.T) {
	c := RGBA(300, -5, 127.5, 255)
	if c.R != 1 || c.G != 0 || math.Abs(float64(c.B)-0.5) > 1e-6 || c.A != 1 {
		t.Fatalf("RGBA clamp = %+v", c)
	}
	if got := c.WithAlpha(0).A; got != 0 {
		t.Fatalf("WithAlpha = %v", got)
	}
}

func TestAtlasMeasuresAndWraps(t *testing.T) {
	f, err := LoadFonts()
	if err != nil {
		t.Fatalf("LoadFonts: %v", err)
	}
	a := f.Sans
	if w := a.Width("", 20); w != 0 {
		t.Fatalf("empty width = %v", w)
	}
	w1 := a.Width("hello", 20)
	w2 := a.Width("hello", 40)
	if w1 <= 0 || math.Abs(w2-2*w1) > 1e-6 {
		t.Fatalf("width should scale linearly: %v %v", w1, w2)
	}
	if a.Width("é", 20) != a.Width("?", 20) {
		t.Error("runes outside the atlas should measure as '?'")
	}

	s := "Let's discover songs you don't know from others' perspectives."
	lines := a.Wrap(s, 28, 300)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %q", lines)
	}
	if strings.Join(lines, " ") != s {
		t.Fatalf("wrap lost text: %q", lines)
	}
	for _, l := range lines {
		if strings.Contains(l, " ") && a.Width(l, 28) > 300 {
			t.Errorf("line %q exceeds width", l)
		}
	}

	mono := f.Mono
	if math.Abs(mono.Width("iiii", 16)-mono.Width("MMMM", 16)) > 1e-6 {
		t.Error("mono atlas should have uniform advances")
	}
}

func TestTextEmitsQuads(t *testing.T) {
	f, err := LoadFonts()
	if err != nil {
		t.Fatal(err)
	}
	d := NewDrawList(f)
	d.Reset(800, 600, Color{})
	d.Text("a b", 400, 300, 24, AlignCenter, Gray(255, 255))
	c := d.Passes[0].Cmds[0]
	if c.Kind != CmdTextured || c.Tex != TexSans {
		t.Fatalf("cmd = %v/%v", c.Kind, c.Tex)
	}
	if c.VertexCount() != 12 {
		t.Fatalf("two visible glyphs should give 12 vertices, got %d", c.VertexCount())
	}
	minX, maxX := float32(math.Inf(1)), float32(math.Inf(-1))
	for i := 0; i < len(c.Verts); i += TexturedStride {
		minX = min(minX, c.Verts[i])
		maxX = max(maxX, c.Verts[i])
	}
	if mid := (minX + maxX) / 2; math.Abs(float64(mid)-400) > 6 {
		t.Errorf("centred text midpoint = %v", mid)
	}
}

var sink int

func explode() {
	panic("boom")
}

func TestRecoverLocatesPanicSite(t *testing.T) {
	var f *Fault
	func() {
		defer func() { f = Recover(recover()) }()
		explode()
	}()
	if f == nil {
		t.Fatal("no fault recovered")
	}
	if f.Message != "boom" {
		t.Errorf("message = %q", f.Message)
	}
	if !strings.HasSuffix(f.File, "render_test.go") || f.Line == 0 {
		t.Errorf("location = %s:%d", f.File, f.Line)
	}
	if !strings.Contains(f.Error(), "render_test.go") {
		t.Errorf("Error() = %q", f.Error())
	}
}

func TestRecoverRuntimeError(t *testing.T) {
	var f *Fault
	func() {
		defer func() { f = Recover(recover()) }()
		var xs []int
		sink = xs[3]
	}()
	if f == nil || !strings.Contains(f.Message, "index out of range") {
		t.Fatalf("fault = %+v", f)
	}
	if !strings.HasSuffix(f.File, "render_test.go") {
		t.Errorf("runtime frames should be skipped, got %s", f.File)
	}
	if Recover(nil) != nil {
		t.Error("Recover(nil) should be nil")
	}
}

func TestFaultPanel(t *testing.T) {
	f, err := LoadFonts()
	if err != nil {
		t.Fatal(err)
	}
	d := NewDrawList(f)
	d.Reset(400, 300, Gray(50, 255))
	d.FillRect(0, 0, 10, 10, Gray(255, 255))
	d.FaultPanel(&Fault{Message: "bad thing", File: "/x/scene.go", Line: 42})
	if d.Clear != RGBA(0, 0, 0, 255) {
		t.Fatalf("clear = %+v", d.Clear)
	}
	for _, p := range d.Passes {
		for _, c := range p.Cmds {
			if c.Kind != CmdTextured || c.Tex != TexMono {
				t.Fatalf("fault panel should only hold mono text, got %v", c.Kind)
			}
		}
	}
}
