package render

import "math"

// Point is a 2D position in local draw space.
type Point struct{ X, Y float64 }

// FillRect fills an axis-aligned rectangle with its top-left corner at (x, y).
func (d *DrawList) FillRect(x, y, w, h float64, col Color) {
	c := d.batch(CmdShapes, 0)
	d.quad(c, col, x, y, x+w, y, x+w, y+h, x, y+h)
}

// FillScreen covers the whole framebuffer regardless of the current transform.
func (d *DrawList) FillScreen(col Color) {
	d.Push()
	d.xf = Identity()
	d.FillRect(0, 0, float64(d.W), float64(d.H), col)
	d.Pop()
}

// FillCircle fills a circle of diameter dia centred on (cx, cy).
func (d *DrawList) FillCircle(cx, cy, dia float64, col Color) {
	d.FillArc(cx, cy, dia, 0, 2*math.Pi, col)
}

// FillArc fills a pie slice from start to stop (radians, clockwise on screen).
func (d *DrawList) FillArc(cx, cy, dia, start, stop float64, col Color) {
	r := dia / 2
	if r <= 0 || stop <= start {
		return
	}
	n := arcSegments(r*d.xf.ScaleFactor(), stop-start)
	c := d.batch(CmdShapes, 0)
	step := (stop - start) / float64(n)
	px, py := cx+r*math.Cos(start), cy+r*math.Sin(start)
	for i := 1; i <= n; i++ {
		a := start + step*float64(i)
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		d.tri(c, col, cx, cy, px, py, x, y)
		px, py = x, y
	}
}

// StrokeCircle draws a ring of the given stroke weight centred on the circle edge.
func (d *DrawList) StrokeCircle(cx, cy, dia, weight float64, col Color) {
	d.StrokeArc(cx, cy, dia, 0, 2*math.Pi, weight, col)
}

// StrokeArc draws an open arc outline.
func (d *DrawList) StrokeArc(cx, cy, dia, start, stop, weight float64, col Color) {
	r := dia / 2
	if r <= 0 || weight <= 0 || stop <= start {
		return
	}
	inner, outer := r-weight/2, r+weight/2
	if inner < 0 {
		inner = 0
	}
	n := arcSegments(outer*d.xf.ScaleFactor(), stop-start)
	c := d.batch(CmdShapes, 0)
	step := (stop - start) / float64(n)
	cos0, sin0 := math.Cos(start), math.Sin(start)
	for i := 1; i <= n; i++ {
		a := start + step*float64(i)
		cos1, sin1 := math.Cos(a), math.Sin(a)
		d.quad(c, col,
			cx+inner*cos0, cy+inner*sin0,
			cx+outer*cos0, cy+outer*sin0,
			cx+outer*cos1, cy+outer*sin1,
			cx+inner*cos1, cy+inner*sin1,
		)
		cos0, sin0 = cos1, sin1
	}
}

// Triangle fills a single triangle.
func (d *DrawList) Triangle(x1, y1, x2, y2, x3, y3 float64, col Color) {
	c := d.batch(CmdShapes, 0)
	d.tri(c, col, x1, y1, x2, y2, x3, y3)
}

// FillRoundRect fills a rectangle centred on (cx, cy) with rounded corners.
func (d *DrawList) FillRoundRect(cx, cy, w, h, radius float64, col Color) {
	outline := roundRectOutline(cx, cy, w, h, radius)
	if len(outline) < 3 {
		return
	}
	c := d.batch(CmdShapes, 0)
	for i := range outline {
		j := (i + 1) % len(outline)
		d.tri(c, col, cx, cy, outline[i].X, outline[i].Y, outline[j].X, outline[j].Y)
	}
}

// StrokeRoundRect outlines a rounded rectangle centred on (cx, cy).
func (d *DrawList) StrokeRoundRect(cx, cy, w, h, radius, weight float64, col Color) {
	outline := roundRectOutline(cx, cy, w, h, radius)
	if len(outline) < 3 {
		return
	}
	outline = append(outline, outline[0], outline[1])
	d.Polyline(outline, weight, col)
}

// Polyline strokes connected segments with round joints.
func (d *DrawList) Polyline(pts []Point, weight float64, col Color) {
	if len(pts) < 2 || weight <= 0 {
		return
	}
	c := d.batch(CmdShapes, 0)
	hw := weight / 2
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*hw, dx/l*hw
		d.quad(c, col, a.X+nx, a.Y+ny, b.X+nx, b.Y+ny, b.X-nx, b.Y-ny, a.X-nx, a.Y-ny)
	}
	if weight*d.xf.ScaleFactor() < 2 {
		return
	}
	for i := 1; i+1 < len(pts); i++ {
		p := pts[i]
		const joint = 6
		step := 2 * math.Pi / joint
		for k := 0; k < joint; k++ {
			a0, a1 := step*float64(k), step*float64(k+1)
			d.tri(c, col, p.X, p.Y,
				p.X+hw*math.Cos(a0), p.Y+hw*math.Sin(a0),
				p.X+hw*math.Cos(a1), p.Y+hw*math.Sin(a1))
		}
	}
}

func roundRectOutline(cx, cy, w, h, radius float64) []Point {
	if w <= 0 || h <= 0 {
		return nil
	}
	radius = math.Min(radius, math.Min(w, h)/2)
	if radius < 0 {
		radius = 0
	}
	const cornerSegs = 8
	x0, y0 := cx-w/2+radius, cy-h/2+radius
	x1, y1 := cx+w/2-radius, cy+h/2-radius
	corners := [4]struct {
		x, y, a float64
	}{
		{x1, y0, -math.Pi / 2},
		{x1, y1, 0},
		{x0, y1, math.Pi / 2},
		{x0, y0, math.Pi},
	}
	pts := make([]Point, 0, 4*(cornerSegs+1))
	for _, k := range corners {
		for i := 0; i <= cornerSegs; i++ {
			a := k.a + math.Pi/2*float64(i)/cornerSegs
			pts = append(pts, Point{k.x + radius*math.Cos(a), k.y + radius*math.Sin(a)})
		}
	}
	return pts
}

func arcSegments(r, sweep float64) int {
	n := int(math.Ceil(float64(segmentsFor(r)) * sweep / (2 * math.Pi)))
	if n < 2 {
		return 2
	}
	return n
}
