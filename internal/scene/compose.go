package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"soundbubbles/internal/render"
)

// Compose writes the current frame into d. It reads scene state only; all
// motion happens in Step.
func (s *Scene) Compose(d *render.DrawList) {
	d.Reset(s.W, s.H, Night.Alpha(255))
	switch s.Mode {
	case ModeIntro:
		s.composeIntro(d)
	case ModeMessage:
		s.composeMessage(d)
	case ModeNormal:
		s.composeNormal(d)
	case ModeZoomed:
		s.composeZoomed(d)
	case ModeMusicDetail:
		s.composeDetail(d)
	case ModePhonePrompt:
		s.composePrompt(d)
	}
}

var white = RGB{255, 255, 255}

func (s *Scene) composeIntro(d *render.DrawList) {
	d.Background(IntroNight.Alpha(255))
	d.Begin2D()
	w, h := float64(s.W), float64(s.H)

	trace := make([]render.Point, 0, len(s.ECG.Points))
	for _, p := range s.ECG.Points[:max(len(s.ECG.Points)-1, 0)] {
		x := p.X + s.ECG.Offset
		if x > -50 && x < w+50 {
			trace = append(trace, render.Point{X: x, Y: p.Y})
		}
	}
	d.Polyline(trace, 10, white.Alpha(40))
	d.Polyline(trace, 6, white.Alpha(70))
	d.Polyline(trace, 3, white.Alpha(220))

	size, alpha := s.ECG.Pulse(s.Loudness)
	cx, cy := w/2, h/2+100
	for i := 3; i > 0; i-- {
		d.StrokeCircle(cx, cy, size+float64(i)*30, float64(i)*3, white.Alpha(alpha/float64(i+1)))
	}
	d.StrokeCircle(cx, cy, size, 4, white.Alpha(alpha))

	d.TextBlock("Hold your smartphone on the screen.", w/2, h/2+250, 32, w*0.9, render.AlignCenter, white.Alpha(230))
	d.Text("Tap the screen to continue", w/2, h-50, 18, render.AlignCenter, white.Alpha(180))
}

func (s *Scene) composeMessage(d *render.DrawList) {
	d.Begin2D()
	w, h := float64(s.W), float64(s.H)
	a := math.Min(255, s.MessageTimer*100)
	d.TextBlock("Let's discover songs you don't know from others' perspectives.", w/2, h/2, 28, w*0.9, render.AlignCenter, white.Alpha(a))
	d.Text("Tap to skip", w/2, h-50, 18, render.AlignCenter, white.Alpha(a*0.75))
}

func (s *Scene) composeNormal(d *render.DrawList) {
	w, h := float64(s.W), float64(s.H)
	d.Begin2D()
	for i := range s.Stars {
		x, y, size, a := s.Stars[i].Project(w, h)
		d.FillCircle(x, y, size, white.Alpha(a))
	}

	for _, b := range s.Bubbles {
		d.Begin3D()
		scale := DepthScale(b.Z)
		r := b.Size * b.PulseScale() / 2 * scale
		s.sphere(d, b, b.Pos[0], b.Pos[1], b.Z, r, DepthAlpha(b.Z))

		d.Begin2D()
		if sx, sy, ok := d.Camera.Project(b.Pos[0], b.Pos[1], b.Z); ok {
			s.rim(d, sx, sy, r*d.Camera.Perspective(b.Z), DepthAlpha(b.Z))
		}
	}

	d.Begin2D()
	for _, b := range s.Bubbles {
		if !b.Interactive || b.Avatar < 0 {
			continue
		}
		sx, sy := b.Screen(w, h)
		size := b.Size * 0.36 * DepthScale(b.Z)
		d.Image(render.TexID(b.Avatar), sx, sy, size, size, white.Alpha(180*DepthAlpha(b.Z)))
	}
}

// sphere queues b's shell at world (x, y, z) with on-screen radius r.
func (s *Scene) sphere(d *render.DrawList, b *Bubble, x, y, z, r, depthAlpha float64) {
	model := mgl32.Translate3D(float32(x), float32(y), float32(z)).
		Mul4(mgl32.HomogRotate3DY(float32(b.Rotation))).
		Mul4(mgl32.HomogRotate3DX(float32(b.Wobble()))).
		Mul4(mgl32.Scale3D(float32(r), float32(r), float32(r)))
	d.Sphere(model, b.Color.Alpha(255*b.Alpha*depthAlpha*0.85))
}

// rim strokes the two shimmering soap-film rings around a sphere of screen radius r.
func (s *Scene) rim(d *render.DrawList, x, y, r, depthAlpha float64) {
	t := math.Sin(float64(s.Frame)*0.008)*0.5 + 0.5
	c1 := lerpRGB(rimCyan, rimPink, t)
	c2 := lerpRGB(rimGreen, rimYellow, 1-t)
	d.StrokeCircle(x, y, r*2.02, 1.6, c1.Alpha(38*depthAlpha))
	d.StrokeCircle(x, y, r*2.07, 2.6, c2.Alpha(18*depthAlpha))
}

func (s *Scene) composeZoomed(d *render.DrawList) {
	w, h := float64(s.W), float64(s.H)
	t := EaseInOutCubic(s.Progress.Zoom)
	d.Begin2D()
	d.FillScreen(Night.Alpha(200 * t))

	b := s.Selected
	if b == nil {
		return
	}
	k := s.ZoomScale()
	r := b.Size * 0.5 * k
	d.Begin3D()
	s.sphere(d, b, 0, 0, 0, r, 1)
	d.Begin2D()
	s.rim(d, w/2, h/2, r, 1)

	if t > RecordsVisibleAt {
		for _, rec := range b.Records {
			x, y, _ := s.RecordScreen(rec)
			d.Push()
			d.Translate(x, y)
			d.Scale(k)
			d.Rotate(rec.Rotation)
			drawRecordSmall(d, rec)
			d.Pop()
		}
	}

	if t > 0.05 && b.Avatar >= 0 {
		size := b.Size * 0.42 * lerp(1, 1.2, t)
		d.Image(render.TexID(b.Avatar), w/2, h/4, size, size, white.Alpha(220*t))
	}
	if t > 0.9 {
		d.Text("Tap the record to play the song", w/2, h-80, 20, render.AlignCenter, white.Alpha(200))
	}
}

func drawRecordSmall(d *render.DrawList, r *MusicRecord) {
	black := RGB{}
	d.FillCircle(0, 0, r.Size, r.Color.Alpha(220))
	d.StrokeCircle(0, 0, r.Size, 1.5, black.Alpha(120))
	d.FillCircle(0, 0, r.Size*0.3, render.Gray(100, 180))
	for i := 1; i < 5; i++ {
		d.StrokeCircle(0, 0, r.Size*0.4+float64(i)*2.5, 0.8, black.Alpha(60))
	}
}

func (s *Scene) composeDetail(d *render.DrawList) {
	w, h := float64(s.W), float64(s.H)
	t := EaseInOutCubic(s.Progress.Detail)
	d.Begin2D()
	d.FillScreen(Night.Alpha(240 * t))

	if r := s.SelectedRecord; r != nil {
		k := lerp(1, 12, t)
		cx, cy := s.DetailCenter()
		black := RGB{}
		d.Push()
		d.Translate(cx, cy)
		d.Scale(k)
		d.Rotate(r.Rotation + float64(s.Frame)*0.01)
		d.FillCircle(0, 0, r.Size, r.Color.Alpha(255))
		d.StrokeCircle(0, 0, r.Size, 2/k, black.Alpha(150))
		d.FillCircle(0, 0, r.Size*0.3, render.Gray(100, 255))
		for i := 1; i < 8; i++ {
			d.StrokeCircle(0, 0, r.Size*0.4+float64(i)*3, 1/k, black.Alpha(100))
		}
		d.FillArc(0, 0, r.Size*0.8, -math.Pi/3, math.Pi/3, white.Alpha(60))
		d.Pop()
	}

	if t > 0.5 {
		s.composePlayer(d, t)
	}
	if t > 0.7 {
		d.Text("if you like it, lets tap the record", w/2, h-60, 18, render.AlignCenter, white.Alpha(200*(t-0.7)/0.3))
	}
}

func (s *Scene) composePlayer(d *render.DrawList, t float64) {
	w, h := float64(s.W), float64(s.H)
	a := mapRange(t, 0.5, 1, 0, 255)
	d.Push()
	d.Translate(w/2, h*0.78)
	d.FillRoundRect(0, 0, w*0.62, 210, 18, PanelInk.Alpha(a))

	var title, artist, album string
	if r := s.SelectedRecord; r != nil {
		title, artist, album = r.Info.Title, r.Info.Artist, r.Info.Album
	}
	d.Text(title, 0, -60, 24, render.AlignCenter, white.Alpha(a))
	d.Text(artist, 0, -32, 18, render.AlignCenter, render.Gray(210, a))
	d.Text(album, 0, -8, 15, render.AlignCenter, render.Gray(170, a))

	const btnY = 62
	d.FillCircle(0, btnY, 64, white.Alpha(a))
	d.Triangle(-10, btnY-12, -10, btnY+12, 16, btnY, PanelInk.Alpha(a))
	d.Pop()
}

func (s *Scene) composePrompt(d *render.DrawList) {
	w, h := float64(s.W), float64(s.H)
	t := EaseInOutCubic(s.Progress.Prompt)
	d.Begin2D()
	d.FillScreen(Night.Alpha(250))

	d.Push()
	d.Translate(w/2, h/2)
	d.TextBlock("Hold your smartphone on the screen.", 0, -200, 32, w*0.9, render.AlignCenter, white.Alpha(255*t))

	blink := 150 + 105*math.Sin(float64(s.Frame)*0.05)
	d.FillRoundRect(0, 50, 180, 320, 20, white.Alpha(blink*t))
	d.FillRoundRect(0, 40, 160, 280, 10, RGB{200, 220, 255}.Alpha(blink*0.6*t))
	d.FillCircle(0, 190, 40, white.Alpha(blink*t))
	d.FillCircle(0, -140, 12, render.Gray(50, blink*t))
	for i := 1; i <= 3; i++ {
		fi := float64(i)
		d.StrokeRoundRect(0, 50, 180+fi*20, 320+fi*20, 20+fi*5, fi*4, white.Alpha(blink*0.3*t/fi))
	}
	d.Pop()

	d.Text("Tap the black area to return to the previous screen.", w/2, h-40, 16, render.AlignCenter, white.Alpha(150*t))
}
