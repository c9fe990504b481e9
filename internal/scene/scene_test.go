package scene

import (
	"math"
	"testing"

	"soundbubbles/internal/render"
)

const (
	testW = 1200
	testH = 800
)

type captionRecorder struct {
	main, sub []string
}

func (c *captionRecorder) SetCaptions(main, sub string) {
	c.main = append(c.main, main)
	c.sub = append(c.sub, sub)
}

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	return New(testW, testH, Options{Seed: 42, Avatars: 3})
}

// toNormal taps through the intro and message screens.
func toNormal(s *Scene) {
	s.Tap(0, 0)
	s.Tap(0, 0)
}

// toZoomed selects the first interactive bubble and runs the zoom past the
// record threshold.
func toZoomed(t *testing.T, s *Scene) {
	t.Helper()
	toNormal(s)
	for _, b := range s.Bubbles {
		if b.Interactive {
			x, y := b.Screen(float64(s.W), float64(s.H))
			s.Tap(x, y)
			break
		}
	}
	if s.Mode != ModeZoomed {
		t.Fatalf("mode = %v, want zoomed", s.Mode)
	}
	for i := 0; i < 20; i++ {
		s.Step(1.0/60, 0)
	}
}

func TestRebuildPopulation(t *testing.T) {
	s := newTestScene(t)
	for _, size := range [][2]int{{testW, testH}, {320, 480}, {1, 1}, {2560, 1440}} {
		s.Rebuild(size[0], size[1])
		inter, deco := 0, 0
		for _, b := range s.Bubbles {
			if b.Interactive {
				inter++
				if len(b.Records) != RecordsPerBubble {
					t.Fatalf("interactive bubble has %d records", len(b.Records))
				}
			} else {
				deco++
				if b.Records != nil || b.Avatar != -1 {
					t.Fatal("decorative bubble should carry no records or avatar")
				}
			}
		}
		if inter != InteractiveCount || deco != DecorativeCount || len(s.Stars) != StarCount {
			t.Fatalf("%v: %d interactive, %d decorative, %d stars", size, inter, deco, len(s.Stars))
		}
	}
}

func TestProgressRateContract(t *testing.T) {
	for _, m := range []Mode{ModeIntro, ModeMessage, ModeNormal, ModeZoomed, ModeMusicDetail, ModePhonePrompt} {
		p := Progress{Zoom: 0.4, Detail: 0.7, Prompt: 0.2}
		prev := p
		for i := 0; i < 60; i++ {
			p.Step(m)
			for _, c := range []struct {
				name      string
				cur, last float64
				active    bool
			}{
				{"zoom", p.Zoom, prev.Zoom, m == ModeZoomed},
				{"detail", p.Detail, prev.Detail, m == ModeMusicDetail},
				{"prompt", p.Prompt, prev.Prompt, m == ModePhonePrompt},
			} {
				if c.cur < 0 || c.cur > 1 {
					t.Fatalf("%v: %s out of range: %v", m, c.name, c.cur)
				}
				if c.active && c.cur < c.last {
					t.Fatalf("%v: active %s fell %v -> %v", m, c.name, c.last, c.cur)
				}
				if !c.active && c.cur > c.last {
					t.Fatalf("%v: inactive %s rose %v -> %v", m, c.name, c.last, c.cur)
				}
			}
			prev = p
		}
		want := Progress{}
		switch m {
		case ModeZoomed:
			want.Zoom = 1
		case ModeMusicDetail:
			want.Detail = 1
		case ModePhonePrompt:
			want.Prompt = 1
		}
		if p != want {
			t.Errorf("%v: steady state %+v, want %+v", m, p, want)
		}
	}
}

func TestProgressRates(t *testing.T) {
	var p Progress
	p.Step(ModeZoomed)
	if p.Zoom != ZoomRate {
		t.Fatalf("zoom grew by %v", p.Zoom)
	}
	p = Progress{Zoom: 1, Detail: 1, Prompt: 1}
	p.Step(ModeNormal)
	if math.Abs(p.Zoom-(1-ZoomDecayRate)) > 1e-12 || math.Abs(p.Detail-(1-DetailDecayRate)) > 1e-12 || math.Abs(p.Prompt-(1-PromptDecayRate)) > 1e-12 {
		t.Fatalf("decay = %+v", p)
	}
	p = Progress{}
	p.Step(ModePhonePrompt)
	if p.Prompt != PromptRate {
		t.Fatalf("prompt grew by %v", p.Prompt)
	}
}

func TestMessageAutoAdvance(t *testing.T) {
	s := newTestScene(t)
	s.Tap(10, 10)
	if s.Mode != ModeMessage {
		t.Fatalf("mode = %v, want message", s.Mode)
	}
	for i := 0; i < 5; i++ {
		s.Step(0.5, 0)
	}
	if s.Mode != ModeMessage {
		t.Fatalf("advanced early at %.1fs", s.MessageTimer)
	}
	s.Step(0.5, 0)
	if s.Mode != ModeNormal {
		t.Fatalf("mode = %v after 3s, want normal", s.Mode)
	}
	if s.MessageTimer != 0 {
		t.Errorf("timer not reset: %v", s.MessageTimer)
	}
}

func TestIntroAndMessageTaps(t *testing.T) {
	s := newTestScene(t)
	s.Tap(1, 1)
	if s.Mode != ModeMessage {
		t.Fatalf("intro tap -> %v", s.Mode)
	}
	s.Step(1, 0)
	s.Tap(1, 1)
	if s.Mode != ModeNormal || s.MessageTimer != 0 {
		t.Fatalf("message tap -> %v (timer %v)", s.Mode, s.MessageTimer)
	}
}

func TestNormalTapMissIsNoop(t *testing.T) {
	s := newTestScene(t)
	toNormal(s)
	for _, b := range s.Bubbles {
		b.Pos[0] = 1e6
	}
	s.Tap(testW/2, testH/2)
	if s.Mode != ModeNormal || s.Selected != nil {
		t.Fatalf("miss changed state: mode %v selected %v", s.Mode, s.Selected)
	}
}

func TestNormalTapPicksNearestBubble(t *testing.T) {
	s := newTestScene(t)
	toNormal(s)
	var inter []*Bubble
	for _, b := range s.Bubbles {
		if b.Interactive {
			b.Pos[0], b.Pos[1] = 1e6, 1e6
			inter = append(inter, b)
		}
	}
	far, near := inter[0], inter[1]
	far.Pos[0], far.Pos[1], far.Z = 0, 0, -200
	near.Pos[0], near.Pos[1], near.Z = 10, 0, 250
	s.Tap(testW/2, testH/2)
	if s.Selected != near {
		t.Fatal("overlapping hit should select the nearest bubble")
	}
}

func TestDecorativeBubblesAreNotHit(t *testing.T) {
	b := &Bubble{Size: 100, Z: 0}
	if b.Hit(600, 400, testW, testH) {
		t.Fatal("decorative bubble reported a hit")
	}
	b.Interactive = true
	if !b.Hit(600, 400, testW, testH) {
		t.Fatal("centre tap should hit")
	}
	r := b.Size * DepthScale(0) / 2
	if b.Hit(600+r+0.01, 400, testW, testH) {
		t.Fatal("tap beyond the depth-scaled radius should miss")
	}
}

func TestZoomedTransitions(t *testing.T) {
	s := newTestScene(t)
	toZoomed(t, s)

	// Inside the exit radius with no record hit: nothing happens.
	s.Tap(testW/2+ZoomExitRadius-1, testH/2)
	if s.Mode != ModeZoomed || s.Selected == nil {
		t.Fatalf("tap inside the exit radius -> %v", s.Mode)
	}

	rec := s.Selected.Records[0]
	x, y, _ := s.RecordScreen(rec)
	s.Tap(x, y)
	if s.Mode != ModeMusicDetail || s.SelectedRecord != rec || s.Progress.Detail != 0 {
		t.Fatalf("record tap -> mode %v record %v detail %v", s.Mode, s.SelectedRecord == rec, s.Progress.Detail)
	}
}

func TestZoomedRecordsIgnoredBeforeThreshold(t *testing.T) {
	s := newTestScene(t)
	toNormal(s)
	var b *Bubble
	for _, bb := range s.Bubbles {
		if bb.Interactive {
			b = bb
			break
		}
	}
	x, y := b.Screen(testW, testH)
	s.Tap(x, y)
	for i := 0; i < 5; i++ {
		s.Step(1.0/60, 0)
	}
	rx, ry, _ := s.RecordScreen(s.Selected.Records[0])
	s.Tap(rx, ry)
	if s.Mode != ModeZoomed || s.SelectedRecord != nil {
		t.Fatalf("record selectable at zoom %.2f", s.Progress.Zoom)
	}
}

func TestMusicDetailTransitions(t *testing.T) {
	s := newTestScene(t)
	toZoomed(t, s)
	rec := s.Selected.Records[0]
	x, y, _ := s.RecordScreen(rec)
	s.Tap(x, y)
	if s.Mode != ModeMusicDetail {
		t.Fatalf("mode = %v", s.Mode)
	}
	cx, cy := s.DetailCenter()

	s.Tap(cx+150, cy)
	if s.Mode != ModeMusicDetail || s.SelectedRecord != rec {
		t.Fatal("tap in the dead band should be ignored")
	}

	s.Tap(cx+50, cy)
	if s.Mode != ModePhonePrompt || s.Progress.Prompt != 0 {
		t.Fatalf("near tap -> %v prompt %v", s.Mode, s.Progress.Prompt)
	}

	for i := 0; i < 25; i++ {
		s.Step(1.0/60, 0)
	}
	if s.Progress.Prompt == 0 {
		t.Fatal("prompt progress did not grow")
	}
	s.Tap(cx+1000, cy+1000)
	if s.Mode != ModeMusicDetail || s.Progress.Prompt != 0 || s.Progress.Detail != 0 {
		t.Fatalf("prompt tap -> %v %+v", s.Mode, s.Progress)
	}
	if s.SelectedRecord != rec || s.Selected == nil {
		t.Fatal("prompt round trip lost the selection")
	}

	for i := 0; i < 10; i++ {
		s.Step(1.0/60, 0)
	}
	s.Tap(cx+250, cy)
	if s.Mode != ModeZoomed || s.SelectedRecord != nil || s.Progress.Detail != 0 {
		t.Fatalf("far tap -> %v record %v detail %v", s.Mode, s.SelectedRecord, s.Progress.Detail)
	}
	if s.Selected == nil {
		t.Fatal("returning to zoom should keep the bubble")
	}
}

func TestEndToEnd(t *testing.T) {
	s := newTestScene(t)
	if s.Mode != ModeIntro {
		t.Fatalf("start mode %v", s.Mode)
	}
	s.Tap(5, 5)
	if s.Mode != ModeMessage {
		t.Fatalf("mode %v, want message", s.Mode)
	}
	for i := 0; i < 190 && s.Mode == ModeMessage; i++ {
		s.Step(1.0/60, 0)
	}
	if s.Mode != ModeNormal {
		t.Fatalf("mode %v after 3s, want normal", s.Mode)
	}

	s.Step(1.0/60, 0)
	var target *Bubble
	for _, b := range s.Bubbles {
		if b.Interactive {
			target = b
			break
		}
	}
	x, y := target.Screen(testW, testH)
	s.Tap(x, y)
	if s.Mode != ModeZoomed || s.Selected == nil || !s.Selected.Hit(x, y, testW, testH) {
		t.Fatalf("bubble tap -> mode %v", s.Mode)
	}
	if s.Progress.Zoom != 0 {
		t.Fatalf("zoom starts at %v", s.Progress.Zoom)
	}
	last := 0.0
	for s.Progress.Zoom <= RecordsVisibleAt {
		s.Step(1.0/60, 0)
		if s.Progress.Zoom <= last {
			t.Fatal("zoom progress not rising")
		}
		last = s.Progress.Zoom
	}

	s.Tap(testW/2+ZoomExitRadius+1, testH/2)
	if s.Mode != ModeNormal || s.Selected != nil || s.SelectedRecord != nil || s.Progress.Zoom != 0 {
		t.Fatalf("far tap -> mode %v selected %v zoom %v", s.Mode, s.Selected, s.Progress.Zoom)
	}
}

func TestBubbleStaysInBounds(t *testing.T) {
	rng := NewRand(7)
	others := make([]*Bubble, 0, 4)
	for i := 0; i < 4; i++ {
		b := NewBubble(rng, 0, 0, 0, 300, true, 0)
		b.Vel[0], b.Vel[1] = rng.RangeF(-50, 50), rng.RangeF(-50, 50)
		others = append(others, b)
	}
	for step := 0; step < 2000; step++ {
		for _, b := range others {
			b.Update(testW, testH, others)
			if math.Abs(b.Pos[0]) > testW*BoundaryWidthFactor || math.Abs(b.Pos[1]) > testH {
				t.Fatalf("step %d: bubble escaped to %v", step, b.Pos)
			}
		}
	}
}

func TestRepulsionIsOneSided(t *testing.T) {
	rng := NewRand(1)
	a := NewBubble(rng, 0, 0, 0, 200, true, 0)
	b := NewBubble(rng, 50, 0, 100, 200, true, 0)
	a.Vel[0], a.Vel[1] = 0, 0
	b.Vel[0], b.Vel[1] = 0, 0
	all := []*Bubble{a, b}

	a.Update(testW, testH, all)
	if a.Vel[0] >= 0 {
		t.Fatalf("a should be pushed away from b, vel %v", a.Vel)
	}
	if b.Vel[0] != 0 || b.Vel[1] != 0 {
		t.Fatalf("b moved without its own update: %v", b.Vel)
	}

	b.Z = 300
	a.Vel[0] = 0
	a.Pos[0] = 0
	a.Update(testW, testH, all)
	if a.Vel[0] != 0 {
		t.Fatal("bubbles 200+ apart in depth should not interact")
	}
}

func TestRepulsionSpeedLimit(t *testing.T) {
	rng := NewRand(2)
	a := NewBubble(rng, 0, 0, 0, 200, true, 0)
	b := NewBubble(rng, 10, 0, 0, 200, true, 0)
	a.Vel[0], a.Vel[1] = -0.59, 0
	a.Update(testW, testH, []*Bubble{a, b})
	if sp := a.Vel.Len(); sp > RepelSpeedLimit+1e-12 {
		t.Fatalf("speed %v exceeds limit", sp)
	}
}

func TestRepulsionCoincidentCentres(t *testing.T) {
	rng := NewRand(3)
	a := NewBubble(rng, 0, 0, 0, 200, true, 0)
	b := NewBubble(rng, 0, 0, 0, 200, true, 0)
	a.Vel[0], a.Vel[1] = 0, 0
	b.Pos = a.Pos
	a.Update(testW, testH, []*Bubble{a, b})
	if math.IsNaN(a.Vel[0]) || math.IsNaN(a.Vel[1]) {
		t.Fatal("coincident bubbles produced NaN velocity")
	}
}

func TestRecordContainment(t *testing.T) {
	rng := NewRand(99)
	for i := 0; i < 50; i++ {
		r := NewMusicRecord(rng)
		r.Vel = rng.Unit2D().Mul(rng.RangeF(0, 40))
		for step := 0; step < 500; step++ {
			r.Update()
			if d := r.Pos.Len(); d > RecordRadius+1e-9 {
				t.Fatalf("record %d step %d at distance %v", i, step, d)
			}
		}
	}
}

func TestRecordReflectsElastically(t *testing.T) {
	r := &MusicRecord{}
	r.Pos[0] = RecordRadius - 1
	r.Vel[0], r.Vel[1] = 3, 1
	speed := r.Vel.Len()
	r.Update()
	if math.Abs(r.Vel.Len()-speed) > 1e-9 {
		t.Fatalf("speed changed %v -> %v", speed, r.Vel.Len())
	}
	if r.Vel[0] >= 0 {
		t.Fatalf("radial velocity not reflected: %v", r.Vel)
	}
}

func TestECGSampleCount(t *testing.T) {
	rng := NewRand(5)
	for _, w := range []int{1, 2, 3, 4, 100, 1001, 1920} {
		var e ECG
		e.Generate(w, 600, 0.5, rng)
		want := int(math.Ceil(2 * float64(w) / 3))
		if len(e.Points) != want || SampleCount(w) != want {
			t.Errorf("w=%d: %d points (SampleCount %d), want %d", w, len(e.Points), SampleCount(w), want)
		}
	}
}

func TestECGWaveLength(t *testing.T) {
	rng := NewRand(5)
	var e ECG
	e.Generate(800, 600, 0, rng)
	if math.Abs(e.WaveLength-ECGWaveLengthBase*1.05) > 1e-9 {
		t.Errorf("quiet wavelength = %v", e.WaveLength)
	}
	e.Generate(800, 600, 1, rng)
	if math.Abs(e.WaveLength-ECGWaveLengthBase*0.85) > 1e-9 {
		t.Errorf("loud wavelength = %v", e.WaveLength)
	}
	if RegenInterval(0) != 16 || RegenInterval(1) != 8 {
		t.Errorf("regen interval %d..%d", RegenInterval(0), RegenInterval(1))
	}
}

func TestECGScrollWraps(t *testing.T) {
	rng := NewRand(5)
	var e ECG
	e.Generate(100, 100, 0, rng)
	for f := uint64(1); f <= 51; f++ {
		e.Step(f, 100, 100, 0, rng)
		if e.Offset < -100 {
			t.Fatalf("frame %d: offset %v below -W", f, e.Offset)
		}
	}
	if e.Offset != 0 {
		t.Fatalf("offset should have wrapped to 0, got %v", e.Offset)
	}
}

func TestMicSmoothing(t *testing.T) {
	s := newTestScene(t)
	s.Step(1.0/60, 1)
	if math.Abs(s.Loudness-MicSmooth) > 1e-12 {
		t.Fatalf("loudness after one loud frame = %v", s.Loudness)
	}
	for i := 0; i < 500; i++ {
		s.Step(1.0/60, 0.05)
	}
	if s.Loudness > 0.35+1e-6 || s.Loudness < 0.34 {
		t.Fatalf("loudness should settle at 0.35, got %v", s.Loudness)
	}
}

func TestCaptionsFollowMode(t *testing.T) {
	rec := &captionRecorder{}
	s := New(testW, testH, Options{Seed: 1, Captions: rec})
	s.Tap(0, 0)
	if len(rec.main) != 2 {
		t.Fatalf("captions published %d times", len(rec.main))
	}
	wantMain, wantSub := Captions(ModeMessage)
	if rec.main[1] != wantMain || rec.sub[1] != wantSub {
		t.Fatalf("captions = %q / %q", rec.main[1], rec.sub[1])
	}
	if m, sub := Captions(ModeNormal); m != "" || sub != "" {
		t.Error("normal mode should clear captions")
	}

	// No sink: transitions must not fail.
	s = New(testW, testH, Options{Seed: 1})
	s.Tap(0, 0)
}

func TestEvents(t *testing.T) {
	s := newTestScene(t)
	var changes, pulses, picks int
	s.Events.Subscribe(EventModeChanged, func(Event) { changes++ })
	s.Events.Subscribe(EventPulse, func(Event) { pulses++ })
	s.Events.Subscribe(EventBubbleSelected, func(e Event) {
		picks++
		if e.Index < 0 || e.Index >= InteractiveCount {
			t.Errorf("bubble index %d", e.Index)
		}
	})
	for i := 0; i < 200; i++ {
		s.Step(1.0/60, 0)
	}
	if pulses < 1 {
		t.Fatal("intro heartbeat never peaked")
	}
	toZoomed(t, s)
	if changes != 3 || picks != 1 {
		t.Fatalf("changes=%d picks=%d", changes, picks)
	}
}

func TestDeterministicSeed(t *testing.T) {
	a := New(testW, testH, Options{Seed: 1234, Avatars: 2})
	b := New(testW, testH, Options{Seed: 1234, Avatars: 2})
	c := New(testW, testH, Options{Seed: 4321, Avatars: 2})
	same := true
	for i := range a.Bubbles {
		if a.Bubbles[i].Pos != b.Bubbles[i].Pos || a.Bubbles[i].Avatar != b.Bubbles[i].Avatar {
			t.Fatal("same seed produced different bubbles")
		}
		if a.Bubbles[i].Pos != c.Bubbles[i].Pos {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical bubbles")
	}
	if a.Bubbles[0].Records[0].ID != b.Bubbles[0].Records[0].ID {
		t.Fatal("record IDs should be reproducible")
	}
	if v := a.Bubbles[0].Records[0].ID.Version(); v != 4 {
		t.Fatalf("record ID version %d", v)
	}
}

func TestResizeKeepsModeAndRebindsSelection(t *testing.T) {
	s := newTestScene(t)
	toZoomed(t, s)
	rec := s.Selected.Records[3]
	x, y, _ := s.RecordScreen(rec)
	s.Tap(x, y)
	if s.Mode != ModeMusicDetail {
		t.Skip("tap landed on an overlapping record")
	}
	idx := -1
	for i, r := range s.Selected.Records {
		if r == s.SelectedRecord {
			idx = i
		}
	}

	old := s.Selected
	s.Rebuild(640, 480)
	if s.Mode != ModeMusicDetail {
		t.Fatalf("mode changed to %v", s.Mode)
	}
	if s.Selected == nil || s.Selected == old || !s.Selected.Interactive {
		t.Fatal("selection not re-bound to the new population")
	}
	found := false
	for _, b := range s.Bubbles {
		if b == s.Selected {
			found = true
		}
	}
	if !found {
		t.Fatal("selected bubble is not owned by the scene")
	}
	if s.SelectedRecord != s.Selected.Records[idx] {
		t.Fatal("selected record not re-bound by index")
	}
}

func TestResizeInNormalClearsNothing(t *testing.T) {
	s := newTestScene(t)
	toNormal(s)
	s.Rebuild(300, 200)
	if s.Mode != ModeNormal || s.Selected != nil || s.W != 300 || s.H != 200 {
		t.Fatalf("rebuild state: mode %v %dx%d", s.Mode, s.W, s.H)
	}
}

func TestEaseInOutCubic(t *testing.T) {
	for _, c := range []struct{ in, want float64 }{{0, 0}, {0.5, 0.5}, {1, 1}, {0.25, 0.0625}} {
		if got := EaseInOutCubic(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("ease(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestModeString(t *testing.T) {
	if ModePhonePrompt.String() != "phone-prompt" || Mode(99).String() != "unknown" {
		t.Fatal("unexpected mode names")
	}
}

func composeFrame(t *testing.T, s *Scene) *render.DrawList {
	t.Helper()
	fonts, err := render.LoadFonts()
	if err != nil {
		t.Fatal(err)
	}
	d := render.NewDrawList(fonts)
	s.Compose(d)
	return d
}

func TestComposeNormalOrdersSpheres(t *testing.T) {
	s := newTestScene(t)
	toNormal(s)
	s.Step(1.0/60, 0)
	d := composeFrame(t, s)

	spheres := 0
	lastZ := math.Inf(-1)
	for _, p := range d.Passes {
		for _, c := range p.Cmds {
			if c.Kind == render.CmdSphere {
				if !p.Depth {
					t.Fatal("sphere queued in an overlay pass")
				}
				z := float64(c.Sphere.Model[14])
				if z < lastZ-1e-3 {
					t.Fatalf("spheres not back to front: %v after %v", z, lastZ)
				}
				lastZ = z
				spheres++
			} else if p.Depth {
				t.Fatal("overlay geometry in a depth pass")
			}
		}
	}
	if spheres != InteractiveCount+DecorativeCount {
		t.Fatalf("%d spheres composed", spheres)
	}
}

func TestComposeEveryMode(t *testing.T) {
	s := newTestScene(t)
	check := func(want Mode) {
		t.Helper()
		if s.Mode != want {
			t.Fatalf("mode = %v, want %v", s.Mode, want)
		}
		d := composeFrame(t, s)
		if len(d.Passes) == 0 {
			t.Fatalf("%v composed nothing", want)
		}
		for _, p := range d.Passes {
			for _, c := range p.Cmds {
				if (c.Kind == render.CmdSphere) != p.Depth {
					t.Fatalf("%v: command kind %v in pass depth=%v", want, c.Kind, p.Depth)
				}
			}
		}
	}
	for i := 0; i < 20; i++ {
		s.Step(1.0/60, 0.1)
	}
	check(ModeIntro)
	s.Tap(0, 0)
	s.Step(1, 0)
	check(ModeMessage)
	s.Tap(0, 0)
	s.Step(1.0/60, 0)
	check(ModeNormal)

	for _, b := range s.Bubbles {
		if b.Interactive {
			x, y := b.Screen(testW, testH)
			s.Tap(x, y)
			break
		}
	}
	for i := 0; i < 25; i++ {
		s.Step(1.0/60, 0)
	}
	check(ModeZoomed)

	x, y, _ := s.RecordScreen(s.Selected.Records[0])
	s.Tap(x, y)
	for i := 0; i < 25; i++ {
		s.Step(1.0/60, 0)
	}
	check(ModeMusicDetail)

	cx, cy := s.DetailCenter()
	s.Tap(cx, cy)
	for i := 0; i < 25; i++ {
		s.Step(1.0/60, 0)
	}
	check(ModePhonePrompt)
}
