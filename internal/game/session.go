package game

import (
	"soundbubbles/internal/config"
	"soundbubbles/internal/log"
	"soundbubbles/internal/mic"
	"soundbubbles/internal/render"
	"soundbubbles/internal/scene"
	"soundbubbles/internal/synth"
)

// Session owns everything one running window needs besides the GL backend:
// the scene, its draw list, the caption strip, the microphone and the cues.
// Both the desktop and the Android loop drive it with Frame, Tap and Close.
type Session struct {
	Scene    *scene.Scene
	List     *render.DrawList
	Captions *Captions
	Mic      *mic.Capture
	Cues     *Cues

	// Fault is set once a frame panics; the session then only draws the
	// diagnostic panel.
	Fault *render.Fault

	log *log.Logger
}

// NewSession builds the scene for a w x h viewport. micOpen may be nil, in
// which case the microphone reports unavailable on the first tap.
func NewSession(w, h int, opts config.Options, fonts *render.Fonts, avatars int, micOpen mic.Opener, l *log.Logger) *Session {
	s := &Session{
		List:     render.NewDrawList(fonts),
		Captions: &Captions{},
		log:      l,
	}
	if opts.NoMic {
		micOpen = nil
	}
	s.Mic = mic.New(micOpen, l)

	if !opts.NoSound {
		cues, err := NewCues(l)
		if err != nil {
			l.Warnf("audio init failed (continuing without sound): %v", err)
		}
		s.Cues = cues
	}

	s.Scene = scene.New(w, h, scene.Options{
		Seed:     opts.Seed,
		Avatars:  avatars,
		Captions: s.Captions,
		Log:      l,
	})
	s.Cues.Attach(s.Scene.Events)
	s.Scene.Events.Subscribe(scene.EventBubbleSelected, func(e scene.Event) {
		l.Infof("bubble %d selected (loudness %.2f)", e.Index, e.Level)
	})
	s.Scene.Events.Subscribe(scene.EventRecordSelected, func(e scene.Event) {
		if r := s.Scene.SelectedRecord; r != nil {
			l.Infof("record %d selected: %s (%s)", e.Index, r.Info.Title, r.ID)
		}
	})
	l.Infof("scene ready %dx%d seed=%d", w, h, opts.Seed)
	return s
}

// Frame advances the scene by dt seconds for a w x h viewport and returns the
// draw list to replay. A size change rebuilds the scene first.
func (s *Session) Frame(dt float64, w, h int) *render.DrawList {
	if dt > MaxFrameDt {
		dt = MaxFrameDt
	}
	if s.Fault == nil {
		s.guard(func() {
			if w != s.Scene.W || h != s.Scene.H {
				s.log.Debugf("resize %dx%d -> %dx%d", s.Scene.W, s.Scene.H, w, h)
				s.Scene.Rebuild(w, h)
			}
			s.Scene.Step(dt, s.Mic.Level())
			s.Captions.Step(dt)
			s.Scene.Compose(s.List)
			s.Captions.Draw(s.List)
		})
	}
	if s.Fault != nil {
		s.List.Reset(w, h, render.RGBA(0, 0, 0, 255))
		s.List.FaultPanel(s.Fault)
	}
	return s.List
}

// Tap forwards a pointer press in logical window coordinates. Every tap also
// asks for the microphone; only the first one has an effect.
func (s *Session) Tap(x, y float64) {
	if s.Fault != nil {
		return
	}
	s.guard(func() {
		s.Cues.Play(synth.CueTap, CueTapGain)
		s.Mic.Request()
		s.Scene.Tap(x, y)
	})
}

func (s *Session) Close() {
	if err := s.Mic.Close(); err != nil {
		s.log.Warnf("%v", err)
	}
}

func (s *Session) guard(fn func()) {
	defer func() {
		if f := render.Recover(recover()); f != nil {
			s.Fault = f
			s.log.Errorf("frame fault: %v", f)
		}
	}()
	fn()
}
