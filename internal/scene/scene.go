// Package scene holds the simulation and display-mode controller for the
// bubble field: particles, the intro ECG trace, tap handling and per-mode
// composition into a render.DrawList.
package scene

import (
	"math"
	"sort"

	"soundbubbles/internal/log"
)

// Options configure a Scene.
type Options struct {
	Seed     uint64
	Avatars  int // number of loaded avatar images
	Captions CaptionSink
	Log      *log.Logger
}

// Scene owns all simulation state. It is not safe for concurrent use; the
// frame loop calls Tap, Step and Compose from one goroutine.
type Scene struct {
	W, H int

	Mode     Mode
	Progress Progress

	Stars   []Star
	Bubbles []*Bubble
	ECG     ECG

	Selected       *Bubble
	SelectedRecord *MusicRecord

	Loudness     float64 // smoothed microphone level, 0..1
	MessageTimer float64 // seconds spent on the message screen
	Frame        uint64

	Events *EventBus

	rng      *Rand
	avatars  int
	captions CaptionSink
	log      *log.Logger
}

// New builds a scene for a w x h viewport, starting on the intro screen.
func New(w, h int, opts Options) *Scene {
	s := &Scene{
		Mode:     ModeIntro,
		Events:   NewEventBus(),
		rng:      NewRand(opts.Seed),
		avatars:  opts.Avatars,
		captions: opts.Captions,
		log:      opts.Log,
	}
	s.Events.Subscribe(EventModeChanged, func(e Event) {
		s.log.Debugf("mode %s -> %s", e.Prev, e.Mode)
	})
	s.Rebuild(w, h)
	s.publishCaptions()
	return s
}

// Rebuild discards and recreates the star field, both bubble populations and
// the ECG trace for a new viewport. The mode is kept; an active selection is
// re-bound to the bubble and record at the same position in the new population.
func (s *Scene) Rebuild(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	selBubble, selRecord := s.selectionIndex()

	s.W, s.H = w, h
	fw, fh := float64(w), float64(h)

	s.ECG.Points = s.ECG.Points[:0]
	s.ECG.Generate(w, h, 0, s.rng)

	s.Stars = s.Stars[:0]
	for i := 0; i < StarCount; i++ {
		s.Stars = append(s.Stars, NewStar(s.rng, fw, fh))
	}

	s.Bubbles = make([]*Bubble, 0, InteractiveCount+DecorativeCount)
	size := math.Min(fw, fh) / 2.5
	for i := 0; i < InteractiveCount; i++ {
		sn, cs := math.Sincos(s.rng.Angle())
		d := s.rng.RangeF(fw*0.2, fw*0.6)
		z := s.rng.RangeF(-300, 300)
		s.Bubbles = append(s.Bubbles, NewBubble(s.rng, cs*d, sn*d, z, size, true, s.avatars))
	}
	for i := 0; i < DecorativeCount; i++ {
		sn, cs := math.Sincos(s.rng.Angle())
		d := s.rng.RangeF(fw*0.5, fw*1.5)
		z := s.rng.RangeF(-1500, -600)
		s.Bubbles = append(s.Bubbles, NewBubble(s.rng, cs*d, sn*d, z, size*s.rng.RangeF(0.8, 1.5), false, s.avatars))
	}

	s.Selected, s.SelectedRecord = nil, nil
	if selBubble >= 0 {
		s.Selected = s.interactiveAt(selBubble)
		if s.Selected != nil && selRecord >= 0 && selRecord < len(s.Selected.Records) {
			s.SelectedRecord = s.Selected.Records[selRecord]
		}
	}
	s.log.Debugf("rebuilt scene %dx%d (%d stars, %d bubbles)", w, h, len(s.Stars), len(s.Bubbles))
}

// selectionIndex returns the interactive ordinal of the selected bubble and the
// index of the selected record within it, or -1.
func (s *Scene) selectionIndex() (bubble, record int) {
	bubble, record = -1, -1
	if s.Selected == nil {
		return
	}
	k := 0
	for _, b := range s.Bubbles {
		if !b.Interactive {
			continue
		}
		if b == s.Selected {
			bubble = k
			break
		}
		k++
	}
	for i, r := range s.Selected.Records {
		if r == s.SelectedRecord {
			record = i
		}
	}
	return
}

func (s *Scene) interactiveAt(k int) *Bubble {
	for _, b := range s.Bubbles {
		if !b.Interactive {
			continue
		}
		if k == 0 {
			return b
		}
		k--
	}
	return nil
}

// Step advances one frame. dt is the wall time since the previous frame in
// seconds and rawLevel the unsmoothed microphone RMS.
func (s *Scene) Step(dt, rawLevel float64) {
	s.Frame++
	s.Loudness = lerp(s.Loudness, clampF(rawLevel*MicGain, 0, 1), MicSmooth)
	s.Progress.Step(s.Mode)

	switch s.Mode {
	case ModeIntro:
		if s.ECG.Step(s.Frame, s.W, s.H, s.Loudness, s.rng) {
			s.Events.Emit(Event{Type: EventPulse, Mode: s.Mode, Prev: s.Mode, Level: s.Loudness})
		}
	case ModeMessage:
		s.MessageTimer += dt
		if s.MessageTimer >= MessageDuration {
			s.MessageTimer = 0
			s.setMode(ModeNormal)
		}
	case ModeNormal:
		for i := range s.Stars {
			s.Stars[i].Update()
		}
		sort.SliceStable(s.Bubbles, func(i, j int) bool { return s.Bubbles[i].Z < s.Bubbles[j].Z })
		fw, fh := float64(s.W), float64(s.H)
		for _, b := range s.Bubbles {
			b.Update(fw, fh, s.Bubbles)
		}
	case ModeZoomed:
		if s.Selected != nil && EaseInOutCubic(s.Progress.Zoom) > RecordsVisibleAt {
			for _, r := range s.Selected.Records {
				r.Update()
			}
		}
	case ModeMusicDetail, ModePhonePrompt:
	}
}

// ZoomScale is the magnification applied to the selected bubble.
func (s *Scene) ZoomScale() float64 {
	return lerp(1, 1.8, EaseInOutCubic(s.Progress.Zoom))
}

// RecordScreen returns where a record of the selected bubble is drawn and hit
// tested in the zoomed view, plus its on-screen diameter.
func (s *Scene) RecordScreen(r *MusicRecord) (x, y, size float64) {
	k := s.ZoomScale()
	lift := 0.0
	if s.Selected != nil {
		lift = s.Selected.Size * RecordDropLift
	}
	return float64(s.W)/2 + r.Pos[0]*k, float64(s.H)/2 + (r.Pos[1]+lift)*k, r.Size * k
}

// DetailCenter is the centre of the enlarged record in the detail view.
func (s *Scene) DetailCenter() (float64, float64) {
	return float64(s.W) / 2, float64(s.H)/2 - DetailCenterLift
}

// Tap handles one pointer press at screen position (x, y).
func (s *Scene) Tap(x, y float64) {
	switch s.Mode {
	case ModeIntro:
		s.MessageTimer = 0
		s.setMode(ModeMessage)

	case ModeMessage:
		s.MessageTimer = 0
		s.setMode(ModeNormal)

	case ModeNormal:
		fw, fh := float64(s.W), float64(s.H)
		hit, k := -1, 0
		for i, b := range s.Bubbles {
			if b.Hit(x, y, fw, fh) && (hit < 0 || b.Z > s.Bubbles[hit].Z) {
				hit = i
			}
		}
		if hit < 0 {
			return
		}
		for _, b := range s.Bubbles[:hit] {
			if b.Interactive {
				k++
			}
		}
		s.Selected = s.Bubbles[hit]
		s.Progress.Zoom = 0
		s.Events.Emit(Event{Type: EventBubbleSelected, Mode: s.Mode, Prev: s.Mode, Index: k, Level: s.Loudness})
		s.setMode(ModeZoomed)

	case ModeZoomed:
		if s.Selected != nil && s.Progress.Zoom > RecordsVisibleAt {
			for i, r := range s.Selected.Records {
				rx, ry, size := s.RecordScreen(r)
				if math.Hypot(x-rx, y-ry) < size/2 {
					s.SelectedRecord = r
					s.Progress.Detail = 0
					s.Events.Emit(Event{Type: EventRecordSelected, Mode: s.Mode, Prev: s.Mode, Index: i, Level: s.Loudness})
					s.setMode(ModeMusicDetail)
					return
				}
			}
		}
		if math.Hypot(x-float64(s.W)/2, y-float64(s.H)/2) > ZoomExitRadius {
			s.Selected, s.SelectedRecord = nil, nil
			s.Progress.Zoom = 0
			s.setMode(ModeNormal)
		}

	case ModeMusicDetail:
		cx, cy := s.DetailCenter()
		switch d := math.Hypot(x-cx, y-cy); {
		case d < DetailPromptRange:
			s.Progress.Prompt = 0
			s.setMode(ModePhonePrompt)
		case d > DetailExitRadius:
			s.SelectedRecord = nil
			s.Progress.Detail = 0
			s.setMode(ModeZoomed)
		}

	case ModePhonePrompt:
		s.Progress.Prompt = 0
		s.Progress.Detail = 0
		s.setMode(ModeMusicDetail)
	}
}

func (s *Scene) setMode(m Mode) {
	if m == s.Mode {
		return
	}
	prev := s.Mode
	s.Mode = m
	s.publishCaptions()
	s.Events.Emit(Event{Type: EventModeChanged, Mode: m, Prev: prev, Level: s.Loudness})
}

func (s *Scene) publishCaptions() {
	if s.captions == nil {
		return
	}
	s.captions.SetCaptions(Captions(s.Mode))
}
