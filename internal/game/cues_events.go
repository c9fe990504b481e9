package game

import (
	"soundbubbles/internal/scene"
	"soundbubbles/internal/synth"
)

// Attach subscribes the cue player to scene events. Moving deeper into a
// selection plays a rising chime and backing out a falling one; intro pulses
// play a heartbeat.
func (c *Cues) Attach(bus *scene.EventBus) {
	if c == nil {
		return
	}
	bus.Subscribe(scene.EventModeChanged, func(e scene.Event) {
		if k, ok := transitionCue(e.Prev, e.Mode); ok {
			c.Play(k, CueBellGain)
		}
	})
	bus.Subscribe(scene.EventPulse, func(e scene.Event) {
		c.Play(synth.CueHeartbeat, CuePulseGain*(0.6+0.4*e.Level))
	})
}

// depth ranks the modes reachable from the bubble field; deeper modes are
// further into a selection.
func depth(m scene.Mode) int {
	switch m {
	case scene.ModeNormal:
		return 0
	case scene.ModeZoomed:
		return 1
	case scene.ModeMusicDetail:
		return 2
	case scene.ModePhonePrompt:
		return 3
	}
	return -1
}

func transitionCue(prev, next scene.Mode) (synth.Kind, bool) {
	p, n := depth(prev), depth(next)
	switch {
	case p < 0 || n < 0:
		return 0, false
	case n > p:
		return synth.CueRise, true
	case n < p:
		return synth.CueFall, true
	}
	return 0, false
}
