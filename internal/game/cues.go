//go:build !audio_stub

package game

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"soundbubbles/internal/log"
	"soundbubbles/internal/synth"
)

// Cues plays the procedural scene cues. A nil *Cues is silent.
type Cues struct {
	ctx   *oto.Context
	ready chan struct{}
	bank  map[synth.Kind][]byte
	log   *log.Logger
}

// NewCues opens the audio output and renders every cue up front.
func NewCues(l *log.Logger) (*Cues, error) {
	ctx, ready, err := oto.NewContext(synth.SampleRate, synth.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	c := &Cues{ctx: ctx, ready: ready, bank: make(map[synth.Kind][]byte), log: l}
	for _, k := range []synth.Kind{synth.CueTap, synth.CueRise, synth.CueFall, synth.CueHeartbeat} {
		c.bank[k] = synth.Generate(k)
	}
	return c, nil
}

// Play starts a cue on its own player and returns immediately. Cues requested
// before the device is ready are dropped.
func (c *Cues) Play(kind synth.Kind, gain float64) {
	if c == nil || gain <= 0 {
		return
	}
	select {
	case <-c.ready:
	default:
		return
	}
	samples := c.bank[kind]
	if len(samples) == 0 {
		return
	}
	go func() {
		player := c.ctx.NewPlayer(bytes.NewReader(samples))
		player.SetVolume(SFXVolume * min(gain, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			c.log.Debugf("cue %s: close player: %v", kind, err)
		}
	}()
}
