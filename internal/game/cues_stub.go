//go:build audio_stub

package game

import (
	"errors"

	"soundbubbles/internal/log"
	"soundbubbles/internal/synth"
)

type Cues struct{}

func NewCues(*log.Logger) (*Cues, error) {
	return nil, errors.New("audio output not built in (audio_stub)")
}

func (c *Cues) Play(synth.Kind, float64) {}
