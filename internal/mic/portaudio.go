//go:build !android

package mic

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

const (
	SampleRate = 44100
	BufferSize = 1024
)

type paSource struct {
	stream *portaudio.Stream
}

func (s *paSource) Close() error {
	defer portaudio.Terminate()
	if err := s.stream.Stop(); err != nil {
		s.stream.Close()
		return err
	}
	return s.stream.Close()
}

// DefaultOpener opens the default input device as a mono stream.
func DefaultOpener() Opener {
	return func(publish func(float64)) (Source, error) {
		if err := portaudio.Initialize(); err != nil {
			return nil, fmt.Errorf("portaudio init: %w", err)
		}
		stream, err := portaudio.OpenDefaultStream(1, 0, SampleRate, BufferSize, func(in []float32) {
			publish(RMS(in))
		})
		if err != nil {
			portaudio.Terminate()
			return nil, fmt.Errorf("open input stream: %w", err)
		}
		if err := stream.Start(); err != nil {
			stream.Close()
			portaudio.Terminate()
			return nil, fmt.Errorf("start input stream: %w", err)
		}
		return &paSource{stream: stream}, nil
	}
}
