// Package mic provides an optional microphone loudness source. Acquisition is
// requested from a user gesture, runs once in the background, and a failure
// simply leaves the capture Unavailable with a level of zero.
package mic

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"soundbubbles/internal/log"
)

// State is the acquisition state of a Capture.
type State int32

const (
	StateUnrequested State = iota
	StateRequesting
	StateReady
	StateUnavailable
)

func (s State) String() string {
	switch s {
	case StateUnrequested:
		return "unrequested"
	case StateRequesting:
		return "requesting"
	case StateReady:
		return "ready"
	case StateUnavailable:
		return "unavailable"
	}
	return "unknown"
}

// ErrUnavailable wraps every acquisition failure.
var ErrUnavailable = errors.New("microphone unavailable")

// Source is an open input stream.
type Source interface {
	Close() error
}

// Opener opens an input stream that reports the RMS of each buffer via publish.
// publish may be called from any goroutine.
type Opener func(publish func(rms float64)) (Source, error)

// Capture is the microphone capability. The zero value is not usable; use New.
type Capture struct {
	open Opener
	log  *log.Logger

	state   atomic.Int32
	level   atomic.Uint64 // float64 bits
	settled chan struct{}

	mu  sync.Mutex
	src Source
	err error
}

// New returns a capture in StateUnrequested. A nil opener makes every request
// fail, which is how the microphone is switched off.
func New(open Opener, l *log.Logger) *Capture {
	return &Capture{open: open, log: l, settled: make(chan struct{})}
}

// Request starts acquisition on first call; later calls do nothing. It never blocks.
func (c *Capture) Request() {
	if !c.state.CompareAndSwap(int32(StateUnrequested), int32(StateRequesting)) {
		return
	}
	go c.acquire()
}

func (c *Capture) acquire() {
	defer close(c.settled)

	if c.open == nil {
		c.fail(errors.New("disabled"))
		return
	}
	src, err := c.open(c.publish)
	if err != nil {
		c.fail(err)
		return
	}
	c.mu.Lock()
	c.src = src
	c.mu.Unlock()
	c.state.Store(int32(StateReady))
	c.log.Infof("microphone ready")
}

func (c *Capture) fail(err error) {
	err = fmt.Errorf("%w: %v", ErrUnavailable, err)
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
	c.level.Store(0)
	c.state.Store(int32(StateUnavailable))
	c.log.Warnf("%v (continuing without microphone)", err)
}

func (c *Capture) publish(rms float64) {
	if math.IsNaN(rms) || rms < 0 {
		rms = 0
	}
	c.level.Store(math.Float64bits(rms))
}

func (c *Capture) State() State { return State(c.state.Load()) }

// Level returns the latest RMS amplitude, or 0 unless the capture is Ready.
func (c *Capture) Level() float64 {
	if c.State() != StateReady {
		return 0
	}
	return math.Float64frombits(c.level.Load())
}

// Settled is closed once a requested acquisition has succeeded or failed.
func (c *Capture) Settled() <-chan struct{} { return c.settled }

// Err returns the acquisition failure, if any.
func (c *Capture) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close releases the input stream. The capture reports Unavailable afterwards.
func (c *Capture) Close() error {
	c.mu.Lock()
	src := c.src
	c.src = nil
	c.mu.Unlock()
	if src == nil {
		return nil
	}
	c.state.Store(int32(StateUnavailable))
	if err := src.Close(); err != nil {
		return fmt.Errorf("close microphone: %w", err)
	}
	return nil
}

// RMS is the root mean square of a sample buffer.
func RMS(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(samples)))
}
