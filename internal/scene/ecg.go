package scene

import "math"

type ECGPoint struct {
	X, Y float64
}

// ECG is the scrolling heartbeat trace shown on the intro screen.
type ECG struct {
	Points     []ECGPoint
	Offset     float64
	Drift      float64
	WaveLength float64
	PulsePhase float64
}

// SampleCount is the number of samples Generate produces for width w.
func SampleCount(w int) int {
	if w <= 0 {
		return 0
	}
	return (2*w + ECGStep - 1) / ECGStep
}

// Generate rebuilds the trace for a w x h viewport at loudness level (0..1).
func (e *ECG) Generate(w, h int, level float64, rng *Rand) {
	amp := lerp(0.9, 1.45, level)
	noise := lerp(0.6, 2.2, level)
	e.WaveLength = ECGWaveLengthBase * lerp(1.05, 0.85, level)

	e.Points = e.Points[:0]
	base := float64(h)/2 + ECGBaselineLift
	for i := 0; i < 2*w; i += ECGStep {
		x := float64(i)
		y := base
		y += math.Sin(x*0.002+e.Drift) * 4
		y += rng.RangeF(-2, 2) * amp * noise
		y += heartbeat(math.Mod(x, e.WaveLength)/e.WaveLength) * amp
		e.Points = append(e.Points, ECGPoint{X: x, Y: y})
	}
}

// heartbeat returns the unit-amplitude vertical offset for phase p in [0,1):
// P wave, a three-lobed QRS complex, then the T wave. Screen y grows downward.
func heartbeat(p float64) float64 {
	switch {
	case p < 0.06:
		return -math.Sin(p/0.06*math.Pi) * 10
	case p > 0.17 && p < 0.28:
		q := (p - 0.17) / 0.11
		switch {
		case q < 0.28:
			return math.Sin(q/0.28*math.Pi) * 22
		case q < 0.52:
			return -math.Sin((q-0.28)/0.24*math.Pi) * 150
		default:
			return math.Sin((q-0.52)/0.48*math.Pi) * 40
		}
	case p > 0.43 && p < 0.54:
		return -math.Sin((p-0.43)/0.11*math.Pi) * 18
	}
	return 0
}

// RegenInterval is the frame period between regenerations at the given loudness.
func RegenInterval(level float64) int {
	return int(lerp(16, 8, level))
}

// Step scrolls the trace one frame, regenerating it on the loudness-gated cadence.
// It reports whether the intro pulse crossed its peak this frame.
func (e *ECG) Step(frame uint64, w, h int, level float64, rng *Rand) (peak bool) {
	e.Offset -= ECGScroll
	if e.Offset < -float64(w) {
		e.Offset = 0
	}
	e.Drift += ECGDriftSpeed
	if n := RegenInterval(level); n > 0 && frame%uint64(n) == 0 {
		e.Generate(w, h, level, rng)
	}

	before := math.Mod(e.PulsePhase, 2*math.Pi)
	e.PulsePhase += IntroPulseSpeed
	after := math.Mod(e.PulsePhase, 2*math.Pi)
	return before < math.Pi/2 && after >= math.Pi/2
}

// Pulse returns the intro circle diameter and alpha (0..255) at loudness level.
func (e *ECG) Pulse(level float64) (size, alpha float64) {
	s := math.Sin(e.PulsePhase)
	size = (100 + 50*s) * lerp(1, 1.6, level)
	alpha = (150 + 105*s) * lerp(0.9, 1.3, level)
	return size, alpha
}
