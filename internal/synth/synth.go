// Package synth renders the short procedural cues played on scene events.
// Output is interleaved stereo float32 little-endian PCM at SampleRate,
// the format oto.FormatFloat32LE expects.
package synth

import "math"

const (
	SampleRate   = 44100
	ChannelCount = 2
	FrameBytes   = 8 // two float32 channels
)

// Kind identifies a cue.
type Kind int

const (
	CueTap Kind = iota
	CueRise
	CueFall
	CueHeartbeat
)

func (k Kind) String() string {
	switch k {
	case CueTap:
		return "tap"
	case CueRise:
		return "rise"
	case CueFall:
		return "fall"
	case CueHeartbeat:
		return "heartbeat"
	default:
		return "unknown"
	}
}

// Generate renders a cue. Unknown kinds return nil.
func Generate(kind Kind) []byte {
	switch kind {
	case CueTap:
		return genTap()
	case CueRise:
		return genRise()
	case CueFall:
		return genFall()
	case CueHeartbeat:
		return genHeartbeat()
	}
	return nil
}

// putStereoF32 writes a [-1,1] sample to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < ChannelCount; c++ {
		o := i*FrameBytes + c*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat is a gentle saturation curve that never exceeds [-1,1].
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack, decay and release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

func makeBuf(n int) []byte { return make([]byte, n*FrameBytes) }

func render(mix []float64) []byte {
	buf := makeBuf(len(mix))
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genTap: soft glassy click, shorter and lower than a menu blip.
func genTap() []byte {
	n := SampleRate * 55 / 1000
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.006, 0.5, 0.0, 0.1)
		freq := 1100 - 400*p
		mix[i] = fm(t, freq, 1.0, 0.5) * env * 0.3
	}
	return render(mix)
}

// genRise: three bell notes climbing a major triad, each ringing over the next.
func genRise() []byte {
	return bells([]float64{523.25, 659.25, 783.99}, 0.07, 0.3, 1)
}

// genFall: the same bells walking down, slightly darker.
func genFall() []byte {
	return bells([]float64{783.99, 659.25, 523.25}, 0.08, 0.3, 0.8)
}

func bells(notes []float64, step, tail, bright float64) []byte {
	noteStep := int(step * SampleRate)
	total := len(notes)*noteStep + int(tail*SampleRate)
	mix := make([]float64, total)
	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			env := adsr(float64(j)/float64(dur), 0.004, 0.6, 0.05, 0.3)
			s := fm(t, freq, 3.5, 4*bright*env) * env * 0.22
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.05 * bright
			mix[start+j] += s
		}
	}
	return render(mix)
}

// genHeartbeat: two low FM thumps, lub then dub.
func genHeartbeat() []byte {
	n := int(0.42 * SampleRate)
	mix := make([]float64, n)
	beats := []struct{ onset, freq, gain float64 }{
		{0.0, 62, 0.7},
		{0.16, 55, 0.5},
	}
	for _, b := range beats {
		start := int(b.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i-start) / SampleRate
			env := math.Exp(-t * 22)
			mix[i] += fm(t, b.freq, 0.5, 1.2*env) * env * b.gain
		}
	}
	return render(mix)
}
