package scene

// Mode is the active display mode.
type Mode int

const (
	ModeIntro Mode = iota
	ModeMessage
	ModeNormal
	ModeZoomed
	ModeMusicDetail
	ModePhonePrompt
)

func (m Mode) String() string {
	switch m {
	case ModeIntro:
		return "intro"
	case ModeMessage:
		return "message"
	case ModeNormal:
		return "normal"
	case ModeZoomed:
		return "zoomed"
	case ModeMusicDetail:
		return "music-detail"
	case ModePhonePrompt:
		return "phone-prompt"
	}
	return "unknown"
}

// Captions returns the main and sub caption for a mode.
func Captions(m Mode) (main, sub string) {
	switch m {
	case ModeIntro:
		return "Touch the screen with your smartphone.", "discover new music"
	case ModeMessage:
		return "Let's discover songs you don't know from others' perspectives.", "Tap to skip"
	case ModeZoomed:
		return "", "Tap the record to play the song"
	case ModeMusicDetail:
		return "", "If you like it, tap the record"
	case ModePhonePrompt:
		return "Hold your smartphone on the screen.", "Tap the black area to return"
	case ModeNormal:
		return "", ""
	}
	return "", ""
}

// CaptionSink receives the two caption lines on every mode change.
type CaptionSink interface {
	SetCaptions(main, sub string)
}

// Progress holds the animation scalars owned by the zoomed, detail and prompt modes.
type Progress struct {
	Zoom   float64
	Detail float64
	Prompt float64
}

// Step grows the scalar owned by active toward 1 and decays the others toward 0.
func (p *Progress) Step(active Mode) {
	p.Zoom = stepScalar(p.Zoom, active == ModeZoomed, ZoomRate, ZoomDecayRate)
	p.Detail = stepScalar(p.Detail, active == ModeMusicDetail, DetailRate, DetailDecayRate)
	p.Prompt = stepScalar(p.Prompt, active == ModePhonePrompt, PromptRate, PromptDecayRate)
}

func stepScalar(v float64, active bool, grow, decay float64) float64 {
	if active {
		return clampF(approach(v, 1, grow), 0, 1)
	}
	return clampF(approach(v, 0, decay), 0, 1)
}
