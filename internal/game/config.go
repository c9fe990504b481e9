package game

// Window.
const (
	WindowTitle = "Sound Bubbles"
	MaxFrameDt  = 0.1 // seconds; longer stalls are clamped
)

// Caption strip drawn at the top of the viewport.
const (
	CaptionMainSize = 20.0
	CaptionSubSize  = 14.0
	CaptionMargin   = 18.0
	CaptionFadeRate = 2.5 // alpha units per second, 0..1
)

// Audio cues.
const (
	SFXVolume    = 0.58
	CueTapGain   = 0.6
	CueBellGain  = 0.8
	CuePulseGain = 0.5
)

// Avatars are looked up as avatar1.png .. avatarN.png in the assets directory.
const (
	AvatarCount   = 3
	AvatarPattern = "avatar%d.png"
)

// Streaming vertex buffers grow to fit; this is the initial capacity in floats.
const InitialVertexCap = 64 * 1024
