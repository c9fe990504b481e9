package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bubble is a translucent sphere. Interactive bubbles carry records and can be
// tapped; decorative ones drift in the background.
type Bubble struct {
	Pos         mgl64.Vec2
	Z           float64
	Vel         mgl64.Vec2
	Size        float64
	Rotation    float64
	RotSpeed    float64
	PulsePhase  float64
	Color       RGB
	Alpha       float64
	Interactive bool
	Avatar      int // index into the loaded avatars, -1 for none
	Records     []*MusicRecord
}

// NewBubble creates a bubble at (x, y, z). avatars is the number of avatar
// images available; interactive bubbles pick one when any exist.
func NewBubble(rng *Rand, x, y, z, size float64, interactive bool, avatars int) *Bubble {
	b := &Bubble{
		Pos:         mgl64.Vec2{x, y},
		Z:           z,
		Vel:         rng.Unit2D().Mul(rng.RangeF(0.15, 0.4)),
		Size:        size,
		Rotation:    rng.Angle(),
		RotSpeed:    rng.RangeF(-0.005, 0.005),
		Interactive: interactive,
		Avatar:      -1,
	}
	tint := bubbleTints[rng.Intn(len(bubbleTints))]
	b.Color = randRGB(rng, tint[0], tint[1])
	b.Alpha = rng.RangeF(0.16, 0.30)
	b.PulsePhase = rng.Angle()

	if interactive {
		if avatars > 0 {
			b.Avatar = rng.Intn(avatars)
		}
		b.Records = make([]*MusicRecord, RecordsPerBubble)
		for i := range b.Records {
			b.Records[i] = NewMusicRecord(rng)
		}
	}
	return b
}

// DepthScale maps Z from [DepthFar, DepthNear] to [DepthScaleMin, DepthScaleMax].
func DepthScale(z float64) float64 {
	return mapRange(z, DepthFar, DepthNear, DepthScaleMin, DepthScaleMax)
}

// DepthAlpha maps Z from [DepthFar, DepthNear] to [DepthAlphaMin, DepthAlphaMax].
func DepthAlpha(z float64) float64 {
	return mapRange(z, DepthFar, DepthNear, DepthAlphaMin, DepthAlphaMax)
}

// Update advances one frame. others is the whole population; repulsion only
// moves b, never the bubble it is pushed away from.
func (b *Bubble) Update(w, h float64, others []*Bubble) {
	b.Pos = b.Pos.Add(b.Vel)
	b.Rotation += b.RotSpeed
	b.PulsePhase += PulseSpeed

	for _, r := range b.Records {
		r.Update()
	}

	bx := w * BoundaryWidthFactor
	if b.Pos[0] < -bx || b.Pos[0] > bx {
		b.Vel[0] = -b.Vel[0]
		b.Pos[0] = clampF(b.Pos[0], -bx, bx)
	}
	if b.Pos[1] < -h || b.Pos[1] > h {
		b.Vel[1] = -b.Vel[1]
		b.Pos[1] = clampF(b.Pos[1], -h, h)
	}

	if !b.Interactive {
		return
	}
	for _, o := range others {
		if o == b || !o.Interactive || math.Abs(b.Z-o.Z) >= RepelDepthRange {
			continue
		}
		sep := b.Pos.Sub(o.Pos)
		d := sep.Len()
		if d >= (b.Size+o.Size)/2 {
			continue
		}
		if d > 0 {
			b.Vel = b.Vel.Add(sep.Mul(RepelImpulse / d))
		}
		if sp := b.Vel.Len(); sp > RepelSpeedLimit {
			b.Vel = b.Vel.Mul(RepelSpeedLimit / sp)
		}
	}
}

// Screen is the bubble's hit-test position: the viewport centre offset by Pos.
func (b *Bubble) Screen(w, h float64) (float64, float64) {
	return w/2 + b.Pos[0], h/2 + b.Pos[1]
}

// Hit reports whether screen point (mx, my) falls within the bubble's
// depth-scaled radius. Decorative bubbles are never hit.
func (b *Bubble) Hit(mx, my, w, h float64) bool {
	if !b.Interactive {
		return false
	}
	sx, sy := b.Screen(w, h)
	return math.Hypot(mx-sx, my-sy) < b.Size*DepthScale(b.Z)/2
}

// PulseScale is the breathing factor applied to the drawn size.
func (b *Bubble) PulseScale() float64 { return 1 + math.Sin(b.PulsePhase)*PulseAmount }

// Wobble is the small tilt about X that accompanies the pulse.
func (b *Bubble) Wobble() float64 { return math.Sin(b.PulsePhase) * WobbleAmount }
