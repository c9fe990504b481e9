package game

import (
	"soundbubbles/internal/render"
)

// Captions is the HUD caption strip: a main and a sub line pinned to the top
// of the viewport. It fades in after every change.
type Captions struct {
	Main, Sub string
	alpha     float64
}

func (c *Captions) SetCaptions(main, sub string) {
	if main == c.Main && sub == c.Sub {
		return
	}
	c.Main, c.Sub = main, sub
	c.alpha = 0
}

func (c *Captions) Step(dt float64) {
	c.alpha = min(1, c.alpha+dt*CaptionFadeRate)
}

// Draw appends the strip as an overlay pass.
func (c *Captions) Draw(d *render.DrawList) {
	if c.Main == "" && c.Sub == "" {
		return
	}
	d.Begin2D()
	w := float64(d.W)
	y := CaptionMargin + CaptionMainSize
	if c.Main != "" {
		lines := d.TextBlock(c.Main, w/2, y, CaptionMainSize, w*0.8, render.AlignCenter, render.Gray(235, 200*c.alpha))
		y += CaptionMainSize*1.25*float64(lines-1) + CaptionSubSize*1.6
	}
	if c.Sub != "" {
		d.Text(c.Sub, w/2, y, CaptionSubSize, render.AlignCenter, render.Gray(190, 170*c.alpha))
	}
}
