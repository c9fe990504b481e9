//go:build android

package game

import (
	"image"
	"time"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"soundbubbles/internal/config"
	"soundbubbles/internal/log"
	"soundbubbles/internal/mic"
	"soundbubbles/internal/render"
)

// dpPerInch is Android's density-independent pixel: the scene is laid out in
// dp so text and bubbles keep their physical size across screen densities.
const dpPerInch = 160.0

type mobileApp struct {
	opts    config.Options
	log     *log.Logger
	fonts   *render.Fonts
	avatars []*image.NRGBA

	session *Session
	rend    *mobileRenderer

	fbWidth, fbHeight int
	scale             float64 // framebuffer pixels per scene unit
}

func (m *mobileApp) logicalSize() (int, int) {
	return max(1, int(float64(m.fbWidth)/m.scale)), max(1, int(float64(m.fbHeight)/m.scale))
}

func (m *mobileApp) onSize(e size.Event) {
	m.fbWidth, m.fbHeight = e.WidthPx, e.HeightPx
	m.scale = 1
	if e.PixelsPerPt > 0 {
		m.scale = max(1, float64(e.PixelsPerPt)*72/dpPerInch)
	}
}

func (m *mobileApp) onTouch(e touch.Event) {
	if e.Type != touch.TypeBegin || m.session == nil {
		return
	}
	m.session.Tap(float64(e.X)/m.scale, float64(e.Y)/m.scale)
}

func (m *mobileApp) paint(glctx gl.Context, dt float64) {
	w, h := m.logicalSize()
	if m.session == nil {
		m.session = NewSession(w, h, m.opts, m.fonts, len(m.avatars), mic.DefaultOpener(), m.log)
	}
	dl := m.session.Frame(dt, w, h)
	m.rend.draw(glctx, dl, m.fbWidth, m.fbHeight)
}

// RunAndroid runs the x/mobile event loop. GL resources follow the visible
// lifecycle stage; the scene survives across pauses.
func RunAndroid(opts config.Options, l *log.Logger) {
	fonts, err := render.LoadFonts()
	if err != nil {
		l.Errorf("fonts: %v", err)
	}
	m := &mobileApp{
		opts:    opts,
		log:     l,
		fonts:   fonts,
		avatars: LoadAvatars(opts.AssetsDir, l),
		scale:   1,
	}

	app.Main(func(a app.App) {
		var glctx gl.Context
		var last time.Time

		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					ctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						continue
					}
					rend, err := newMobileRenderer(ctx, m.fonts, m.avatars)
					if err != nil {
						l.Errorf("renderer: %v", err)
						continue
					}
					glctx, m.rend = ctx, rend
					last = time.Now()
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					if glctx != nil {
						m.rend.destroy(glctx)
						glctx, m.rend = nil, nil
					}
				}
				if e.To == lifecycle.StageDead {
					if m.session != nil {
						m.session.Close()
					}
					return
				}

			case size.Event:
				m.onSize(e)

			case touch.Event:
				m.onTouch(e)

			case paint.Event:
				if glctx == nil || e.External || m.fbWidth <= 0 || m.fbHeight <= 0 {
					continue
				}
				now := time.Now()
				dt := now.Sub(last).Seconds()
				last = now
				m.paint(glctx, dt)
				a.Publish()
				a.Send(paint.Event{})
			}
		}
	})
}
