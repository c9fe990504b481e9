package render

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	firstGlyph = 32
	lastGlyph  = 126
	atlasCols  = 16
	atlasPad   = 2

	// AtlasPixelSize is the raster size glyphs are baked at; text is scaled from it.
	AtlasPixelSize = 48
)

// Align is the horizontal anchor for a line of text.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Glyph locates one rasterised rune in the atlas. Offsets are relative to the
// pen position on the baseline, in atlas pixels.
type Glyph struct {
	U0, V0, U1, V1 float32
	OffX, OffY     float64
	W, H           float64
	Advance        float64
}

// Atlas is a single-texture bitmap font covering printable ASCII.
type Atlas struct {
	Image   *image.NRGBA
	Size    float64
	Ascent  float64
	Descent float64
	glyphs  [lastGlyph - firstGlyph + 1]Glyph
}

// NewAtlas rasterises an OpenType font at the given pixel size.
func NewAtlas(ttf []byte, size float64) (*Atlas, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face: %w", err)
	}
	defer face.Close()

	m := face.Metrics()
	ascent := float64(m.Ascent.Ceil())
	descent := float64(m.Descent.Ceil())
	cellH := int(ascent+descent) + 2*atlasPad
	minX, maxX := 0, 0
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		b, _, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		minX = min(minX, b.Min.X.Floor())
		maxX = max(maxX, b.Max.X.Ceil())
	}
	cellW := maxX - minX + 2*atlasPad
	rows := (lastGlyph - firstGlyph + atlasCols) / atlasCols
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*cellW, rows*cellH))

	a := &Atlas{Image: img, Size: size, Ascent: ascent, Descent: descent}
	iw, ih := float32(img.Bounds().Dx()), float32(img.Bounds().Dy())
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		i := int(r - firstGlyph)
		ox := (i%atlasCols)*cellW + atlasPad - minX
		oy := (i/atlasCols)*cellH + atlasPad + int(ascent)
		dot := fixed.P(ox, oy)
		dr, mask, maskp, adv, ok := face.Glyph(dot, r)
		g := &a.glyphs[i]
		g.Advance = float64(adv) / 64
		if !ok || dr.Empty() {
			continue
		}
		draw.DrawMask(img, dr, image.White, image.Point{}, mask, maskp, draw.Over)
		g.U0, g.V0 = float32(dr.Min.X)/iw, float32(dr.Min.Y)/ih
		g.U1, g.V1 = float32(dr.Max.X)/iw, float32(dr.Max.Y)/ih
		g.OffX, g.OffY = float64(dr.Min.X-ox), float64(dr.Min.Y-oy)
		g.W, g.H = float64(dr.Dx()), float64(dr.Dy())
	}
	return a, nil
}

func (a *Atlas) glyph(r rune) *Glyph {
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	return &a.glyphs[r-firstGlyph]
}

// Width measures s at the given pixel size.
func (a *Atlas) Width(s string, size float64) float64 {
	scale := size / a.Size
	w := 0.0
	for _, r := range s {
		w += a.glyph(r).Advance * scale
	}
	return w
}

// Wrap breaks s on spaces so no line exceeds maxW at the given size. A single
// word wider than maxW stays on its own line.
func (a *Atlas) Wrap(s string, size, maxW float64) []string {
	if maxW <= 0 || a.Width(s, size) <= maxW {
		return []string{s}
	}
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(s) {
		if cur.Len() == 0 {
			cur.WriteString(word)
			continue
		}
		if a.Width(cur.String()+" "+word, size) > maxW {
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
			continue
		}
		cur.WriteByte(' ')
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// Fonts holds the proportional and monospace atlases.
type Fonts struct {
	Sans *Atlas
	Mono *Atlas
}

// LoadFonts bakes the Go font family at AtlasPixelSize.
func LoadFonts() (*Fonts, error) {
	sans, err := NewAtlas(goregular.TTF, AtlasPixelSize)
	if err != nil {
		return nil, fmt.Errorf("sans atlas: %w", err)
	}
	mono, err := NewAtlas(gomono.TTF, AtlasPixelSize/2)
	if err != nil {
		return nil, fmt.Errorf("mono atlas: %w", err)
	}
	return &Fonts{Sans: sans, Mono: mono}, nil
}

func (f *Fonts) atlas(tex TexID) *Atlas {
	if f == nil {
		return nil
	}
	if tex == TexMono {
		return f.Mono
	}
	return f.Sans
}

// Text draws a line of proportional text with its baseline at y.
func (d *DrawList) Text(s string, x, y, size float64, align Align, col Color) {
	d.text(TexSans, s, x, y, size, align, col)
}

// MonoText draws a line of monospace text with its baseline at y.
func (d *DrawList) MonoText(s string, x, y, size float64, align Align, col Color) {
	d.text(TexMono, s, x, y, size, align, col)
}

// TextBlock draws s wrapped to maxW, with the first baseline at y. It returns
// the number of lines drawn.
func (d *DrawList) TextBlock(s string, x, y, size, maxW float64, align Align, col Color) int {
	a := d.fonts.atlas(TexSans)
	if a == nil {
		return 0
	}
	lines := a.Wrap(s, size, maxW)
	lead := math.Round(size * 1.25)
	for i, l := range lines {
		d.text(TexSans, l, x, y+lead*float64(i), size, align, col)
	}
	return len(lines)
}

func (d *DrawList) text(tex TexID, s string, x, y, size float64, align Align, col Color) {
	a := d.fonts.atlas(tex)
	if a == nil || s == "" || size <= 0 {
		return
	}
	switch align {
	case AlignCenter:
		x -= a.Width(s, size) / 2
	case AlignRight:
		x -= a.Width(s, size)
	}
	scale := size / a.Size
	c := d.batch(CmdTextured, tex)
	for _, r := range s {
		g := a.glyph(r)
		if g.W > 0 {
			gx, gy := x+g.OffX*scale, y+g.OffY*scale
			d.texQuad(c, col, gx, gy, gx+g.W*scale, gy+g.H*scale, g.U0, g.V0, g.U1, g.V1)
		}
		x += g.Advance * scale
	}
}
