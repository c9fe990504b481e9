package game

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"soundbubbles/internal/log"
)

// AvatarMaxPx bounds the uploaded avatar texture size.
const AvatarMaxPx = 256

// LoadAvatars reads avatar1.png .. avatarN.png from dir. Missing or
// undecodable files are skipped, so the result may be shorter than
// AvatarCount or empty.
func LoadAvatars(dir string, l *log.Logger) []*image.NRGBA {
	var out []*image.NRGBA
	for i := 1; i <= AvatarCount; i++ {
		name := fmt.Sprintf(AvatarPattern, i)
		img, err := loadImage(dir, name)
		if err != nil {
			l.Debugf("avatar %s skipped: %v", filepath.Join(dir, name), err)
			continue
		}
		out = append(out, img)
	}
	l.Infof("loaded %d avatar(s) from %s", len(out), dir)
	return out
}

func loadImage(dir, name string) (*image.NRGBA, error) {
	f, err := openAsset(dir, name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return toNRGBA(img, AvatarMaxPx), nil
}

// toNRGBA converts img to a tightly packed NRGBA, downscaling so neither
// side exceeds maxPx.
func toNRGBA(img image.Image, maxPx int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxPx || h > maxPx {
		if w >= h {
			w, h = maxPx, max(1, h*maxPx/w)
		} else {
			w, h = max(1, w*maxPx/h), maxPx
		}
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		return dst
	}
	if n, ok := img.(*image.NRGBA); ok && n.Stride == w*4 && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
