package render

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Fault describes a panic raised while stepping or composing a frame.
type Fault struct {
	Message string
	File    string
	Line    int
}

func (f *Fault) Error() string {
	if f.File == "" {
		return f.Message
	}
	return fmt.Sprintf("%s (%s:%d)", f.Message, filepath.Base(f.File), f.Line)
}

// Recover converts a recovered panic value into a Fault located at the frame
// that panicked. It must be called from the deferred function that called
// recover; a nil value yields nil.
func Recover(r any) *Fault {
	if r == nil {
		return nil
	}
	f := &Fault{}
	switch v := r.(type) {
	case error:
		f.Message = v.Error()
	case string:
		f.Message = v
	default:
		f.Message = fmt.Sprint(v)
	}

	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	panicking := false
	for {
		fr, more := frames.Next()
		runtimeFrame := strings.HasPrefix(fr.Function, "runtime.")
		if panicking && !runtimeFrame {
			f.File, f.Line = fr.File, fr.Line
			break
		}
		if fr.Function == "runtime.gopanic" {
			panicking = true
		}
		if !more {
			break
		}
	}
	return f
}

// FaultPanel replaces the frame with a black panel listing the fault.
func (d *DrawList) FaultPanel(f *Fault) {
	d.Background(RGBA(0, 0, 0, 255))
	d.Begin2D()
	if f == nil {
		return
	}
	const size = 16
	x, y := 20.0, 40.0
	lead := size * 1.4
	red := RGBA(255, 90, 90, 255)
	white := Gray(230, 255)
	d.MonoText("Error:", x, y, size, AlignLeft, red)
	y += lead
	a := d.fonts.atlas(TexMono)
	maxW := float64(d.W) - 2*x
	for _, raw := range strings.Split(f.Message, "\n") {
		lines := []string{raw}
		if a != nil {
			lines = a.Wrap(raw, size, maxW)
		}
		for _, l := range lines {
			d.MonoText(l, x, y, size, AlignLeft, white)
			y += lead
		}
	}
	if f.File != "" {
		y += lead
		d.MonoText(fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line), x, y, size, AlignLeft, Gray(160, 255))
	}
}
