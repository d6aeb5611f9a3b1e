// Package window shows the front buffer in a native window.
//
// The ebiten backend is the default. Building with -tags headless replaces
// it with a stub whose Run returns ErrUnavailable, for machines without a
// display or cgo toolchain.
package window

import (
	"errors"
	"fmt"

	"github.com/five82/gratail/internal/exchange"
	"github.com/five82/gratail/internal/gra"
	"github.com/five82/gratail/internal/raster"
)

// ErrUnavailable is returned by Run in headless builds.
var ErrUnavailable = errors.New("window display not available in this build")

// Options configure the window.
type Options struct {
	Title string // empty derives one from the header
	Scale int    // window pixels per surface pixel; zero means 1
}

func (o Options) scale() int {
	if o.Scale < 1 {
		return 1
	}
	return o.Scale
}

func (o Options) title(h gra.Header) string {
	if o.Title != "" {
		return o.Title
	}
	return fmt.Sprintf("gratail %dx%d", h.Width, h.Height)
}

// mirror is an RGBA copy of the front buffer, refreshed from display damage
// only.
type mirror struct {
	width  int
	height int
	pix    []byte
}

func newMirror(h gra.Header) *mirror {
	return &mirror{
		width:  h.Width,
		height: h.Height,
		pix:    make([]byte, h.Width*h.Height*4),
	}
}

// sync copies pending damage out of eng and reports whether pix changed.
func (m *mirror) sync(eng *exchange.Engine) bool {
	changed := false
	eng.View(func(front *raster.Surface, damage raster.Rect) {
		if damage.Empty() {
			return
		}
		front.FillRGBA(m.pix, damage)
		changed = true
	})
	return changed
}
