//go:build !headless

package window

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/five82/gratail/internal/exchange"
)

// Run opens a window sized from the engine header and redraws it from the
// front buffer until ctx is cancelled or the window is closed. It must be
// called from the main goroutine.
func Run(ctx context.Context, eng *exchange.Engine, opts Options) error {
	h := eng.Header()
	scale := opts.scale()

	ebiten.SetWindowSize(h.Width*scale, h.Height*scale)
	ebiten.SetWindowTitle(opts.title(h))
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)

	g := &game{ctx: ctx, eng: eng, mirror: newMirror(h)}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

type game struct {
	ctx    context.Context
	eng    *exchange.Engine
	mirror *mirror
	image  *ebiten.Image
}

func (g *game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.image == nil {
		g.image = ebiten.NewImage(g.mirror.width, g.mirror.height)
	}
	if g.mirror.sync(g.eng) {
		g.image.WritePixels(g.mirror.pix)
	}
	screen.DrawImage(g.image, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.mirror.width, g.mirror.height
}
