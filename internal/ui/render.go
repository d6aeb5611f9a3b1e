package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/five82/gratail/internal/raster"
)

// Each terminal cell shows two vertically stacked pixels: the upper one as
// the foreground of an upper half block, the lower one as its background.
const halfBlock = "▀"

const noColor = ^uint32(0)

var resetSequence = termenv.CSI + termenv.ResetSeq + "m"

// canvas caches one rendered string per cell row of the front buffer.
// Rows are rendered for the column window [x0, x0+cols) and re-rendered
// only when presentation damage touches them or the window moves.
type canvas struct {
	width int
	rows  []string
	x0    int
	cols  int
	stale bool
}

func newCanvas(width, height int) *canvas {
	return &canvas{
		width: width,
		rows:  make([]string, cellRows(height)),
		stale: true,
	}
}

func cellRows(height int) int {
	return (height + 1) / 2
}

// setWindow selects the visible columns. Moving the window invalidates
// every cached row.
func (c *canvas) setWindow(x0, cols int) {
	if x0 != c.x0 || cols != c.cols {
		c.x0, c.cols = x0, cols
		c.stale = true
	}
}

// refresh re-renders the cached rows covered by damage and returns how many
// rows were rendered.
func (c *canvas) refresh(front *raster.Surface, damage raster.Rect) int {
	x1 := min(c.x0+c.cols, front.Width)

	first, last := 0, len(c.rows)-1
	if !c.stale {
		if damage.Empty() || damage.X1 < c.x0 || damage.X0 >= x1 {
			return 0
		}
		first, last = damage.Y0/2, min(damage.Y1/2, len(c.rows)-1)
	}
	c.stale = false

	var b strings.Builder
	for cy := first; cy <= last; cy++ {
		b.Reset()
		renderRow(&b, front, cy*2, c.x0, x1)
		c.rows[cy] = b.String()
	}
	return last - first + 1
}

// lines returns up to n cached rows starting at cell row top.
func (c *canvas) lines(top, n int) []string {
	if top < 0 {
		top = 0
	}
	if top >= len(c.rows) || n <= 0 {
		return nil
	}
	return c.rows[top:min(top+n, len(c.rows))]
}

// renderRow writes pixel rows y and y+1 over columns [x0, x1) as half-block
// cells. An SGR sequence is emitted only when a cell's colors differ from
// its left neighbour.
func renderRow(b *strings.Builder, front *raster.Surface, y, x0, x1 int) {
	if x0 >= x1 {
		return
	}
	prevTop, prevBottom := noColor, noColor
	for x := x0; x < x1; x++ {
		top := front.At(x, y)
		var bottom uint32
		if y+1 < front.Height {
			bottom = front.At(x, y+1)
		}
		if top != prevTop || bottom != prevBottom {
			b.WriteString(cellSequence(top, bottom))
			prevTop, prevBottom = top, bottom
		}
		b.WriteString(halfBlock)
	}
	b.WriteString(resetSequence)
}

func cellSequence(top, bottom uint32) string {
	return termenv.CSI + rgbColor(top).Sequence(false) + ";" + rgbColor(bottom).Sequence(true) + "m"
}

func rgbColor(c uint32) termenv.RGBColor {
	return termenv.RGBColor(fmt.Sprintf("#%06x", c&0xFFFFFF))
}
