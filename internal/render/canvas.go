package render

import "github.com/vovakirdan/paddleball/internal/core"

// HalfBlock is the glyph used to show two vertical subpixels per cell:
// the foreground paints the upper half, the background the lower half.
const HalfBlock = '▀'

// Canvas rasterizes a fixed logical pixel space onto a terminal-sized
// cell grid. Each cell holds two vertically stacked subpixels, so the
// effective resolution is cols x 2*rows.
//
// A rectangle marks every subpixel it overlaps, which keeps thin objects
// (walls, balls) visible when one subpixel spans many logical pixels.
type Canvas struct {
	logicalW int
	logicalH int
	cols     int
	rows     int
	sub      []core.Color // cols * 2*rows, row-major
	screen   *core.Screen

	// OnPresent, if set, is called after the screen buffer is updated.
	OnPresent func(*core.Screen)
}

// NewCanvas creates a canvas mapping logicalW x logicalH pixels onto
// cols x rows cells.
func NewCanvas(logicalW, logicalH, cols, rows int) *Canvas {
	c := &Canvas{
		logicalW: logicalW,
		logicalH: logicalH,
		screen:   core.NewScreen(0, 0),
	}
	c.Resize(cols, rows)
	return c
}

// Resize changes the target cell grid.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.sub = make([]core.Color, c.cols*c.rows*2)
	c.screen.Resize(c.cols, c.rows)
}

// Size returns the cell grid dimensions.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Clear fills every subpixel with col.
func (c *Canvas) Clear(col core.Color) {
	for i := range c.sub {
		c.sub[i] = col
	}
}

// FillRect paints every subpixel that r overlaps. Parts of r outside the
// logical space are dropped.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	r = r.Intersect(core.NewRect(0, 0, c.logicalW, c.logicalH))
	if r.Empty() || c.cols == 0 || c.rows == 0 {
		return
	}

	subH := c.rows * 2
	x0 := r.X * c.cols / c.logicalW
	x1 := ceilDiv(r.Right()*c.cols, c.logicalW)
	y0 := r.Y * subH / c.logicalH
	y1 := ceilDiv(r.Bottom()*subH, c.logicalH)

	for y := y0; y < min(y1, subH); y++ {
		row := c.sub[y*c.cols : (y+1)*c.cols]
		for x := x0; x < min(x1, c.cols); x++ {
			row[x] = col
		}
	}
}

// Present folds subpixel pairs into half-block cells.
func (c *Canvas) Present() {
	for y := 0; y < c.rows; y++ {
		top := c.sub[(2*y)*c.cols : (2*y+1)*c.cols]
		bottom := c.sub[(2*y+1)*c.cols : (2*y+2)*c.cols]
		for x := 0; x < c.cols; x++ {
			c.screen.Set(x, y, core.Cell{Rune: HalfBlock, Fg: top[x], Bg: bottom[x]})
		}
	}
	if c.OnPresent != nil {
		c.OnPresent(c.screen)
	}
}

// Screen returns the cell buffer holding the last presented frame.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

var _ core.Surface = (*Canvas)(nil)
