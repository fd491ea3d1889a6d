package world

import (
	"math"

	"github.com/vovakirdan/paddleball/internal/core"
)

// Wall rectangles: top, left, right. The side walls stop where the
// paddle row begins.
var walls = [...]core.Rect{
	core.NewRect(0, 0, int(WindowWidth), int(Thickness)),
	core.NewRect(0, 0, int(Thickness), int(WindowHeight-Thickness)),
	core.NewRect(int(WindowWidth-Thickness), 0, int(Thickness), int(WindowHeight-Thickness)),
}

// Draw issues one frame to dst: clear, walls, paddle, balls, present.
func (w *World) Draw(dst core.Surface) {
	dst.Clear(BackgroundColor)

	for _, r := range walls {
		dst.FillRect(r, ForegroundColor)
	}

	dst.FillRect(core.NewRect(
		pixel(w.paddle.Pos.X-PaddleWidth/2),
		pixel(w.paddle.Pos.Y),
		int(PaddleWidth),
		int(Thickness),
	), ForegroundColor)

	for i := 0; i < w.balls.Len(); i++ {
		b := w.balls.At(i)
		dst.FillRect(core.NewRect(
			pixel(b.Pos.X-Thickness/2),
			pixel(b.Pos.Y-Thickness/2),
			int(Thickness),
			int(Thickness),
		), ForegroundColor)
	}

	dst.Present()
}

// pixel truncates toward zero, saturating far outside any surface so a
// long-lost ball cannot overflow the conversion.
func pixel(v float64) int {
	const limit = 1 << 30
	return int(math.Trunc(core.ClampF(v, -limit, limit)))
}
