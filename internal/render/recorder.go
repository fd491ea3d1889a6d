// Package render provides core.Surface implementations that do not depend
// on a particular platform: a display-list recorder and a scaled
// half-block canvas for character terminals.
package render

import "github.com/vovakirdan/paddleball/internal/core"

// OpKind identifies a draw command.
type OpKind int

const (
	OpClear OpKind = iota
	OpFill
)

// String returns a human-readable name for the op kind.
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "Clear"
	case OpFill:
		return "Fill"
	default:
		return "Unknown"
	}
}

// Op is a single recorded draw command. Rect is unused for OpClear.
type Op struct {
	Kind  OpKind
	Rect  core.Rect
	Color core.Color
}

// Frame is the ordered list of commands issued between Clear and Present.
type Frame []Op

// Replay issues the frame's commands to dst. It does not call Present, so
// the caller decides when the target is shown.
func (f Frame) Replay(dst core.Surface) {
	for _, op := range f {
		switch op.Kind {
		case OpClear:
			dst.Clear(op.Color)
		case OpFill:
			dst.FillRect(op.Rect, op.Color)
		}
	}
}

// Recorder is a Surface that keeps the last presented frame as a display
// list. Hosts that draw on their own schedule (ebiten) replay it later;
// tests inspect it directly.
type Recorder struct {
	pending  Frame
	last     Frame
	presents int

	// OnPresent, if set, is called with each presented frame.
	OnPresent func(Frame)
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clear starts a new frame.
func (r *Recorder) Clear(c core.Color) {
	r.pending = append(r.pending[:0], Op{Kind: OpClear, Color: c})
}

// FillRect records a rectangle.
func (r *Recorder) FillRect(rect core.Rect, c core.Color) {
	r.pending = append(r.pending, Op{Kind: OpFill, Rect: rect, Color: c})
}

// Present publishes the pending frame.
func (r *Recorder) Present() {
	r.last = append(r.last[:0], r.pending...)
	r.presents++
	if r.OnPresent != nil {
		r.OnPresent(r.last)
	}
}

// Last returns the most recently presented frame. The slice is reused by
// the next Present; copy it to keep it.
func (r *Recorder) Last() Frame {
	return r.last
}

// Presents returns how many frames have been presented.
func (r *Recorder) Presents() int {
	return r.presents
}

var _ core.Surface = (*Recorder)(nil)
