package draw

import "github.com/Inovonics-Broadcast/lvgl"

func init() {
	Register("record", func(width, height int) Surface {
		return NewRecorder(width, height)
	})
}

// Recorder is a Surface that captures drawing operations as typed commands
// instead of producing pixels. Recorded passes can be inspected, compared
// for equality, and replayed to any other Surface.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

// NewRecorder creates a Recorder for the given canvas dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Commands returns the recorded commands in emission order.
// The returned slice is owned by the Recorder; callers must not mutate it.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Reset discards all recorded commands, keeping the canvas dimensions.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// FillRect implements Surface.
func (r *Recorder) FillRect(rect Rect, style RectStyle, clip Rect) {
	r.commands = append(r.commands, FillRectCommand{Rect: rect, Style: style, Clip: clip})
}

// Line implements Surface.
func (r *Recorder) Line(p1, p2 lvgl.Point, color lvgl.RGBA, width float64, clip Rect) {
	r.commands = append(r.commands, LineCommand{P1: p1, P2: p2, Color: color, Width: width, Clip: clip})
}

// Label implements Surface.
func (r *Recorder) Label(box Rect, style LabelStyle, text string, clip Rect) {
	r.commands = append(r.commands, LabelCommand{Box: box, Style: style, Text: text, Clip: clip})
}

// Finish returns an immutable Recording of all captured commands.
// The Recorder can keep recording afterwards; the Recording snapshots
// the commands captured so far.
func (r *Recorder) Finish() *Recording {
	snapshot := make([]Command, len(r.commands))
	copy(snapshot, r.commands)
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: snapshot,
	}
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Surface implementation.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Playback replays the recording to the given surface.
func (r *Recording) Playback(dst Surface) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case FillRectCommand:
			dst.FillRect(c.Rect, c.Style, c.Clip)
		case LineCommand:
			dst.Line(c.P1, c.P2, c.Color, c.Width, c.Clip)
		case LabelCommand:
			dst.Label(c.Box, c.Style, c.Text, c.Clip)
		}
	}
}
