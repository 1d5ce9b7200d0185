package draw

import (
	"github.com/Inovonics-Broadcast/lvgl"
	"github.com/Inovonics-Broadcast/lvgl/text"
)

// CommandType identifies the type of a command.
// Each command type corresponds to a specific drawing primitive.
type CommandType uint8

const (
	// CmdFillRect fills an axis-aligned rectangle.
	CmdFillRect CommandType = iota
	// CmdLine draws a line segment.
	CmdLine
	// CmdLabel draws a text label inside a box.
	CmdLabel
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdFillRect: "FillRect",
	CmdLine:     "Line",
	CmdLabel:    "Label",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// Commands represent individual drawing operations that can be
// compared for equality and replayed to different surfaces.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// RectStyle carries the attributes for a filled rectangle.
type RectStyle struct {
	// Color is the fill color.
	Color lvgl.RGBA
	// Radius is the corner radius in pixels; 0 draws square corners.
	Radius float64
}

// LabelStyle carries the attributes for drawn text.
type LabelStyle struct {
	// Face is the font face used to shape and measure the text.
	Face text.Face
	// Color is the text color.
	Color lvgl.RGBA
	// LetterSpace is the extra advance inserted between glyphs, in pixels.
	LetterSpace float64
	// LineSpace is the extra distance inserted between lines, in pixels.
	LineSpace float64
}

// FillRectCommand fills a rectangle.
type FillRectCommand struct {
	// Rect is the rectangle to fill.
	Rect Rect
	// Style is the rectangle's fill attributes.
	Style RectStyle
	// Clip bounds the visible output.
	Clip Rect
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// LineCommand draws a line segment between two points.
type LineCommand struct {
	// P1 and P2 are the segment endpoints.
	P1, P2 lvgl.Point
	// Color is the stroke color.
	Color lvgl.RGBA
	// Width is the stroke width in pixels.
	Width float64
	// Clip bounds the visible output.
	Clip Rect
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// LabelCommand draws text inside a box.
type LabelCommand struct {
	// Box is the text box; the text's top-left corner is Box's origin.
	Box Rect
	// Style is the text style.
	Style LabelStyle
	// Text is the string to render.
	Text string
	// Clip bounds the visible output.
	Clip Rect
}

// Type implements Command.
func (LabelCommand) Type() CommandType { return CmdLabel }
