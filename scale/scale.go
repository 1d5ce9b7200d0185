// Package scale implements a linear scale gauge widget: a row or column of
// graduation ticks whose filled portion tracks a value within a range,
// with labeled major ticks.
//
// The widget is a pure function of its state: rendering emits draw
// primitives through a draw.Surface and stores nothing between passes, so
// repeated renders with unchanged state produce identical command
// sequences. Mutators clamp and validate, then raise the host's redraw
// hook; render paths never fail, degenerate configurations degrade to a
// visually degenerate (but safe) output.
package scale

import "github.com/Inovonics-Broadcast/lvgl"

// Alignment selects which edge of the content box ticks grow from.
// Top and Bottom pair with horizontal scales, Left and Right with vertical
// ones; see DrawScale for how the non-matching values are narrowed.
type Alignment uint8

const (
	// AlignLeft anchors ticks to the left edge of a vertical scale.
	AlignLeft Alignment = iota
	// AlignRight anchors ticks to the right edge of a vertical scale.
	AlignRight
	// AlignTop anchors ticks to the top edge of a horizontal scale.
	AlignTop
	// AlignBottom anchors ticks to the bottom edge of a horizontal scale.
	AlignBottom
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignRight:
		return "Right"
	case AlignTop:
		return "Top"
	case AlignBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Scale is the linear scale widget state. Create it with New and mutate it
// only through the setters; every mutation re-validates and raises the
// host's redraw hook.
//
// Scale is not safe for concurrent use; the host serializes mutation and
// rendering (typically via an invalidate-then-batch-redraw pass).
type Scale struct {
	base *lvgl.Base

	min, max int
	value    int

	lineCount  int
	labelCount int

	align     Alignment
	formatter Formatter
	styles    StyleProvider
}

// New creates a Scale with the stock configuration: range [0, 100] at
// value 0, 26 ticks with 6 labels, left alignment, decimal labels, and the
// default style.
func New(opts ...Option) *Scale {
	s := &Scale{
		base:       lvgl.NewBase(nil),
		min:        0,
		max:        100,
		value:      0,
		lineCount:  26,
		labelCount: 6,
		align:      AlignLeft,
		styles:     DefaultStyles(),
	}

	for _, opt := range opts {
		opt(s)
	}

	lvgl.Logger().Debug("linearscale created",
		"min", s.min, "max", s.max,
		"lineCount", s.lineCount, "labelCount", s.labelCount)

	return s
}

// SetValue sets a new value on the scale, clamped into [min, max].
// A call with the current raw value is a no-op; any other call invalidates,
// even when clamping lands on the stored value again.
func (s *Scale) SetValue(v int) {
	if s.value == v {
		return
	}

	if v > s.max {
		v = s.max
	}
	if v < s.min {
		v = s.min
	}
	s.value = v

	s.base.Invalidate()
}

// SetRange sets the minimum and maximum values of the scale and re-clamps
// the current value into the new bounds. min <= max is the caller's
// contract; SetRange stores whatever it is given.
func (s *Scale) SetRange(min, max int) {
	if s.min == min && s.max == max {
		return
	}

	s.min, s.max = min, max
	if s.value > max {
		s.value = max
	}
	if s.value < min {
		s.value = min
	}

	s.base.Invalidate()
}

// SetScale sets the number of ticks and the number of labeled ticks.
// A lineCount of zero (or less) is rejected silently; labelCount is stored
// as given and may exceed lineCount, which simply yields no major ticks.
func (s *Scale) SetScale(lineCount, labelCount int) {
	if lineCount <= 0 {
		return
	}
	if s.lineCount == lineCount && s.labelCount == labelCount {
		return
	}

	s.lineCount = lineCount
	s.labelCount = labelCount

	s.base.Invalidate()
}

// SetAlignment sets the edge ticks grow from.
func (s *Scale) SetAlignment(dir Alignment) {
	if s.align == dir {
		return
	}

	s.align = dir

	s.base.Invalidate()
}

// SetFormatter replaces the label formatter. Unlike the other setters it
// does not invalidate; callers whose visual output depends on the
// formatter invalidate explicitly.
func (s *Scale) SetFormatter(f Formatter) {
	s.formatter = f
}

// SetStyles replaces the style provider and reacts as a style change.
func (s *Scale) SetStyles(p StyleProvider) {
	if p == nil {
		p = DefaultStyles()
	}
	s.styles = p
	s.OnStyleChanged()
}

// Value returns the current value of the scale.
func (s *Scale) Value() int { return s.value }

// MinValue returns the minimum value of the scale.
func (s *Scale) MinValue() int { return s.min }

// MaxValue returns the maximum value of the scale.
func (s *Scale) MaxValue() int { return s.max }

// LineCount returns the number of ticks.
func (s *Scale) LineCount() int { return s.lineCount }

// LabelCount returns the number of labeled ticks.
func (s *Scale) LabelCount() int { return s.labelCount }

// Alignment returns the edge ticks grow from.
func (s *Scale) Alignment() Alignment { return s.align }

// OnStyleChanged implements lvgl.Widget by delegating to the base behavior.
func (s *Scale) OnStyleChanged() {
	s.base.OnStyleChanged()
}

// OnCleanup implements lvgl.Widget. The scale holds no resources beyond
// its state, so only the base behavior runs.
func (s *Scale) OnCleanup() {
	s.base.OnCleanup()
}

// TypeID implements lvgl.Widget.
func (s *Scale) TypeID() string { return "linearscale" }

var _ lvgl.Widget = (*Scale)(nil)
