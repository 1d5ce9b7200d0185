package scale

import (
	"github.com/Inovonics-Broadcast/lvgl"
	"github.com/Inovonics-Broadcast/lvgl/draw"
)

// Part identifies a stylable part of the widget.
type Part uint8

const (
	// PartMain is the background and the scale itself.
	PartMain Part = iota
)

// Padding is the inner spacing between the widget box and the content box
// ticks are laid out within.
type Padding struct {
	Left, Right, Top, Bottom int
}

// Style carries every attribute the renderer reads for one widget part.
// Styles are read-only during a render pass.
type Style struct {
	// Padding shrinks the widget box to the content box.
	Padding Padding

	// Background is the fill drawn under the scale.
	Background draw.RectStyle

	// ScaleWidth is the full tick length; minor ticks use half of it.
	ScaleWidth int

	// LineColor is the main tick color the gradient blends toward.
	LineColor lvgl.RGBA

	// GradColor is the gradient start color at the low end of the scale.
	GradColor lvgl.RGBA

	// EndColor is the color of ticks at or above the filled level.
	EndColor lvgl.RGBA

	// EndLineWidth is the stroke width of ticks at or above the filled level.
	EndLineWidth int

	// Text is the label text style. With a nil Text.Face labels are
	// still emitted but measure as zero-sized boxes.
	Text draw.LabelStyle
}

// StyleProvider resolves the style for a widget part. Hosts with a theming
// layer implement this; the widget treats the returned style as read-only
// for the duration of a render pass.
type StyleProvider interface {
	StyleFor(part Part) *Style
}

// StyleProviderFunc adapts a function to the StyleProvider interface.
type StyleProviderFunc func(part Part) *Style

// StyleFor implements StyleProvider.
func (f StyleProviderFunc) StyleFor(part Part) *Style {
	return f(part)
}

// DefaultStyle returns the stock look: a dark background with light ticks,
// a muted gradient, and a 10-pixel tick length.
func DefaultStyle() *Style {
	return &Style{
		Padding:      Padding{Left: 6, Right: 6, Top: 6, Bottom: 6},
		Background:   draw.RectStyle{Color: lvgl.Hex("#1a1a1a")},
		ScaleWidth:   10,
		LineColor:    lvgl.White,
		GradColor:    lvgl.Hex("#4040ff"),
		EndColor:     lvgl.Gray,
		EndLineWidth: 1,
		Text: draw.LabelStyle{
			Color: lvgl.White,
		},
	}
}

// DefaultStyles returns a provider serving DefaultStyle for every part.
func DefaultStyles() StyleProvider {
	style := DefaultStyle()
	return StyleProviderFunc(func(Part) *Style {
		return style
	})
}
