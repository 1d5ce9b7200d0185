package scale

import (
	"github.com/Inovonics-Broadcast/lvgl"
	"github.com/Inovonics-Broadcast/lvgl/draw"
	"github.com/Inovonics-Broadcast/lvgl/text"
)

// point is a tick endpoint in integer widget coordinates.
type point struct {
	x, y int
}

// Render draws the widget into dst in two stages: the background fill over
// the full widget box, then the scale itself (see DrawScale).
//
// Rendering reads the current state and emits draw calls; it stores
// nothing, so repeated calls with unchanged state and viewport produce an
// identical command sequence.
func (s *Scale) Render(box lvgl.Area, clip draw.Rect, dst draw.Surface) {
	st := s.styles.StyleFor(PartMain)
	dst.FillRect(draw.RectFromArea(box), st.Background, clip)
	s.DrawScale(box, clip, dst)
}

// DrawScale draws the ticks and labels. With one tick or none there is no
// scale to lay out and nothing is drawn.
func (s *Scale) DrawScale(box lvgl.Area, clip draw.Rect, dst draw.Surface) {
	if s.lineCount <= 1 {
		return
	}

	st := s.styles.StyleFor(PartMain)

	// Orientation follows the outer widget box, not the padded content
	// box: padding that widens the outer box keeps the scale horizontal
	// even when the content box ends up taller than wide.
	hor := box.Width() >= box.Height()

	level := s.fillLevel()
	content := box.Inset(st.Padding.Left, st.Padding.Right, st.Padding.Top, st.Padding.Bottom)
	interval := s.labelInterval()

	for i := 0; i < s.lineCount; i++ {
		minor := interval <= 0 || i%interval != 0

		tickWidth := st.ScaleWidth
		if minor {
			tickWidth = st.ScaleWidth / 2
		}

		p1, p2 := s.tickEndpoints(content, hor, i, tickWidth)

		// The blend ratio runs over the whole scale, not the filled
		// portion, so the color at the fill boundary depends on how
		// full the scale currently is.
		color := lvgl.Mix(st.GradColor, st.LineColor, uint8(255*i/s.lineCount))
		width := tickWidth
		if i >= level {
			color = st.EndColor
			width = st.EndLineWidth
		}

		dst.Line(
			lvgl.Pt(float64(p1.x), float64(p1.y)),
			lvgl.Pt(float64(p2.x), float64(p2.y)),
			color, float64(width), clip)

		if !minor {
			s.drawLabel(dst, st, hor, i, p1, p2, tickWidth, clip)
		}
	}
}

// tickEndpoints returns the segment for tick i within the content box.
// Horizontal ticks are vertical segments laid out left to right; vertical
// ticks are horizontal segments laid out bottom to top. Only AlignTop is
// distinct horizontally and only AlignLeft vertically; every other
// alignment anchors to the opposite edge.
func (s *Scale) tickEndpoints(content lvgl.Area, hor bool, i, tickWidth int) (p1, p2 point) {
	if hor {
		x := content.X1 + content.Width()*i/(s.lineCount-1)
		p1.x, p2.x = x, x
		if s.align == AlignTop {
			p1.y = content.Y1
			p2.y = content.Y1 + tickWidth
		} else {
			p1.y = content.Y2 - tickWidth
			p2.y = content.Y2
		}
		return p1, p2
	}

	y := content.Y2 - content.Height()*i/(s.lineCount-1)
	p1.y, p2.y = y, y
	if s.align == AlignLeft {
		p1.x = content.X1
		p2.x = content.X1 + tickWidth
	} else {
		p1.x = content.X2 - tickWidth
		p2.x = content.X2
	}
	return p1, p2
}

// drawLabel formats, measures, and emits the label for major tick i.
// The label box sits outward of the tick on the alignment side, centered
// across the tick's transverse axis, nudged by small cosmetic offsets so
// it clears the tick itself.
func (s *Scale) drawLabel(dst draw.Surface, st *Style, hor bool, i int, p1, p2 point, tickWidth int, clip draw.Rect) {
	label := s.formatLabel(s.tickValue(i))

	w, h := text.Measure(label, st.Text.Face, st.Text.LetterSpace, st.Text.LineSpace)
	tw := int(w + 0.5)
	th := int(h + 0.5)

	var x, y int
	if hor {
		x = p1.x - tw/2
		if s.align == AlignTop {
			y = p2.y + st.Padding.Bottom
		} else {
			y = p1.y - tickWidth - th/8
		}
	} else {
		if s.align == AlignLeft {
			x = p2.x
		} else {
			x = p1.x - tw
		}
		y = p1.y - th/2
	}

	dst.Label(draw.NewRect(float64(x), float64(y), float64(tw), float64(th)), st.Text, label, clip)
}
