package draw

import "github.com/Inovonics-Broadcast/lvgl"

// Surface is the interface widgets render into. Implementations translate
// the primitives to their output (raster pixels, a recording, a remote
// display) and are responsible for honoring the clip rectangle.
//
// Surfaces hold no per-widget state: every render pass re-emits the full
// primitive sequence, so a surface may simply replace its previous output.
//
// Each method must tolerate degenerate input (empty rects, zero-width
// lines, empty text) without failing; drawing has no error channel.
type Surface interface {
	// FillRect fills rect with the given style, clipped to clip.
	FillRect(rect Rect, style RectStyle, clip Rect)

	// Line draws a segment from p1 to p2 with the given color and stroke
	// width, clipped to clip.
	Line(p1, p2 lvgl.Point, color lvgl.RGBA, width float64, clip Rect)

	// Label draws text inside box with the given style, clipped to clip.
	Label(box Rect, style LabelStyle, text string, clip Rect)
}
