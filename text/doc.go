// Package text provides the text-metrics service widgets use to size
// their labels.
//
// A FontSource wraps parsed font data and creates lightweight Face values
// at specific sizes. Font parsing is pluggable via FontParser (the default
// backend uses golang.org/x/image/font/opentype), and glyph positioning is
// pluggable via Shaper: BuiltinShaper sums per-glyph advances, while
// GoTextShaper runs full HarfBuzz shaping through go-text/typesetting.
//
// Measure returns the rendered extent of a string for a face plus letter
// and line spacing; widgets never rasterize glyphs themselves.
package text
