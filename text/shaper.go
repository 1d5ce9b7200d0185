package text

import "sync"

// GlyphID identifies a glyph within a font.
type GlyphID uint16

// ShapedGlyph is one positioned glyph produced by a Shaper.
// Positions are in pixels relative to the start of the shaped run.
type ShapedGlyph struct {
	// GID is the glyph index within the font.
	GID GlyphID
	// Cluster is the index of the source rune this glyph maps to.
	Cluster int
	// X and Y are the glyph origin relative to the run start.
	X, Y float64
	// XAdvance and YAdvance are the pen movement after this glyph.
	XAdvance, YAdvance float64
}

// Shaper converts text to positioned glyphs.
// Implementations provide different levels of text shaping support:
//   - BuiltinShaper: sums per-glyph advances; fine for Latin, Cyrillic,
//     Greek, CJK and other scripts without contextual forms
//   - GoTextShaper: full HarfBuzz shaping via go-text/typesetting
type Shaper interface {
	// Shape converts text into positioned glyphs using the given face.
	// The font size is obtained from face.Size().
	Shape(text string, face Face) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}
)

// SetShaper sets the global shaper used by Shape() and Measure().
// Pass nil to reset to the default BuiltinShaper.
//
// Example usage with the HarfBuzz shaper:
//
//	text.SetShaper(text.NewGoTextShaper())
//	defer text.SetShaper(nil) // Reset to default
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape is a convenience function that uses the global shaper.
// It converts text to positioned glyphs using the given face.
func Shape(text string, face Face) []ShapedGlyph {
	return GetShaper().Shape(text, face)
}
