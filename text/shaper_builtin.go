package text

// BuiltinShaper positions glyphs by summing per-glyph advances from the
// parsed font. It supports Latin, Cyrillic, Greek, CJK, and other scripts
// that don't require complex text shaping (ligatures, contextual forms).
//
// For complex scripts like Arabic, Hebrew, or Indic languages that require
// GSUB/GPOS shaping, use SetShaper with GoTextShaper.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
// The shaping is simple left-to-right positioning without ligature
// substitution, kerning pairs, or right-to-left reordering.
func (s *BuiltinShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	source := face.Source()
	if source == nil {
		return nil
	}

	parsed := source.Parsed()
	if parsed == nil {
		return nil
	}

	size := face.Size()
	runes := []rune(text)
	result := make([]ShapedGlyph, 0, len(runes))

	var x float64

	for cluster, r := range runes {
		gid := parsed.GlyphIndex(r)
		advance := parsed.GlyphAdvance(gid, size)

		result = append(result, ShapedGlyph{
			GID:      GlyphID(gid),
			Cluster:  cluster,
			X:        x,
			Y:        0,
			XAdvance: advance,
			YAdvance: 0,
		})

		x += advance
	}

	return result
}
