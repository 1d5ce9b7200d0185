package text

import "strings"

// Measure returns the rendered extent of text for the given face.
// letterSpace is the extra advance inserted between consecutive glyphs;
// lineSpace is the extra distance inserted between lines when the text
// contains newlines. Width is the widest line, height spans all lines.
//
// Measure shapes the text with the global shaper, so the result matches
// what a surface rendering the same text with the same shaper produces.
func Measure(s string, face Face, letterSpace, lineSpace float64) (width, height float64) {
	if s == "" || face == nil {
		return 0, 0
	}

	lines := splitLines(s)
	for _, line := range lines {
		if w := lineWidth(line, face, letterSpace); w > width {
			width = w
		}
	}

	n := float64(len(lines))
	height = n*face.Metrics().LineHeight() + (n-1)*lineSpace
	return width, height
}

// lineWidth returns the advance of a single line plus letter spacing.
func lineWidth(line string, face Face, letterSpace float64) float64 {
	glyphs := Shape(line, face)
	if len(glyphs) == 0 {
		return 0
	}

	var w float64
	for _, g := range glyphs {
		w += g.XAdvance
	}
	return w + letterSpace*float64(len(glyphs)-1)
}

// splitLines splits text by line breaks, normalizing \r\n and \r to \n.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}
