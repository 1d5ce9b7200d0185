package scale

// fillLevel returns the number of ticks below the current value: tick
// indices < fillLevel draw with the gradient blend, indices >= fillLevel
// with the end color. Truncating division keeps the boundary stable and
// reproducible; a collapsed range maps to level 0 instead of faulting.
func (s *Scale) fillLevel() int {
	if s.max == s.min {
		return 0
	}
	return (s.value - s.min) * s.lineCount / (s.max - s.min)
}

// tickValue returns the value tick i represents for labeling. This
// interpolates over lineCount-1 intervals, a different grid than
// fillLevel's lineCount divisions, so the two may disagree by one tick at
// the fill boundary. Only valid for lineCount > 1.
func (s *Scale) tickValue(i int) int {
	return s.min + (s.max-s.min)*i/(s.lineCount-1)
}

// labelInterval returns the index stride between major (labeled) ticks, or
// 0 when labeling is disabled (labelCount <= 1) or when there are more
// label slots than ticks. Callers must treat 0 as "no tick is major"
// rather than using it as a modulo divisor.
func (s *Scale) labelInterval() int {
	if s.labelCount <= 1 {
		return 0
	}
	return s.lineCount / (s.labelCount - 1)
}
