package scale

import "github.com/Inovonics-Broadcast/lvgl"

// Option configures a Scale during creation.
// Use functional options to customize the widget:
//
//	s := scale.New(
//	    scale.WithRange(-40, 120),
//	    scale.WithScale(17, 5),
//	    scale.WithAlignment(scale.AlignTop),
//	)
type Option func(*Scale)

// WithRange sets the initial minimum and maximum values.
// min <= max is the caller's contract, as with SetRange.
func WithRange(min, max int) Option {
	return func(s *Scale) {
		s.min, s.max = min, max
		if s.value > max {
			s.value = max
		}
		if s.value < min {
			s.value = min
		}
	}
}

// WithValue sets the initial value, clamped into the range configured so
// far. Order matters: place WithValue after WithRange.
func WithValue(v int) Option {
	return func(s *Scale) {
		if v > s.max {
			v = s.max
		}
		if v < s.min {
			v = s.min
		}
		s.value = v
	}
}

// WithScale sets the initial tick and label counts.
// A lineCount of zero or less leaves the defaults in place.
func WithScale(lineCount, labelCount int) Option {
	return func(s *Scale) {
		if lineCount <= 0 {
			return
		}
		s.lineCount = lineCount
		s.labelCount = labelCount
	}
}

// WithAlignment sets the initial tick alignment.
func WithAlignment(dir Alignment) Option {
	return func(s *Scale) {
		s.align = dir
	}
}

// WithFormatter sets the label formatter.
func WithFormatter(f Formatter) Option {
	return func(s *Scale) {
		s.formatter = f
	}
}

// WithStyles sets the style provider. A nil provider is ignored.
func WithStyles(p StyleProvider) Option {
	return func(s *Scale) {
		if p != nil {
			s.styles = p
		}
	}
}

// WithInvalidate sets the host's redraw hook. The scale calls it whenever
// mutable state changes; the host owns batching and performing redraws.
func WithInvalidate(fn func()) Option {
	return func(s *Scale) {
		s.base = lvgl.NewBase(fn)
	}
}
