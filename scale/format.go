package scale

import (
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// maxLabelLen bounds the formatted label length in runes. Formatter output
// beyond the bound is truncated, never rejected; the bound exists to keep
// per-tick allocation small and label boxes sane.
const maxLabelLen = 16

// Formatter converts a tick value to its label text.
type Formatter func(value int) string

// DefaultFormatter renders the value as a plain decimal integer.
func DefaultFormatter(value int) string {
	return strconv.Itoa(value)
}

// LocaleFormatter returns a Formatter that renders values with the digit
// grouping of the given locale, e.g. "12,345" for language.English and
// "12.345" for language.German.
func LocaleFormatter(tag language.Tag) Formatter {
	p := message.NewPrinter(tag)
	return func(value int) string {
		return p.Sprintf("%d", value)
	}
}

// formatLabel runs the configured formatter (or the default) and applies
// the label length bound.
func (s *Scale) formatLabel(v int) string {
	f := s.formatter
	if f == nil {
		f = DefaultFormatter
	}
	return truncateLabel(f(v))
}

// truncateLabel caps a label at maxLabelLen runes.
func truncateLabel(s string) string {
	if utf8.RuneCountInString(s) <= maxLabelLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLabelLen])
}
