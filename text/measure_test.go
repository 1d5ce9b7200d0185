package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T, size float64) Face {
	t.Helper()
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	return src.Face(size)
}

func TestMeasure_Basic(t *testing.T) {
	face := testFace(t, 16)

	w, h := Measure("Hello", face, 0, 0)
	if w <= 0 {
		t.Errorf("width = %v, want > 0", w)
	}
	if h <= 0 {
		t.Errorf("height = %v, want > 0", h)
	}
	if lh := face.Metrics().LineHeight(); absDiff(h, lh) > 1e-9 {
		t.Errorf("single line height = %v, want LineHeight %v", h, lh)
	}
}

func TestMeasure_Empty(t *testing.T) {
	face := testFace(t, 16)

	if w, h := Measure("", face, 0, 0); w != 0 || h != 0 {
		t.Errorf("Measure(\"\") = (%v, %v), want (0, 0)", w, h)
	}
	if w, h := Measure("x", nil, 0, 0); w != 0 || h != 0 {
		t.Errorf("Measure with nil face = (%v, %v), want (0, 0)", w, h)
	}
}

func TestMeasure_LetterSpace(t *testing.T) {
	face := testFace(t, 16)

	const spacing = 3.0
	base, _ := Measure("abcd", face, 0, 0)
	spaced, _ := Measure("abcd", face, spacing, 0)

	// Four glyphs leave three gaps.
	want := base + 3*spacing
	if absDiff(spaced, want) > 1e-9 {
		t.Errorf("spaced width = %v, want %v", spaced, want)
	}
}

func TestMeasure_MultiLine(t *testing.T) {
	face := testFace(t, 16)
	lh := face.Metrics().LineHeight()

	tests := []struct {
		name  string
		text  string
		lines int
	}{
		{name: "unix breaks", text: "a\nb\nc", lines: 3},
		{name: "windows breaks", text: "a\r\nb", lines: 2},
		{name: "bare carriage return", text: "a\rb", lines: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const lineSpace = 4.0
			_, h := Measure(tt.text, face, 0, lineSpace)
			want := float64(tt.lines)*lh + float64(tt.lines-1)*lineSpace
			if absDiff(h, want) > 1e-9 {
				t.Errorf("height = %v, want %v", h, want)
			}
		})
	}
}

func TestMeasure_WidestLineWins(t *testing.T) {
	face := testFace(t, 16)

	wide, _ := Measure("mmmmmm", face, 0, 0)
	multi, _ := Measure("i\nmmmmmm", face, 0, 0)

	if absDiff(wide, multi) > 1e-9 {
		t.Errorf("multi-line width = %v, want widest line %v", multi, wide)
	}
}

func TestMeasure_ScalesWithSize(t *testing.T) {
	small := testFace(t, 10)
	large := testFace(t, 20)

	ws, _ := Measure("width", small, 0, 0)
	wl, _ := Measure("width", large, 0, 0)

	if wl <= ws {
		t.Errorf("width at size 20 (%v) should exceed width at size 10 (%v)", wl, ws)
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
