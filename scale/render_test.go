package scale

import (
	"reflect"
	"testing"

	"github.com/Inovonics-Broadcast/lvgl"
	"github.com/Inovonics-Broadcast/lvgl/draw"
)

func renderInto(s *Scale, box lvgl.Area) []draw.Command {
	rec := draw.NewRecorder(box.Width(), box.Height())
	s.Render(box, draw.RectFromArea(box), rec)
	return rec.Commands()
}

func linesOf(cmds []draw.Command) []draw.LineCommand {
	var lines []draw.LineCommand
	for _, c := range cmds {
		if l, ok := c.(draw.LineCommand); ok {
			lines = append(lines, l)
		}
	}
	return lines
}

func labelsOf(cmds []draw.Command) []draw.LabelCommand {
	var labels []draw.LabelCommand
	for _, c := range cmds {
		if l, ok := c.(draw.LabelCommand); ok {
			labels = append(labels, l)
		}
	}
	return labels
}

func TestRender_CommandStructure(t *testing.T) {
	s := New(WithScale(11, 6), WithValue(50))
	box := lvgl.NewArea(0, 0, 200, 40)

	cmds := renderInto(s, box)
	if len(cmds) == 0 {
		t.Fatal("no commands recorded")
	}

	bg, ok := cmds[0].(draw.FillRectCommand)
	if !ok {
		t.Fatalf("first command is %T, want FillRectCommand", cmds[0])
	}
	if bg.Rect != draw.RectFromArea(box) {
		t.Errorf("background rect = %+v, want %+v", bg.Rect, draw.RectFromArea(box))
	}

	lines := linesOf(cmds)
	if len(lines) != 11 {
		t.Errorf("%d tick lines, want 11", len(lines))
	}

	labels := labelsOf(cmds)
	want := []string{"0", "20", "40", "60", "80", "100"}
	if len(labels) != len(want) {
		t.Fatalf("%d labels, want %d", len(labels), len(want))
	}
	for i, l := range labels {
		if l.Text != want[i] {
			t.Errorf("label %d = %q, want %q", i, l.Text, want[i])
		}
	}
}

func TestRender_FillBoundary(t *testing.T) {
	s := New(WithScale(11, 6), WithValue(50))
	st := DefaultStyle()

	lines := linesOf(renderInto(s, lvgl.NewArea(0, 0, 200, 40)))
	if len(lines) != 11 {
		t.Fatalf("%d tick lines, want 11", len(lines))
	}

	// value 50 of [0, 100] over 11 ticks fills indices 0 through 4.
	for i, l := range lines {
		filled := i < 5
		if filled {
			wantColor := lvgl.Mix(st.GradColor, st.LineColor, uint8(255*i/11))
			if l.Color != wantColor {
				t.Errorf("tick %d color = %v, want gradient %v", i, l.Color, wantColor)
			}
			wantWidth := float64(st.ScaleWidth)
			if i%2 != 0 {
				wantWidth = float64(st.ScaleWidth / 2)
			}
			if l.Width != wantWidth {
				t.Errorf("tick %d width = %v, want %v", i, l.Width, wantWidth)
			}
		} else {
			if l.Color != st.EndColor {
				t.Errorf("tick %d color = %v, want end color %v", i, l.Color, st.EndColor)
			}
			if l.Width != float64(st.EndLineWidth) {
				t.Errorf("tick %d width = %v, want end width %d", i, l.Width, st.EndLineWidth)
			}
		}
	}
}

func TestRender_FullValue(t *testing.T) {
	s := New(WithScale(11, 6), WithValue(100))
	st := DefaultStyle()

	lines := linesOf(renderInto(s, lvgl.NewArea(0, 0, 200, 40)))
	for i, l := range lines {
		if l.Color == st.EndColor {
			t.Errorf("tick %d uses end color on a full scale", i)
		}
	}
}

func TestRender_HorizontalGeometry(t *testing.T) {
	s := New(WithScale(11, 6))
	box := lvgl.NewArea(0, 0, 200, 40)

	lines := linesOf(renderInto(s, box))
	if len(lines) != 11 {
		t.Fatalf("%d tick lines, want 11", len(lines))
	}

	// Content box after 6px padding: x in [6, 194], y in [6, 34].
	for i, l := range lines {
		if l.P1.X != l.P2.X {
			t.Errorf("tick %d is not a vertical segment: %+v", i, l)
		}
		wantX := float64(6 + 188*i/10)
		if l.P1.X != wantX {
			t.Errorf("tick %d x = %v, want %v", i, l.P1.X, wantX)
		}
		// Bottom-anchored: the segment ends on the content bottom edge.
		if l.P2.Y != 34 {
			t.Errorf("tick %d bottom = %v, want 34", i, l.P2.Y)
		}
	}

	if first, last := lines[0].P1.X, lines[10].P1.X; first != 6 || last != 194 {
		t.Errorf("tick span = [%v, %v], want [6, 194]", first, last)
	}
}

func TestRender_VerticalGeometry(t *testing.T) {
	s := New(WithScale(11, 6))
	box := lvgl.NewArea(0, 0, 40, 200)

	lines := linesOf(renderInto(s, box))
	if len(lines) != 11 {
		t.Fatalf("%d tick lines, want 11", len(lines))
	}

	// Content box after 6px padding: x in [6, 34], y in [6, 194].
	// Ticks run bottom to top; AlignLeft anchors them to the left edge.
	for i, l := range lines {
		if l.P1.Y != l.P2.Y {
			t.Errorf("tick %d is not a horizontal segment: %+v", i, l)
		}
		wantY := float64(194 - 188*i/10)
		if l.P1.Y != wantY {
			t.Errorf("tick %d y = %v, want %v", i, l.P1.Y, wantY)
		}
		if l.P1.X != 6 {
			t.Errorf("tick %d left = %v, want 6", i, l.P1.X)
		}
	}

	if first, last := lines[0].P1.Y, lines[10].P1.Y; first != 194 || last != 6 {
		t.Errorf("tick span = [%v, %v], want [194, 6]", first, last)
	}
}

func TestRender_AlignTop(t *testing.T) {
	s := New(WithScale(11, 6), WithValue(100), WithAlignment(AlignTop))

	lines := linesOf(renderInto(s, lvgl.NewArea(0, 0, 200, 40)))
	for i, l := range lines {
		if l.P1.Y != 6 {
			t.Errorf("tick %d top = %v, want content top 6", i, l.P1.Y)
		}
		if l.P2.Y <= l.P1.Y {
			t.Errorf("tick %d does not grow downward: %+v", i, l)
		}
	}
}

func TestRender_AlignRight(t *testing.T) {
	s := New(WithScale(11, 6), WithValue(100), WithAlignment(AlignRight))

	lines := linesOf(renderInto(s, lvgl.NewArea(0, 0, 40, 200)))
	for i, l := range lines {
		if l.P2.X != 34 {
			t.Errorf("tick %d right = %v, want content right 34", i, l.P2.X)
		}
		if l.P1.X >= l.P2.X {
			t.Errorf("tick %d does not grow leftward: %+v", i, l)
		}
	}
}

func TestRender_MinorTickSpan(t *testing.T) {
	// With a single label slot no tick is major, so every tick spans half
	// the configured scale width.
	s := New(WithScale(11, 1), WithValue(100))
	st := DefaultStyle()

	cmds := renderInto(s, lvgl.NewArea(0, 0, 200, 40))
	if got := len(labelsOf(cmds)); got != 0 {
		t.Errorf("%d labels, want 0", got)
	}
	for i, l := range linesOf(cmds) {
		if span := l.P2.Y - l.P1.Y; span != float64(st.ScaleWidth/2) {
			t.Errorf("tick %d span = %v, want %d", i, span, st.ScaleWidth/2)
		}
	}
}

func TestRender_SingleTick(t *testing.T) {
	s := New(WithScale(1, 1))

	cmds := renderInto(s, lvgl.NewArea(0, 0, 200, 40))
	if len(cmds) != 1 {
		t.Fatalf("%d commands, want background only", len(cmds))
	}
	if _, ok := cmds[0].(draw.FillRectCommand); !ok {
		t.Errorf("command is %T, want FillRectCommand", cmds[0])
	}
}

func TestRender_CollapsedRange(t *testing.T) {
	s := New(WithRange(5, 5), WithScale(11, 6))
	st := DefaultStyle()

	// Must not fault; every tick renders unfilled.
	lines := linesOf(renderInto(s, lvgl.NewArea(0, 0, 200, 40)))
	for i, l := range lines {
		if l.Color != st.EndColor {
			t.Errorf("tick %d color = %v, want end color", i, l.Color)
		}
	}
}

func TestRender_Idempotent(t *testing.T) {
	s := New(WithScale(11, 6), WithValue(37))
	box := lvgl.NewArea(0, 0, 200, 40)

	first := renderInto(s, box)
	second := renderInto(s, box)

	if !reflect.DeepEqual(first, second) {
		t.Error("two renders with unchanged state produced different commands")
	}
}

func TestRender_DefaultMajors(t *testing.T) {
	// 26 ticks with 6 label slots yields an interval of 5: six majors.
	s := New()

	labels := labelsOf(renderInto(s, lvgl.NewArea(0, 0, 200, 40)))
	want := []string{"0", "20", "40", "60", "80", "100"}
	if len(labels) != len(want) {
		t.Fatalf("%d labels, want %d", len(labels), len(want))
	}
	for i, l := range labels {
		if l.Text != want[i] {
			t.Errorf("label %d = %q, want %q", i, l.Text, want[i])
		}
	}
}

func TestRender_LabelCentering(t *testing.T) {
	s := New(WithScale(11, 6))
	box := lvgl.NewArea(0, 0, 200, 40)

	cmds := renderInto(s, box)
	lines := linesOf(cmds)
	labels := labelsOf(cmds)

	// With no font configured labels measure as zero-sized boxes anchored
	// on the tick's x position.
	majors := []int{0, 2, 4, 6, 8, 10}
	for j, l := range labels {
		tick := lines[majors[j]]
		if l.Box.X != tick.P1.X {
			t.Errorf("label %d x = %v, want tick x %v", j, l.Box.X, tick.P1.X)
		}
	}
}
