package native

import (
	"testing"

	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/internal/path"
	"github.com/gogpu/d2d/math2d"
)

func testTextFormat(t *testing.T, props TextFormatProperties) *textFormat {
	t.Helper()
	f := testFactory(t)
	tf, st := f.CreateTextFormat(props)
	if st.Failed() {
		t.Fatalf("CreateTextFormat() = %v", st)
	}
	t.Cleanup(func() { tf.Release() })
	return tf.(*textFormat)
}

func TestCreateTextFormatValidation(t *testing.T) {
	f := testFactory(t)
	tests := []struct {
		name  string
		props TextFormatProperties
		want  com.Status
	}{
		{"default font", TextFormatProperties{FontSize: 12}, com.OK},
		{"zero size", TextFormatProperties{}, com.InvalidArg},
		{"negative line spacing", TextFormatProperties{FontSize: 12, LineSpacing: -1}, com.InvalidArg},
		{"bad alignment", TextFormatProperties{FontSize: 12, TextAlignment: TextAlignment(9)}, com.InvalidArg},
		{"bad font data", TextFormatProperties{FontSize: 12, FontData: []byte("not a font")}, com.InvalidArg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf, st := f.CreateTextFormat(tt.props)
			if st != tt.want {
				t.Fatalf("CreateTextFormat() = %v, want %v", st, tt.want)
			}
			if tf != nil {
				tf.Release()
			}
		})
	}
}

func TestTextFormatSetters(t *testing.T) {
	tf := testTextFormat(t, TextFormatProperties{FontSize: 12})

	wantStatus(t, "SetTextAlignment(Center)", tf.SetTextAlignment(TextAlignmentCenter), com.OK)
	wantStatus(t, "SetTextAlignment(9)", tf.SetTextAlignment(TextAlignment(9)), com.InvalidArg)
	if got := tf.GetTextAlignment(); got != TextAlignmentCenter {
		t.Errorf("GetTextAlignment() = %v, want %v", got, TextAlignmentCenter)
	}
	wantStatus(t, "SetWordWrapping(NoWrap)", tf.SetWordWrapping(WordWrappingNoWrap), com.OK)
	wantStatus(t, "SetReadingDirection(9)", tf.SetReadingDirection(ReadingDirection(9)), com.InvalidArg)
	wantStatus(t, "SetParagraphAlignment(Far)", tf.SetParagraphAlignment(ParagraphAlignmentFar), com.OK)
	if got := tf.GetFontSize(); got != 12 {
		t.Errorf("GetFontSize() = %v, want 12", got)
	}
}

func TestWordWrap(t *testing.T) {
	tf := testTextFormat(t, TextFormatProperties{FontSize: 16})
	const s = "aaa aaa aaa"
	narrow := tf.measure([]rune("aaa aaa")) - 1
	wide := tf.measure([]rune(s)) + 1

	tests := []struct {
		name  string
		wrap  WordWrapping
		s     string
		width float64
		want  []string
	}{
		{"wraps at spaces", WordWrappingWrap, s, narrow, []string{"aaa", "aaa", "aaa"}},
		{"fits", WordWrappingWrap, s, wide, []string{s}},
		{"no wrap", WordWrappingNoWrap, s, narrow, []string{s}},
		{"long word", WordWrappingWrap, "aaaaaaaaaa", 1, []string{"aaaaaaaaaa"}},
		{"paragraphs", WordWrappingWrap, "ab\r\ncd", wide, []string{"ab", "cd"}},
		{"empty", WordWrappingWrap, "", wide, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf.props.WordWrapping = tt.wrap
			lines := tf.lines(tt.s, tt.width)
			got := make([]string, len(lines))
			for i, l := range lines {
				got[i] = string(l)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("lines = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("lines = %q, want %q", got, tt.want)
					break
				}
			}
		})
	}
}

func layoutBounds(t *testing.T, tf *textFormat, s string, box math2d.RectF) (minX, minY, maxX, maxY float64) {
	t.Helper()
	cs := path.Flatten(tf.layout(s, box), path.Identity(), path.Tolerance)
	minX, minY, maxX, maxY, ok := path.Bounds(cs)
	if !ok {
		t.Fatalf("layout(%q) produced no outlines", s)
	}
	return minX, minY, maxX, maxY
}

func TestTextAlignment(t *testing.T) {
	box := math2d.Rect(0, 0, 200, 100)
	tests := []struct {
		name  string
		align TextAlignment
		dir   ReadingDirection
		check func(minX, maxX float64) bool
	}{
		{"leading", TextAlignmentLeading, ReadingDirectionLeftToRight, func(minX, maxX float64) bool { return minX < 20 }},
		{"trailing", TextAlignmentTrailing, ReadingDirectionLeftToRight, func(minX, maxX float64) bool { return maxX > 180 }},
		{"center", TextAlignmentCenter, ReadingDirectionLeftToRight, func(minX, maxX float64) bool { return minX > 20 && maxX < 180 }},
		{"leading rtl", TextAlignmentLeading, ReadingDirectionRightToLeft, func(minX, maxX float64) bool { return maxX > 180 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf := testTextFormat(t, TextFormatProperties{FontSize: 16, TextAlignment: tt.align, ReadingDirection: tt.dir})
			minX, _, maxX, _ := layoutBounds(t, tf, "Hello", box)
			if !tt.check(minX, maxX) {
				t.Errorf("text spans x = [%v, %v] in a 200 wide box", minX, maxX)
			}
		})
	}
}

func TestParagraphAlignment(t *testing.T) {
	box := math2d.Rect(0, 0, 200, 200)
	near := testTextFormat(t, TextFormatProperties{FontSize: 16})
	far := testTextFormat(t, TextFormatProperties{FontSize: 16, ParagraphAlignment: ParagraphAlignmentFar})

	_, nearTop, _, _ := layoutBounds(t, near, "Hello", box)
	_, _, _, farBottom := layoutBounds(t, far, "Hello", box)
	if nearTop > 20 {
		t.Errorf("near-aligned text starts at y = %v, want near the top", nearTop)
	}
	if farBottom < 180 {
		t.Errorf("far-aligned text ends at y = %v, want near the bottom", farBottom)
	}
}

func TestLineSpacing(t *testing.T) {
	tf := testTextFormat(t, TextFormatProperties{FontSize: 16, LineSpacing: 40})
	_, top1, _, _ := layoutBounds(t, tf, "H", math2d.Rect(0, 0, 200, 200))
	_, top2, _, _ := layoutBounds(t, tf, "\nH", math2d.Rect(0, 0, 200, 200))
	if d := top2 - top1; d < 39.9 || d > 40.1 {
		t.Errorf("second line is %v below the first, want 40", d)
	}
}
