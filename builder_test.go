package d2d

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/d2d/math2d"
)

var nan = float32(math.NaN())

func TestStrokeStyleBuilder(t *testing.T) {
	f := testFactory(t)

	s, err := NewStrokeStyleBuilder().
		Caps(CapStyleRound).
		LineJoin(LineJoinBevel).
		MiterLimit(4).
		DashOffset(1).
		Dashes(2, 1).
		Build(f)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer s.Release()

	want := StrokeStyleProperties{
		StartCap:   CapStyleRound,
		EndCap:     CapStyleRound,
		DashCap:    CapStyleRound,
		LineJoin:   LineJoinBevel,
		MiterLimit: 4,
		DashStyle:  DashStyleCustom,
		DashOffset: 1,
	}
	if got := s.Properties(); got != want {
		t.Errorf("Properties() = %+v, want %+v", got, want)
	}
	dashes := s.Dashes()
	if len(dashes) != 2 || dashes[0] != 2 || dashes[1] != 1 {
		t.Errorf("Dashes() = %v, want [2 1]", dashes)
	}
	// The returned slice is a copy.
	dashes[0] = 100
	if got := s.Dashes()[0]; got != 2 {
		t.Errorf("Dashes()[0] = %v after modifying a copy, want 2", got)
	}
}

func TestStrokeStyleBuilderValidation(t *testing.T) {
	f := testFactory(t)

	tests := []struct {
		name  string
		b     *StrokeStyleBuilder
		field string
		want  error
	}{
		{"cap", NewStrokeStyleBuilder().StartCap(CapStyle(9)), "Cap", ErrInvalidField},
		{"join", NewStrokeStyleBuilder().LineJoin(LineJoin(9)), "LineJoin", ErrInvalidField},
		{"dash style", NewStrokeStyleBuilder().DashStyle(DashStyle(9)), "DashStyle", ErrInvalidField},
		{"miter limit", NewStrokeStyleBuilder().MiterLimit(nan), "MiterLimit", ErrInvalidField},
		{"dash offset", NewStrokeStyleBuilder().DashOffset(nan), "DashOffset", ErrInvalidField},
		{"custom without dashes", NewStrokeStyleBuilder().DashStyle(DashStyleCustom), "Dashes", ErrMissingField},
		{"dashes without custom", NewStrokeStyleBuilder().Dashes(1, 1).DashStyle(DashStyleDot), "Dashes", ErrInvalidField},
		{"negative dash", NewStrokeStyleBuilder().Dashes(1, -1), "Dashes", ErrInvalidField},
		{"zero pattern", NewStrokeStyleBuilder().Dashes(0, 0), "Dashes", ErrInvalidField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.b.Build(f)
			if !isField(err, tt.field, tt.want) {
				t.Errorf("Build() error = %v, want %v for field %s", err, tt.want, tt.field)
			}
			if s != nil {
				t.Error("Build() returned a style with an error")
			}
		})
	}
}

func TestSolidColorBrushBuilder(t *testing.T) {
	f := testFactory(t)
	rt, _ := testTarget(t, f, 4, 4)

	m := math2d.Translation(1, 2)
	b, err := NewSolidColorBrushBuilder(math2d.Red).Opacity(0.5).Transform(m).Build(rt)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer b.Release()

	if got := b.Color(); got != math2d.Red {
		t.Errorf("Color() = %v, want %v", got, math2d.Red)
	}
	if got := b.Opacity(); got != 0.5 {
		t.Errorf("Opacity() = %v, want 0.5", got)
	}
	if got := b.Transform(); got != m {
		t.Errorf("Transform() = %v, want %v", got, m)
	}
	b.SetColor(math2d.Blue)
	if got := b.Color(); got != math2d.Blue {
		t.Errorf("Color() after SetColor = %v, want %v", got, math2d.Blue)
	}
}

func TestBrushBuilderValidation(t *testing.T) {
	f := testFactory(t)
	rt, _ := testTarget(t, f, 4, 4)

	tests := []struct {
		name  string
		build func() error
		field string
		want  error
	}{
		{"opacity above one", func() error {
			_, err := NewSolidColorBrushBuilder(math2d.Red).Opacity(1.5).Build(rt)
			return err
		}, "Opacity", ErrInvalidField},
		{"transform", func() error {
			_, err := NewSolidColorBrushBuilder(math2d.Red).Transform(math2d.Translation(nan, 0)).Build(rt)
			return err
		}, "Transform", ErrInvalidField},
		{"color", func() error {
			_, err := NewSolidColorBrushBuilder(math2d.ColorF{R: nan}).Build(rt)
			return err
		}, "Color", ErrInvalidField},
		{"linear without stops", func() error {
			_, err := NewLinearGradientBrushBuilder(math2d.Pt(0, 0), math2d.Pt(1, 0)).Build(rt)
			return err
		}, "Stops", ErrMissingField},
		{"radial without stops", func() error {
			_, err := NewRadialGradientBrushBuilder(math2d.Pt(0, 0), 1, 1).Build(rt)
			return err
		}, "Stops", ErrMissingField},
		{"empty stop collection", func() error {
			_, err := NewGradientStopCollectionBuilder().Build(rt)
			return err
		}, "Stops", ErrMissingField},
		{"stop position", func() error {
			_, err := NewGradientStopCollectionBuilder().Stop(nan, math2d.Red).Build(rt)
			return err
		}, "Stops", ErrInvalidField},
		{"gamma", func() error {
			_, err := NewGradientStopCollectionBuilder().Stop(0, math2d.Red).Gamma(Gamma(4)).Build(rt)
			return err
		}, "Gamma", ErrInvalidField},
		{"bitmap brush extend", func() error {
			_, err := NewBitmapBrushBuilder(nil).ExtendMode(ExtendMode(8), ExtendModeClamp).Build(rt)
			return err
		}, "ExtendMode", ErrInvalidField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.build(); !isField(err, tt.field, tt.want) {
				t.Errorf("Build() error = %v, want %v for field %s", err, tt.want, tt.field)
			}
		})
	}
}

func TestGradientBrushes(t *testing.T) {
	f := testFactory(t)
	rt, _ := testTarget(t, f, 4, 4)

	stops, err := NewGradientStopCollectionBuilder().
		Stop(1, math2d.Blue).
		Stop(0, math2d.Red).
		ExtendMode(ExtendModeMirror).
		Build(rt)
	if err != nil {
		t.Fatalf("GradientStopCollectionBuilder.Build() error = %v", err)
	}
	defer stops.Release()

	if got := stops.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if s := stops.Stops(); s[0].Position != 0 || s[1].Position != 1 {
		t.Errorf("Stops() = %v, want sorted by position", s)
	}
	if got := stops.Gamma(); got != Gamma2_2 {
		t.Errorf("Gamma() = %v, want %v", got, Gamma2_2)
	}
	if got := stops.ExtendMode(); got != ExtendModeMirror {
		t.Errorf("ExtendMode() = %v, want %v", got, ExtendModeMirror)
	}

	lin, err := NewLinearGradientBrushBuilder(math2d.Pt(0, 0), math2d.Pt(4, 0)).Stops(stops).Build(rt)
	if err != nil {
		t.Fatalf("LinearGradientBrushBuilder.Build() error = %v", err)
	}
	defer lin.Release()
	if got := lin.EndPoint(); got != math2d.Pt(4, 0) {
		t.Errorf("EndPoint() = %v, want (4, 0)", got)
	}
	got := lin.GradientStopCollection()
	if got.Count() != 2 {
		t.Errorf("GradientStopCollection().Count() = %d, want 2", got.Count())
	}
	got.Release()

	rad, err := NewRadialGradientBrushBuilder(math2d.Pt(2, 2), 2, 3).
		GradientOriginOffset(math2d.Pt(1, 0)).
		Stops(stops).
		Build(rt)
	if err != nil {
		t.Fatalf("RadialGradientBrushBuilder.Build() error = %v", err)
	}
	defer rad.Release()
	if rad.RadiusX() != 2 || rad.RadiusY() != 3 {
		t.Errorf("radii = (%v, %v), want (2, 3)", rad.RadiusX(), rad.RadiusY())
	}
	if got := rad.GradientOriginOffset(); got != math2d.Pt(1, 0) {
		t.Errorf("GradientOriginOffset() = %v, want (1, 0)", got)
	}

	if _, err := NewRadialGradientBrushBuilder(math2d.Pt(0, 0), -1, 1).Stops(stops).Build(rt); !isField(err, "Radius", ErrInvalidField) {
		t.Errorf("negative radius: error = %v, want %v", err, ErrInvalidField)
	}
}

func TestBitmapBuilder(t *testing.T) {
	f := testFactory(t)
	rt, _ := testTarget(t, f, 4, 4)

	bmp, err := NewBitmapBuilder().PixelSize(8, 4).Dpi(192, 192).Build(rt)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer bmp.Release()

	if got := bmp.PixelSize(); got != (math2d.SizeU{Width: 8, Height: 4}) {
		t.Errorf("PixelSize() = %v, want 8x4", got)
	}
	if got := bmp.Size(); got != (math2d.SizeF{Width: 4, Height: 2}) {
		t.Errorf("Size() = %v, want 4x2 DIPs at 192 DPI", got)
	}
	if got := bmp.PixelFormat().Format; got != FormatB8G8R8A8Unorm {
		t.Errorf("PixelFormat().Format = %v, want %v", got, FormatB8G8R8A8Unorm)
	}

	tests := []struct {
		name  string
		b     *BitmapBuilder
		field string
		want  error
	}{
		{"no size", NewBitmapBuilder(), "PixelSize", ErrMissingField},
		{"empty size", NewBitmapBuilder().PixelSize(0, 4), "PixelSize", ErrInvalidField},
		{"short pitch", NewBitmapBuilder().PixelSize(2, 2).Source(make([]byte, 16), 4), "Source", ErrInvalidField},
		{"short data", NewBitmapBuilder().PixelSize(2, 2).Source(make([]byte, 12), 8), "Source", ErrInvalidField},
		{"dpi", NewBitmapBuilder().PixelSize(1, 1).Dpi(-1, 96), "Dpi", ErrInvalidField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.b.Build(rt); !isField(err, tt.field, tt.want) {
				t.Errorf("Build() error = %v, want %v for field %s", err, tt.want, tt.field)
			}
		})
	}

	if _, err := NewBitmapBuilder().PixelSize(MaximumBitmapSize+1, 1).Build(rt); !errors.Is(err, StatusMaxTextureSizeExceeded) {
		t.Errorf("oversized: error = %v, want %v", err, StatusMaxTextureSizeExceeded)
	}
}

func TestBitmapCopyAndMap(t *testing.T) {
	f := testFactory(t)
	rt, _ := testTarget(t, f, 4, 4)

	px := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}
	src, err := NewBitmapBuilder().PixelSize(2, 2).Source(px, 8).Build(rt)
	if err != nil {
		t.Fatalf("Build(src) error = %v", err)
	}
	defer src.Release()

	dst, err := NewBitmapBuilder().
		PixelSize(2, 2).
		Options(BitmapOptionsCPURead | BitmapOptionsCannotDraw).
		Build(rt)
	if err != nil {
		t.Fatalf("Build(dst) error = %v", err)
	}
	defer dst.Release()

	if err := dst.CopyFromBitmap(nil, src, nil); err != nil {
		t.Fatalf("CopyFromBitmap() error = %v", err)
	}
	mr, err := dst.Map(MapOptionsRead)
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	for i := range px {
		if mr.Bits[i] != px[i] {
			t.Fatalf("Bits = %v, want %v", mr.Bits[:len(px)], px)
		}
	}
	if _, err := dst.Map(MapOptionsRead); !errors.Is(err, StatusWrongState) {
		t.Errorf("second Map() error = %v, want %v", err, StatusWrongState)
	}
	if err := dst.Unmap(); err != nil {
		t.Errorf("Unmap() error = %v", err)
	}
	if _, err := src.Map(MapOptionsRead); !errors.Is(err, StatusInvalidArg) {
		t.Errorf("Map() without CPURead error = %v, want %v", err, StatusInvalidArg)
	}
}

func TestBitmapWrongResourceDomain(t *testing.T) {
	f := testFactory(t)
	rt1, _ := testTarget(t, f, 4, 4)
	rt2, _ := testTarget(t, f, 4, 4)

	a, err := NewBitmapBuilder().PixelSize(2, 2).Build(rt1)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer a.Release()
	b, err := NewBitmapBuilder().PixelSize(2, 2).Build(rt2)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer b.Release()

	if err := a.CopyFromBitmap(nil, b, nil); !errors.Is(err, StatusWrongResourceDomain) {
		t.Errorf("CopyFromBitmap() error = %v, want %v", err, StatusWrongResourceDomain)
	}
}

func TestCreateBitmapFromImage(t *testing.T) {
	f := testFactory(t)
	rt, _ := testTarget(t, f, 4, 4)

	img := image.NewNRGBA(image.Rect(10, 10, 13, 12))
	img.Set(10, 10, color.NRGBA{R: 255, A: 255})
	bmp, err := CreateBitmapFromImage(rt, img)
	if err != nil {
		t.Fatalf("CreateBitmapFromImage() error = %v", err)
	}
	defer bmp.Release()

	if got := bmp.PixelSize(); got != (math2d.SizeU{Width: 3, Height: 2}) {
		t.Errorf("PixelSize() = %v, want 3x2", got)
	}
	if got := bmp.PixelFormat(); got.Format != FormatR8G8B8A8Unorm || got.AlphaMode != AlphaModePremultiplied {
		t.Errorf("PixelFormat() = %+v, want premultiplied R8G8B8A8", got)
	}

	if _, err := CreateBitmapFromImage(rt, nil); !errors.Is(err, StatusInvalidArg) {
		t.Errorf("nil image: error = %v, want %v", err, StatusInvalidArg)
	}
	if _, err := CreateBitmapFromImage(rt, image.NewRGBA(image.Rectangle{})); !isField(err, "img", ErrInvalidField) {
		t.Errorf("empty image: error = %v, want %v", err, ErrInvalidField)
	}
}

func TestBitmapBrush(t *testing.T) {
	f := testFactory(t)
	rt, _ := testTarget(t, f, 4, 4)

	bmp, err := NewBitmapBuilder().PixelSize(2, 2).Build(rt)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer bmp.Release()

	b, err := NewBitmapBrushBuilder(bmp).
		ExtendMode(ExtendModeWrap, ExtendModeMirror).
		InterpolationMode(BitmapInterpolationModeNearestNeighbor).
		Build(rt)
	if err != nil {
		t.Fatalf("BitmapBrushBuilder.Build() error = %v", err)
	}
	defer b.Release()

	if b.ExtendModeX() != ExtendModeWrap || b.ExtendModeY() != ExtendModeMirror {
		t.Errorf("extend modes = (%v, %v), want (wrap, mirror)", b.ExtendModeX(), b.ExtendModeY())
	}
	got := b.Bitmap()
	if got == nil {
		t.Fatal("Bitmap() = nil, want the brush bitmap")
	}
	got.Release()

	b.SetBitmap(nil)
	if got := b.Bitmap(); got != nil {
		got.Release()
		t.Error("Bitmap() != nil after SetBitmap(nil)")
	}
}

func TestTextFormatBuilder(t *testing.T) {
	f := testFactory(t)

	tf, err := NewTextFormatBuilder(14).
		TextAlignment(TextAlignmentCenter).
		ParagraphAlignment(ParagraphAlignmentFar).
		WordWrapping(WordWrappingNoWrap).
		LineSpacing(20).
		Build(f)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer tf.Release()

	if got := tf.FontSize(); got != 14 {
		t.Errorf("FontSize() = %v, want 14", got)
	}
	if got := tf.TextAlignment(); got != TextAlignmentCenter {
		t.Errorf("TextAlignment() = %v, want %v", got, TextAlignmentCenter)
	}
	if got := tf.ParagraphAlignment(); got != ParagraphAlignmentFar {
		t.Errorf("ParagraphAlignment() = %v, want %v", got, ParagraphAlignmentFar)
	}
	if got := tf.LineSpacing(); got != 20 {
		t.Errorf("LineSpacing() = %v, want 20", got)
	}
	if err := tf.SetReadingDirection(ReadingDirectionRightToLeft); err != nil {
		t.Errorf("SetReadingDirection() error = %v", err)
	}
	if got := tf.ReadingDirection(); got != ReadingDirectionRightToLeft {
		t.Errorf("ReadingDirection() = %v, want %v", got, ReadingDirectionRightToLeft)
	}
	if err := tf.SetWordWrapping(WordWrapping(5)); !errors.Is(err, StatusInvalidArg) {
		t.Errorf("SetWordWrapping(5) error = %v, want %v", err, StatusInvalidArg)
	}

	tests := []struct {
		name  string
		b     *TextFormatBuilder
		field string
	}{
		{"zero size", NewTextFormatBuilder(0), "FontSize"},
		{"nan size", NewTextFormatBuilder(nan), "FontSize"},
		{"line spacing", NewTextFormatBuilder(12).LineSpacing(-1), "LineSpacing"},
		{"alignment", NewTextFormatBuilder(12).TextAlignment(TextAlignment(7)), "TextAlignment"},
		{"direction", NewTextFormatBuilder(12).ReadingDirection(ReadingDirection(7)), "ReadingDirection"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.b.Build(f); !isField(err, tt.field, ErrInvalidField) {
				t.Errorf("Build() error = %v, want invalid %s", err, tt.field)
			}
		})
	}

	if _, err := NewTextFormatBuilder(12).FontData([]byte("not a font")).Build(f); !errors.Is(err, StatusInvalidArg) {
		t.Errorf("bad font data: error = %v, want %v", err, StatusInvalidArg)
	}
}

func TestErrorsWrapping(t *testing.T) {
	var err error = &StatusError{Op: "EndDraw", Code: StatusRecreateTarget}
	if !errors.Is(err, StatusRecreateTarget) {
		t.Error("errors.Is(StatusError, StatusRecreateTarget) = false")
	}
	if errors.Is(err, StatusWrongState) {
		t.Error("errors.Is(StatusError, StatusWrongState) = true")
	}
	var se *StatusError
	if !errors.As(err, &se) || se.Op != "EndDraw" {
		t.Errorf("errors.As() = %v, want Op EndDraw", se)
	}

	fe := missingField("BitmapBuilder", "PixelSize")
	if !errors.Is(fe, ErrMissingField) || errors.Is(fe, ErrInvalidField) {
		t.Errorf("missingField() = %v, want it to wrap only ErrMissingField", fe)
	}
	if got, want := fe.Error(), "d2d: BitmapBuilder: PixelSize: d2d: missing required field"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got, want := invalidField("B", "F", "bad").Error(), "d2d: B: F: bad"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
