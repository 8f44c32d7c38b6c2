package mask

import "image"
import "testing"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/hexcave/fract"

func moveTo(segments []sfnt.Segment, x, y fixed.Int26_6) []sfnt.Segment {
	return append(segments, sfnt.Segment{
		Op: sfnt.SegmentOpMoveTo,
		Args: [3]fixed.Point26_6{ fixed.Point26_6{X: x, Y: y} },
	})
}

func lineTo(segments []sfnt.Segment, x, y fixed.Int26_6) []sfnt.Segment {
	return append(segments, sfnt.Segment{
		Op: sfnt.SegmentOpLineTo,
		Args: [3]fixed.Point26_6{ fixed.Point26_6{X: x, Y: y} },
	})
}

// A square from (minX, minY) to (maxX, maxY), in whole pixels.
func square(minX, minY, maxX, maxY int) sfnt.Segments {
	var segments []sfnt.Segment
	segments = moveTo(segments, fixed.I(minX), fixed.I(minY))
	segments = lineTo(segments, fixed.I(maxX), fixed.I(minY))
	segments = lineTo(segments, fixed.I(maxX), fixed.I(maxY))
	segments = lineTo(segments, fixed.I(minX), fixed.I(maxY))
	segments = lineTo(segments, fixed.I(minX), fixed.I(minY))
	return sfnt.Segments(segments)
}

func TestRasterizeSquare(t *testing.T) {
	// glyph-like square sitting on the baseline: y-down, so above is negative
	outline := square(2, -10, 8, 0)
	mask, err := Rasterize(outline, &DefaultRasterizer{}, fract.Point{})
	if err != nil { t.Fatal(err) }
	if mask == nil { t.Fatal("expected mask") }

	want := image.Rect(2, -10, 8, 0)
	if mask.Rect != want {
		t.Fatalf("expected bounds %v, got %v", want, mask.Rect)
	}
	for y := want.Min.Y; y < want.Max.Y; y++ {
		for x := want.Min.X; x < want.Max.X; x++ {
			if mask.AlphaAt(x, y).A != 255 {
				t.Fatalf("expected full coverage at (%d, %d), got %d", x, y, mask.AlphaAt(x, y).A)
			}
		}
	}
}

func TestRasterizeEmpty(t *testing.T) {
	var segments []sfnt.Segment
	mask, err := Rasterize(segments, &DefaultRasterizer{}, fract.Point{})
	if err != nil || mask != nil {
		t.Fatalf("expected (nil, nil), got (%v, %v)", mask, err)
	}

	segments = moveTo(segments, fixed.I(1), fixed.I(1))
	mask, err = Rasterize(segments, &DefaultRasterizer{}, fract.Point{})
	if err != nil || mask != nil {
		t.Fatalf("expected (nil, nil) for move-only outline, got (%v, %v)", mask, err)
	}
}

func TestSharpRasterizer(t *testing.T) {
	// half pixel offsets create partial coverage on the default rasterizer
	var segments []sfnt.Segment
	segments = moveTo(segments, 32, -640)
	segments = lineTo(segments, 416, -640)
	segments = lineTo(segments, 416, 0)
	segments = lineTo(segments, 32, 0)
	segments = lineTo(segments, 32, -640)

	soft, err := Rasterize(segments, &DefaultRasterizer{}, fract.Point{})
	if err != nil { t.Fatal(err) }
	partial := false
	for _, value := range soft.Pix {
		if value != 0 && value != 255 { partial = true }
	}
	if !partial { t.Fatal("expected partial coverage on default rasterizer") }

	sharp, err := Rasterize(segments, &SharpRasterizer{}, fract.Point{})
	if err != nil { t.Fatal(err) }
	for i, value := range sharp.Pix {
		if value != 0 && value != 255 {
			t.Fatalf("pix #%d: expected 0 or 255, got %d", i, value)
		}
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"", "default", "sharp"} {
		rasterizer, err := New(name)
		if err != nil || rasterizer == nil {
			t.Fatalf("New(%q) failed: %v", name, err)
		}
	}
	if _, err := New("blurry"); err == nil {
		t.Fatal("expected error for unknown rasterizer")
	}
}

func TestPlace(t *testing.T) {
	bounds := fract.Rect{
		Min: fract.UnitsToPoint(-96, -640),
		Max: fract.UnitsToPoint(320, 10),
	}
	at := place(bounds, fract.Point{})
	if at.corner != image.Pt(-2, -10) {
		t.Fatalf("unexpected mask corner %v", at.corner)
	}
	if at.offset.X != 128 || at.offset.Y != 640 {
		t.Fatalf("unexpected offset %v", at.offset)
	}
	if at.width != 7 || at.height != 11 {
		t.Fatalf("expected 7x11, got %dx%d", at.width, at.height)
	}

	// half pixel origin widens the mask by one column
	at = place(bounds, fract.UnitsToPoint(32 + 64*5, 0))
	if at.offset.X != 160 || at.width != 8 {
		t.Fatalf("expected offset 160 and width 8, got %v and %d", at.offset.X, at.width)
	}
}
