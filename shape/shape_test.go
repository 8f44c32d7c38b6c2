package shape

import "reflect"
import "testing"

import "github.com/tinne26/hexcave/font"

func newTestShaper(t *testing.T) *Shaper {
	t.Helper()
	face, err := font.Default(font.Px(48))
	if err != nil { t.Fatal(err) }
	return New(face)
}

func TestShapeHi(t *testing.T) {
	shaper := newTestShaper(t)
	run := shaper.Shape("Hi")
	if len(run) != 2 { t.Fatalf("expected 2 records, got %d", len(run)) }

	face := shaper.Face()
	if run[0].Glyph != face.GlyphIndex('H') || run[1].Glyph != face.GlyphIndex('i') {
		t.Fatalf("unexpected glyphs %d, %d", run[0].Glyph, run[1].Glyph)
	}
	if run[0].Cluster != 0 || run[1].Cluster != 1 {
		t.Fatalf("unexpected clusters %d, %d", run[0].Cluster, run[1].Cluster)
	}

	var pen, prev float32
	for i, record := range run {
		if record.XAdvance <= 0 {
			t.Fatalf("record #%d: expected positive advance, got %d", i, record.XAdvance)
		}
		if record.YAdvance != 0 {
			t.Fatalf("record #%d: expected zero y advance, got %d", i, record.YAdvance)
		}
		pen += record.XAdvance.ToFloat32()
		if pen < prev { t.Fatalf("cumulative advance decreased at #%d", i) }
		prev = pen
	}
	if shaper.Measure("Hi") != pen {
		t.Fatalf("expected Measure() = %v, got %v", pen, shaper.Measure("Hi"))
	}
}

func TestShapeDeterministic(t *testing.T) {
	shaper := newTestShaper(t)
	lines := []string{
		"You wake up in a dark cave.",
		"Go back to sleep?",
		"    leading spaces",
		"Ünïcödé",
	}
	for _, line := range lines {
		first := shaper.Shape(line)
		second := shaper.Shape(line)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("shaping %q twice gave different runs", line)
		}
	}
}

func TestShapeEmpty(t *testing.T) {
	shaper := newTestShaper(t)
	if run := shaper.Shape(""); len(run) != 0 {
		t.Fatalf("expected empty run, got %d records", len(run))
	}
	if shaper.Measure("") != 0 { t.Fatal("expected zero width") }
}

func TestShapeSpaceAdvance(t *testing.T) {
	shaper := newTestShaper(t)
	withSpace := shaper.Measure("a b")
	without := shaper.Measure("ab")
	if withSpace <= without {
		t.Fatalf("expected the space to advance the pen (%v <= %v)", withSpace, without)
	}
}
