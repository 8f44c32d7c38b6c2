// The shape subpackage converts lines of text into runs of positioned
// glyphs using the HarfBuzz port from go-text/typesetting.
package shape

import "github.com/go-text/typesetting/di"
import "github.com/go-text/typesetting/language"
import "github.com/go-text/typesetting/shaping"
import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/hexcave/font"
import "github.com/tinne26/hexcave/fract"

// A shaped glyph. Offsets and advances are in 1/64ths of a pixel.
type Record struct {
	Glyph sfnt.GlyphIndex
	Cluster int // index of the first rune of the source cluster
	XOffset fract.Unit
	YOffset fract.Unit
	XAdvance fract.Unit
	YAdvance fract.Unit
}

// Shaped glyphs in visual order.
type Run []Record

// Returns the sum of the horizontal advances.
func (self Run) Advance() fract.Unit {
	var total fract.Unit
	for _, record := range self {
		total += record.XAdvance
	}
	return total
}

// Shaper shapes single lines of text with a fixed face. Line breaks
// are not handled: a '\n' is shaped like any other rune.
//
// Shapers are not safe for concurrent use.
type Shaper struct {
	face *font.Face
	shaper shaping.HarfbuzzShaper
	language language.Language
	runes []rune
}

// Creates a new shaper for the given face. The language is fixed to
// English, which only affects language-specific features.
func New(face *font.Face) *Shaper {
	if face == nil { panic("nil face") }
	return &Shaper{ face: face, language: language.NewLanguage("en") }
}

// Returns the face used for shaping.
func (self *Shaper) Face() *font.Face { return self.face }

// Shapes the given line left to right. The script is guessed from
// the first non-space rune. The returned run is a new slice.
func (self *Shaper) Shape(line string) Run {
	self.runes = append(self.runes[:0], []rune(line)...)
	if len(self.runes) == 0 { return nil }

	input := shaping.Input{
		Text:      self.runes,
		RunStart:  0,
		RunEnd:    len(self.runes),
		Direction: di.DirectionLTR,
		Face:      self.face.ShapingFace(),
		Size:      self.face.PixelSize().ToFixed(),
		Script:    detectScript(self.runes),
		Language:  self.language,
	}
	output := self.shaper.Shape(input)

	run := make(Run, len(output.Glyphs))
	vertical := input.Direction.IsVertical()
	for i, glyph := range output.Glyphs {
		run[i] = Record{
			Glyph:   sfnt.GlyphIndex(glyph.GlyphID),
			Cluster: glyph.TextIndex(),
			XOffset: fract.FromFixed(glyph.XOffset),
			YOffset: fract.FromFixed(glyph.YOffset),
		}
		// the advance is along the run direction
		if vertical {
			run[i].YAdvance = fract.FromFixed(glyph.Advance)
		} else {
			run[i].XAdvance = fract.FromFixed(glyph.Advance)
		}
	}
	return run
}

// Returns the width of the shaped line in pixels.
func (self *Shaper) Measure(line string) float32 {
	return self.Shape(line).Advance().ToFloat32()
}

func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
