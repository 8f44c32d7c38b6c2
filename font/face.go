package font

import "bytes"
import "errors"
import "fmt"
import "strconv"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/math/fixed"
import ximgfont "golang.org/x/image/font"
import gotext "github.com/go-text/typesetting/font"

import "github.com/tinne26/hexcave/fract"

var ErrInvalidSize = errors.New("font size must be positive")

// Unit for [Size] values.
type Unit uint8
const (
	Pixels Unit = iota // the value is the pixel height (ppem)
	Points             // the value is in points, converted through the DPI
)

// Name of the unit as written on config files ("px" or "pt").
func (self Unit) String() string {
	switch self {
	case Pixels: return "px"
	case Points: return "pt"
	default:
		return "Unit(" + strconv.Itoa(int(self)) + ")"
	}
}

// Parses "px" or "pt". An empty string is interpreted as pixels.
func ParseUnit(name string) (Unit, error) {
	switch name {
	case "", "px": return Pixels, nil
	case "pt": return Points, nil
	default:
		return Pixels, fmt.Errorf("unknown font size unit %q", name)
	}
}

// A font size. When the DPI is zero with [Points], 72 is assumed,
// which makes points and pixels equivalent.
type Size struct {
	Value float64
	Unit Unit
	DPI float64
}

// Returns the size as a pixel height in 26.6 fixed point.
func (self Size) Pixels() fract.Unit {
	if self.Unit == Points {
		dpi := self.DPI
		if dpi == 0 { dpi = 72 }
		return fract.FromFloat64(self.Value*dpi/72.0)
	}
	return fract.FromFloat64(self.Value)
}

// Shorthand for a pixel [Size].
func Px(value float64) Size { return Size{ Value: value, Unit: Pixels } }

// A parsed font at a fixed size.
//
// A Face is not safe for concurrent use: outline loading reuses an
// internal buffer. Hexcave only touches faces from the render thread.
type Face struct {
	name string
	data []byte
	sfnt *sfnt.Font
	shaping *gotext.Face
	size Size
	ppem fract.Unit
	buffer sfnt.Buffer
}

// Parses the given font data and creates a face with the given size.
// The data must not be modified afterwards.
func NewFace(data []byte, size Size) (*Face, error) {
	ppem := size.Pixels()
	if ppem <= 0 {
		return nil, fmt.Errorf("%w (got %v%s)", ErrInvalidSize, size.Value, size.Unit)
	}

	sfntFont, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font for rasterization: %w", err)
	}
	shapingFace, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font for shaping: %w", err)
	}

	return &Face{
		name: fontName(sfntFont),
		data: data,
		sfnt: sfntFont,
		shaping: shapingFace,
		size: size,
		ppem: ppem,
	}, nil
}

// Returns a face for the embedded Go Regular font.
func Default(size Size) (*Face, error) {
	return NewFace(goregular.TTF, size)
}

// Returns the full font name, or an empty string if the font
// doesn't declare it.
func (self *Face) Name() string { return self.name }

// Returns the size the face was created with.
func (self *Face) Size() Size { return self.size }

// Returns the pixel height (ppem) of the face.
func (self *Face) PixelSize() fract.Unit { return self.ppem }

// Returns the underlying sfnt font.
func (self *Face) Sfnt() *sfnt.Font { return self.sfnt }

// Returns the go-text face used for shaping. The go-text face must
// not be used concurrently either.
func (self *Face) ShapingFace() *gotext.Face { return self.shaping }

// Returns the number of glyphs in the font.
func (self *Face) NumGlyphs() int { return self.sfnt.NumGlyphs() }

// Returns the glyph index for the given rune, or 0 (notdef) if the
// font doesn't have it.
func (self *Face) GlyphIndex(codePoint rune) sfnt.GlyphIndex {
	index, err := self.sfnt.GlyphIndex(&self.buffer, codePoint)
	if err != nil { return 0 }
	return index
}

// Loads the outline of the given glyph at the face size. The segments
// use y-down coordinates relative to the glyph origin.
//
// The returned segments are only valid until the next call to a Face
// method.
func (self *Face) Outline(index sfnt.GlyphIndex) (sfnt.Segments, error) {
	return self.sfnt.LoadGlyph(&self.buffer, index, fixed.Int26_6(self.ppem), nil)
}

// Returns the face metrics at the face size.
func (self *Face) Metrics() (ximgfont.Metrics, error) {
	return self.sfnt.Metrics(&self.buffer, fixed.Int26_6(self.ppem), ximgfont.HintingNone)
}

// Returns the runes from the given text that can't be found in the
// font. Duplicates are only reported once. If the font can't be
// queried, the error is returned along with the runes gathered so far.
func (self *Face) MissingRunes(text string) ([]rune, error) {
	var missing []rune
	seen := make(map[rune]struct{})
	for _, codePoint := range text {
		if codePoint == '\n' { continue }
		if _, done := seen[codePoint]; done { continue }
		seen[codePoint] = struct{}{}

		index, err := self.sfnt.GlyphIndex(&self.buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 {
			missing = append(missing, codePoint)
		}
	}
	return missing, nil
}

// Returns the full font name ("Go Regular"), falling back to the
// family name. Empty if the font has neither.
func fontName(font *sfnt.Font) string {
	var buffer sfnt.Buffer
	for _, id := range []sfnt.NameID{sfnt.NameIDFull, sfnt.NameIDFamily} {
		name, err := font.Name(&buffer, id)
		if err == nil && name != "" { return name }
	}
	return ""
}
