// The font subpackage parses font files and wraps them in a sized
// [Face], the single font object used by the rest of hexcave.
//
// A [Face] keeps two views of the same font data: an sfnt.Font from
// golang.org/x/image, used to load glyph outlines for rasterization,
// and a go-text/typesetting face, used for shaping. Both index glyphs
// the same way, so the glyph ids returned by shaping can be passed
// directly to [Face.Outline]().
//
// Only one font at one size is expected per process. There's no
// runtime switching and no fallback.
package font
