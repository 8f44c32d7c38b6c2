// The fract subpackage defines a [Unit] type representing a 26.6
// fixed point value, which happens to be the exact unit that text
// shaping engines use for glyph offsets and advances (1/64th of a
// pixel). Keeping the values in this form until the very last moment
// avoids accumulating float errors while walking long glyph runs.
//
// Besides [Unit], the package defines the [Point] and [Rect] helper
// types and conversions from and to [fixed.Int26_6], which is what
// golang.org/x/image and go-text/typesetting use.
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
package fract
