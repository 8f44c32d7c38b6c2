package mask

import "fmt"
import "image"
import "strconv"

import "golang.org/x/image/vector"
import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/hexcave/fract"

// Rasterizer is the interface for glyph outline rasterization to an
// alpha mask.
//
// Mask rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. The outline must be
	// drawn at the given fractional position (always positive coords between
	// 0 and 0:63 (= 0.984375)).
	//
	// The returned mask bounds are relative to the glyph origin, with y
	// growing downwards, so Rect.Min.X is the left bearing and
	// -Rect.Min.Y the top bearing.
	Rasterize(sfnt.Segments, fract.Point) (*image.Alpha, error)
}

// Returns the rasterizer for the given config name: "default" (or
// empty) for [DefaultRasterizer], "sharp" for [SharpRasterizer].
func New(name string) (Rasterizer, error) {
	switch name {
	case "", "default":
		return &DefaultRasterizer{}, nil
	case "sharp":
		return &SharpRasterizer{}, nil
	default:
		return nil, fmt.Errorf("unknown rasterizer %q", name)
	}
}

// A low level method to rasterize glyph masks.
//
// The given drawing coordinate can be the current drawing dot, but only
// its fractional part will be considered.
//
// The image returned will be nil if the segments are empty or do
// not include any active lines or curves (e.g.: space glyphs).
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, dot fract.Point) (*image.Alpha, error) {
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		return rasterizer.Rasterize(outline, dot)
	}
	return nil, nil // nothing to draw
}

// Traces the outline into the vector rasterizer, shifting every point
// by the given offset.
func trace(rasterizer *vector.Rasterizer, outline sfnt.Segments, offset fract.Point) {
	at := func(point fixed.Point26_6) (float32, float32) {
		return fract.FromFixedPoint(point).AddPoint(offset).ToFloat32s()
	}

	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			rasterizer.MoveTo(at(segment.Args[0]))
		case sfnt.SegmentOpLineTo:
			rasterizer.LineTo(at(segment.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := at(segment.Args[0])
			x, y := at(segment.Args[1])
			rasterizer.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := at(segment.Args[0])
			c2x, c2y := at(segment.Args[1])
			x, y := at(segment.Args[2])
			rasterizer.CubeTo(c1x, c1y, c2x, c2y, x, y)
		default:
			panic("unexpected segment op " + strconv.Itoa(int(segment.Op)))
		}
	}
}

// Mask placement for an outline. The vector rasterizer only works on
// the positive quadrant, so outlines are shifted by offset while
// tracing and the final mask is moved back by corner.
type placement struct {
	width int
	height int
	offset fract.Point
	corner image.Point
}

// Only the fractional part of the origin matters.
func place(bounds fract.Rect, origin fract.Point) placement {
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	offset := fract.UnitsToPoint(origin.X.FractShift() - minX, origin.Y.FractShift() - minY)
	return placement{
		width: (bounds.Max.X + offset.X).Ceil().ToIntFloor(),
		height: (bounds.Max.Y + offset.Y).Ceil().ToIntFloor(),
		offset: offset,
		corner: image.Pt(minX.ToIntFloor(), minY.ToIntFloor()),
	}
}
