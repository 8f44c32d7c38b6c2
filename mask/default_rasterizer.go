package mask

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/hexcave/fract"

var _ Rasterizer = (*DefaultRasterizer)(nil)

// DefaultRasterizer rasterizes outlines with [vector.Rasterizer],
// producing anti-aliased masks. The zero value is ready to use.
//
// The underlying rasterizer is reused between calls, so a single
// DefaultRasterizer must not be used from multiple goroutines.
type DefaultRasterizer struct {
	rasterizer vector.Rasterizer
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) Rasterize(outline sfnt.Segments, origin fract.Point) (*image.Alpha, error) {
	at := place(fract.FromFixedRect(outline.Bounds()), origin)
	self.rasterizer.Reset(at.width, at.height)
	self.rasterizer.DrawOp = draw.Src
	trace(&self.rasterizer, outline, at.offset)

	mask := image.NewAlpha(image.Rect(0, 0, at.width, at.height))
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = mask.Rect.Add(at.corner)
	return mask, nil
}
