package mask

import "image"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/hexcave/fract"

var _ Rasterizer = (*SharpRasterizer)(nil)

// A rasterizer that quantizes all glyph mask values to fully opaque
// or fully transparent. Useful for pixel art fonts, which otherwise
// get blurry edges when drawn at fractional scales.
type SharpRasterizer struct {
	DefaultRasterizer
	Threshold uint8 // 0 is interpreted as 128
}

// Satisfies the [Rasterizer] interface.
func (self *SharpRasterizer) Rasterize(outline sfnt.Segments, origin fract.Point) (*image.Alpha, error) {
	mask, err := self.DefaultRasterizer.Rasterize(outline, origin)
	if err != nil { return mask, err }

	threshold := self.Threshold
	if threshold == 0 { threshold = 128 }
	for i := 0; i < len(mask.Pix); i++ {
		if mask.Pix[i] < threshold {
			mask.Pix[i] = 0
		} else {
			mask.Pix[i] = 255
		}
	}
	return mask, nil
}
