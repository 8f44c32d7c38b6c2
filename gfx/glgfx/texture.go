package glgfx

import "image"

import "github.com/go-gl/gl/v3.3-core/gl"

import "github.com/tinne26/hexcave/gfx"

var _ gfx.Texture = (*Texture)(nil)

// A GL_RED texture with clamp-to-edge wrapping and linear filtering.
type Texture struct {
	id uint32
	width int
	height int
}

func (self *Texture) Size() (int, int) { return self.width, self.height }

// Returns the GL texture name, or 0 if released.
func (self *Texture) ID() uint32 { return self.id }

func (self *Texture) Release() {
	if self.id == 0 { return }
	gl.DeleteTextures(1, &self.id)
	self.id = 0
}

// Uploads the mask to a new texture. Masks with a stride different
// from their width are compacted first.
func newTexture(mask *image.Alpha) *Texture {
	bounds := mask.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pix := mask.Pix
	if mask.Stride != width {
		pix = make([]byte, width*height)
		for y := 0; y < height; y++ {
			start := mask.PixOffset(bounds.Min.X, bounds.Min.Y + y)
			copy(pix[y*width : (y + 1)*width], mask.Pix[start : start + width])
		}
	}

	var id uint32
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	var data = gl.Ptr(nil)
	if len(pix) > 0 { data = gl.Ptr(pix) }
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(width), int32(height), 0, gl.RED, gl.UNSIGNED_BYTE, data)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return &Texture{ id: id, width: width, height: height }
}
