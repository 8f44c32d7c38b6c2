package gfx

import "image"
import "image/color"

import "github.com/go-gl/mathgl/mgl32"

// A GPU texture holding a single channel glyph mask.
type Texture interface {
	// Returns the texture size in pixels.
	Size() (width, height int)

	// Frees the GPU resources. The texture can't be used afterwards.
	// Releasing a texture twice is a no-op.
	Release()
}

// A Device creates textures from alpha masks.
type Device interface {
	// Uploads the given mask to a new single channel texture.
	// Only the mask pixels matter, not its bounds origin.
	NewTexture(mask *image.Alpha) (Texture, error)
}

// A Pipeline draws textured quads with a projection and a color
// uniform. Draw calls must be wrapped between Begin() and End().
type Pipeline interface {
	Device

	// Starts a batch of quad draws with the given uniforms. The color
	// components are in [0, 1].
	Begin(projection mgl32.Mat4, color mgl32.Vec3)

	// Draws the quad with the given texture. The quad is fully
	// consumed before DrawQuad returns, so it can be reused.
	DrawQuad(texture Texture, quad *Quad)

	// Ends the current batch.
	End()
}

// A LineDrawer draws 2D line segments in the same logical space used
// for quads.
type LineDrawer interface {
	DrawLines(projection mgl32.Mat4, lines []Line, color mgl32.Vec3)
}

// A line segment in logical coordinates.
type Line struct {
	From mgl32.Vec2
	To mgl32.Vec2
}

// A quad vertex: position (x, y) and texture coordinates (u, v).
type Vertex [4]float32

// Two triangles, six vertices.
type Quad [6]Vertex

// Sets the quad to the rectangle (x0, y0)-(x1, y1), with y0 < y1 in
// the y-up logical space. The top edge y1 samples v = 0.
func (self *Quad) Set(x0, y0, x1, y1 float32) {
	self[0] = Vertex{x0, y1, 0, 0}
	self[1] = Vertex{x0, y0, 0, 1}
	self[2] = Vertex{x1, y0, 1, 1}
	self[3] = Vertex{x0, y1, 0, 0}
	self[4] = Vertex{x1, y0, 1, 1}
	self[5] = Vertex{x1, y1, 1, 0}
}

// Returns the bounds of the quad as (minX, minY, maxX, maxY).
func (self *Quad) Bounds() (float32, float32, float32, float32) {
	minX, minY := self[0][0], self[0][1]
	maxX, maxY := minX, minY
	for i := 1; i < len(self); i++ {
		x, y := self[i][0], self[i][1]
		if x < minX { minX = x }
		if x > maxX { maxX = x }
		if y < minY { minY = y }
		if y > maxY { maxY = y }
	}
	return minX, minY, maxX, maxY
}

// The logical viewport size used when none is configured.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// Returns the orthographic projection for a logical viewport of the
// given size, y-up with the origin at the bottom-left corner.
func Projection(width, height float32) mgl32.Mat4 {
	return mgl32.Ortho(0, width, 0, height, -1, 1)
}

// Converts a color to a vector with components in [0, 1]. Alpha is
// dropped, and premultiplied components are divided back.
func ColorVec(subject color.Color) mgl32.Vec3 {
	rgbaColor, isRGBA := subject.(color.RGBA)
	if isRGBA && rgbaColor.A == 255 {
		r, g, b := rgbaColor.R, rgbaColor.G, rgbaColor.B
		return mgl32.Vec3{float32(r)/255, float32(g)/255, float32(b)/255}
	}

	r, g, b, a := subject.RGBA()
	if a == 0 { return mgl32.Vec3{} }
	fa := float32(a)
	return mgl32.Vec3{float32(r)/fa, float32(g)/fa, float32(b)/fa}
}

// Applies the projection to the given logical point and maps the
// resulting normalized device coordinates to a y-down target of the
// given size, the way a GL viewport transform would (with a flip).
func ToTarget(projection mgl32.Mat4, x, y float32, targetWidth, targetHeight int) (float32, float32) {
	ndc := projection.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	if ndc[3] != 0 && ndc[3] != 1 {
		ndc = ndc.Mul(1/ndc[3])
	}
	tx := (ndc[0] + 1)/2*float32(targetWidth)
	ty := (1 - ndc[1])/2*float32(targetHeight)
	return tx, ty
}
