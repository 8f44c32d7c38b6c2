// The text subpackage draws lines of text as one textured quad per
// glyph, combining a shaper, a glyph cache and a gfx pipeline.
package text

import "strings"
import "image/color"

import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/hexcave/gfx"
import "github.com/tinne26/hexcave/cache"
import "github.com/tinne26/hexcave/shape"

// The default distance between consecutive baselines, in logical pixels.
const DefaultLineStep = 50

// Renderer draws text through a gfx pipeline. It owns a single quad
// that is rewritten for every glyph.
//
// Renderers are not safe for concurrent use.
type Renderer struct {
	pipeline gfx.Pipeline
	shaper *shape.Shaper
	cache *cache.Cache
	projection mgl32.Mat4
	lineStep float32
	quad gfx.Quad
	lines []string
}

// Creates a renderer for the default logical viewport (1280x720).
func New(pipeline gfx.Pipeline, shaper *shape.Shaper, glyphs *cache.Cache) *Renderer {
	if pipeline == nil || shaper == nil || glyphs == nil {
		panic("nil renderer dependency")
	}
	return &Renderer{
		pipeline: pipeline,
		shaper: shaper,
		cache: glyphs,
		projection: gfx.Projection(gfx.DefaultWidth, gfx.DefaultHeight),
		lineStep: DefaultLineStep,
	}
}

// Sets the logical viewport size used for the projection.
func (self *Renderer) SetViewport(width, height float32) {
	self.projection = gfx.Projection(width, height)
}

// Returns the projection passed to the pipeline on each line.
func (self *Renderer) Projection() mgl32.Mat4 { return self.projection }

// Returns the distance between consecutive baselines.
func (self *Renderer) LineStep() float32 { return self.lineStep }

// Sets the distance between consecutive baselines. The step is not
// affected by the draw scale.
func (self *Renderer) SetLineStep(step float32) { self.lineStep = step }

// Returns the glyph cache.
func (self *Renderer) Cache() *cache.Cache { return self.cache }

// Draws the given text with its first baseline starting at (x, y),
// in the y-up logical space. Each '\n' moves the following line down
// by the line step. Glyph sizes and advances are multiplied by scale.
func (self *Renderer) Draw(text string, x, y, scale float32, clr color.Color) {
	colorVec := gfx.ColorVec(clr)
	self.lines = append(self.lines[:0], strings.Split(text, "\n")...)
	for i, line := range self.lines {
		self.drawLine(line, x, y - float32(i)*self.lineStep, scale, colorVec)
	}
}

// Returns the width of the given line in logical pixels at scale 1.
func (self *Renderer) Measure(line string) float32 {
	return self.shaper.Measure(line)
}

func (self *Renderer) drawLine(line string, x, y, scale float32, clr mgl32.Vec3) {
	self.pipeline.Begin(self.projection, clr)
	defer self.pipeline.End()

	penX, penY := x, y
	for _, record := range self.shaper.Shape(line) {
		glyph := self.cache.Get(record.Glyph)
		if glyph.Texture != nil {
			// y offsets from shaping grow upwards like our space does
			x0 := penX + (record.XOffset.ToFloat32() + float32(glyph.Left))*scale
			y1 := penY + (record.YOffset.ToFloat32() + float32(glyph.Top))*scale
			x1 := x0 + float32(glyph.Width)*scale
			y0 := y1 - float32(glyph.Height)*scale
			self.quad.Set(x0, y0, x1, y1)
			self.pipeline.DrawQuad(glyph.Texture, &self.quad)
		}
		penX += record.XAdvance.ToFloat32()*scale
		penY += record.YAdvance.ToFloat32()*scale
	}
}
