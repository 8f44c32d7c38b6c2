// The ebitengfx subpackage implements the gfx contracts on top of
// Ebitengine. Projection is applied on the CPU and then mapped to the
// current target like a GL viewport would.
package ebitengfx

import "fmt"
import "image"
import "image/color"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/vector"
import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/hexcave/gfx"

var _ gfx.Pipeline = (*Pipeline)(nil)
var _ gfx.LineDrawer = (*Pipeline)(nil)

var glyphShaderSrc = []byte(`//kage:unit pixels
package main

var Color vec3

func Fragment(_ vec4, srcPos vec2, _ vec4) vec4 {
	alpha := imageSrc0At(srcPos).a
	return vec4(Color*alpha, alpha)
}
`)

var quadIndices = []uint16{0, 1, 2, 3, 4, 5}

// A glyph mask stored as a premultiplied white image.
type Texture struct {
	image *ebiten.Image
	width int
	height int
}

func (self *Texture) Size() (int, int) { return self.width, self.height }

// Returns the underlying image, or nil if released.
func (self *Texture) Image() *ebiten.Image { return self.image }

func (self *Texture) Release() {
	if self.image == nil { return }
	self.image.Deallocate()
	self.image = nil
}

// Pipeline draws to the image set with [Pipeline.SetTarget]().
type Pipeline struct {
	target *ebiten.Image
	shader *ebiten.Shader
	opts ebiten.DrawTrianglesShaderOptions
	vertices [6]ebiten.Vertex
	projection mgl32.Mat4
	color mgl32.Vec3
	active bool
	lineWidth float32
}

// Compiles the glyph shader. Must be called after the game loop has
// started or from within ebiten.RunGame callbacks.
func New() (*Pipeline, error) {
	shader, err := ebiten.NewShader(glyphShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("glyph shader: %w", err)
	}
	self := &Pipeline{ shader: shader, lineWidth: 1.5 }
	self.opts.Uniforms = make(map[string]interface{}, 1)
	self.opts.Uniforms["Color"] = []float32{ 1, 1, 1 }
	return self, nil
}

// Sets the image to draw on. Usually the screen passed to Draw().
func (self *Pipeline) SetTarget(target *ebiten.Image) {
	self.target = target
}

// Sets the stroke width used by [Pipeline.DrawLines](), in target pixels.
func (self *Pipeline) SetLineWidth(width float32) {
	self.lineWidth = width
}

// Satisfies the [gfx.Device] interface.
func (self *Pipeline) NewTexture(mask *image.Alpha) (gfx.Texture, error) {
	bounds := mask.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("empty mask %v", bounds)
	}

	// ebitengine has no single channel images, so we expand to rgba
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, width*height*4)
	index := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := mask.Pix[mask.PixOffset(bounds.Min.X, y) : mask.PixOffset(bounds.Max.X, y)]
		for _, value := range row {
			pixels[index + 0] = value
			pixels[index + 1] = value
			pixels[index + 2] = value
			pixels[index + 3] = value
			index += 4
		}
	}
	img := ebiten.NewImage(width, height)
	img.WritePixels(pixels)
	return &Texture{ image: img, width: width, height: height }, nil
}

// Satisfies the [gfx.Pipeline] interface.
func (self *Pipeline) Begin(projection mgl32.Mat4, color mgl32.Vec3) {
	if self.active { panic("Begin() called twice without End()") }
	self.active = true
	self.projection = projection
	self.color = color

	uniform := self.opts.Uniforms["Color"].([]float32)
	uniform[0], uniform[1], uniform[2] = color[0], color[1], color[2]
}

// Satisfies the [gfx.Pipeline] interface.
func (self *Pipeline) DrawQuad(texture gfx.Texture, quad *gfx.Quad) {
	if self.target == nil { return }
	ebiTexture, ok := texture.(*Texture)
	if !ok || ebiTexture.image == nil { return }

	bounds := self.target.Bounds()
	targetWidth, targetHeight := bounds.Dx(), bounds.Dy()
	w, h := float32(ebiTexture.width), float32(ebiTexture.height)
	for i, vertex := range quad {
		x, y := gfx.ToTarget(self.projection, vertex[0], vertex[1], targetWidth, targetHeight)
		self.vertices[i].DstX = x + float32(bounds.Min.X)
		self.vertices[i].DstY = y + float32(bounds.Min.Y)
		self.vertices[i].SrcX = vertex[2]*w
		self.vertices[i].SrcY = vertex[3]*h
		self.vertices[i].ColorR = 1
		self.vertices[i].ColorG = 1
		self.vertices[i].ColorB = 1
		self.vertices[i].ColorA = 1
	}
	self.opts.Images[0] = ebiTexture.image
	self.target.DrawTrianglesShader(self.vertices[:], quadIndices, self.shader, &self.opts)
	self.opts.Images[0] = nil
}

// Satisfies the [gfx.Pipeline] interface.
func (self *Pipeline) End() {
	if !self.active { panic("End() called without Begin()") }
	self.active = false
}

// Satisfies the [gfx.LineDrawer] interface.
func (self *Pipeline) DrawLines(projection mgl32.Mat4, lines []gfx.Line, clr mgl32.Vec3) {
	if self.target == nil || len(lines) == 0 { return }
	bounds := self.target.Bounds()
	targetWidth, targetHeight := bounds.Dx(), bounds.Dy()
	rgba := color.RGBA{ toByte(clr[0]), toByte(clr[1]), toByte(clr[2]), 255 }
	offX, offY := float32(bounds.Min.X), float32(bounds.Min.Y)
	for _, line := range lines {
		x0, y0 := gfx.ToTarget(projection, line.From[0], line.From[1], targetWidth, targetHeight)
		x1, y1 := gfx.ToTarget(projection, line.To[0], line.To[1], targetWidth, targetHeight)
		vector.StrokeLine(self.target, x0 + offX, y0 + offY, x1 + offX, y1 + offY, self.lineWidth, rgba, true)
	}
}

func toByte(value float32) uint8 {
	if value <= 0 { return 0 }
	if value >= 1 { return 255 }
	return uint8(value*255 + 0.5)
}
