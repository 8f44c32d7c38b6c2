package glgfx

import "fmt"
import "image"

import "github.com/go-gl/gl/v3.3-core/gl"
import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/hexcave/gfx"

var _ gfx.Pipeline = (*Pipeline)(nil)
var _ gfx.LineDrawer = (*Pipeline)(nil)

const floatSize = 4
const quadBytes = len(gfx.Quad{})*len(gfx.Vertex{})*floatSize

// Pipeline draws glyph quads through a single dynamic vertex buffer
// that is overwritten for every quad, plus a separate program for
// wireframe lines.
type Pipeline struct {
	program uint32
	vao uint32
	vbo uint32
	projectionLoc int32
	colorLoc int32
	textLoc int32

	lineProgram uint32
	lineVAO uint32
	lineVBO uint32
	lineCapacity int // in vertices
	lineProjectionLoc int32
	lineColorLoc int32
	lineVertices []float32

	active bool
}

// Creates the programs and buffers. Returns an error if any of the
// shaders fails to compile or link.
func New() (*Pipeline, error) {
	program, err := newProgram(quadVertexSrc, quadFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("text program: %w", err)
	}
	lineProgram, err := newProgram(lineVertexSrc, lineFragmentSrc)
	if err != nil {
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("line program: %w", err)
	}

	self := &Pipeline{
		program: program,
		projectionLoc: uniform(program, "projection"),
		colorLoc: uniform(program, "color"),
		textLoc: uniform(program, "text"),
		lineProgram: lineProgram,
		lineProjectionLoc: uniform(lineProgram, "projection"),
		lineColorLoc: uniform(lineProgram, "color"),
	}

	// quad buffers: a single quad, rewritten on each draw
	gl.GenVertexArrays(1, &self.vao)
	gl.GenBuffers(1, &self.vbo)
	gl.BindVertexArray(self.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, self.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, quadBytes, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*floatSize, nil)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	// line buffers: grown on demand
	gl.GenVertexArrays(1, &self.lineVAO)
	gl.GenBuffers(1, &self.lineVBO)
	gl.BindVertexArray(self.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, self.lineVBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*floatSize, nil)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return self, nil
}

// Satisfies the [gfx.Device] interface.
func (self *Pipeline) NewTexture(mask *image.Alpha) (gfx.Texture, error) {
	bounds := mask.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("empty mask %v", bounds)
	}
	texture := newTexture(mask)
	if err := gl.GetError(); err != gl.NO_ERROR {
		texture.Release()
		return nil, fmt.Errorf("texture upload failed (GL error 0x%X)", err)
	}
	return texture, nil
}

// Satisfies the [gfx.Pipeline] interface.
func (self *Pipeline) Begin(projection mgl32.Mat4, color mgl32.Vec3) {
	if self.active { panic("Begin() called twice without End()") }
	self.active = true

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.UseProgram(self.program)
	gl.UniformMatrix4fv(self.projectionLoc, 1, false, &projection[0])
	gl.Uniform3f(self.colorLoc, color[0], color[1], color[2])
	gl.Uniform1i(self.textLoc, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(self.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, self.vbo)
}

// Satisfies the [gfx.Pipeline] interface.
func (self *Pipeline) DrawQuad(texture gfx.Texture, quad *gfx.Quad) {
	glTexture, ok := texture.(*Texture)
	if !ok || glTexture.id == 0 { return }
	gl.BindTexture(gl.TEXTURE_2D, glTexture.id)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, quadBytes, gl.Ptr(&quad[0][0]))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(quad)))
}

// Satisfies the [gfx.Pipeline] interface.
func (self *Pipeline) End() {
	if !self.active { panic("End() called without Begin()") }
	self.active = false
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Satisfies the [gfx.LineDrawer] interface.
func (self *Pipeline) DrawLines(projection mgl32.Mat4, lines []gfx.Line, color mgl32.Vec3) {
	if len(lines) == 0 { return }
	self.lineVertices = self.lineVertices[:0]
	for _, line := range lines {
		self.lineVertices = append(self.lineVertices, line.From[0], line.From[1], line.To[0], line.To[1])
	}

	gl.UseProgram(self.lineProgram)
	gl.UniformMatrix4fv(self.lineProjectionLoc, 1, false, &projection[0])
	gl.Uniform3f(self.lineColorLoc, color[0], color[1], color[2])
	gl.BindVertexArray(self.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, self.lineVBO)
	vertexCount := len(lines)*2
	size := len(self.lineVertices)*floatSize
	if vertexCount > self.lineCapacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(self.lineVertices), gl.DYNAMIC_DRAW)
		self.lineCapacity = vertexCount
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(self.lineVertices))
	}
	gl.DrawArrays(gl.LINES, 0, int32(vertexCount))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Deletes the programs and buffers. Textures must be released
// separately.
func (self *Pipeline) Release() {
	gl.DeleteBuffers(1, &self.vbo)
	gl.DeleteVertexArrays(1, &self.vao)
	gl.DeleteProgram(self.program)
	gl.DeleteBuffers(1, &self.lineVBO)
	gl.DeleteVertexArrays(1, &self.lineVAO)
	gl.DeleteProgram(self.lineProgram)
}
