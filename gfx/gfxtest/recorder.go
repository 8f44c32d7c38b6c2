// Package gfxtest provides recording implementations of the gfx
// contracts for tests that need a pipeline without a GPU.
package gfxtest

import "errors"
import "image"

import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/hexcave/gfx"

var ErrUpload = errors.New("gfxtest: upload failure")

var _ gfx.Pipeline = (*Recorder)(nil)
var _ gfx.LineDrawer = (*Recorder)(nil)

// A texture that only remembers its size and whether it was released.
type Texture struct {
	ID int
	Width int
	Height int
	Released int // number of Release() calls
}

func (self *Texture) Size() (int, int) { return self.Width, self.Height }
func (self *Texture) Release() { self.Released += 1 }

// A recorded DrawQuad() call.
type Draw struct {
	Texture *Texture
	Quad gfx.Quad
}

// A recorded Begin() ... End() pass.
type Pass struct {
	Projection mgl32.Mat4
	Color mgl32.Vec3
	Draws []Draw
	Ended bool
}

// A recorded DrawLines() call.
type LineBatch struct {
	Projection mgl32.Mat4
	Lines []gfx.Line
	Color mgl32.Vec3
}

// Recorder implements gfx.Pipeline and gfx.LineDrawer by storing every
// call. Setting FailUploads makes NewTexture() return [ErrUpload].
type Recorder struct {
	Textures []*Texture
	Passes []Pass
	Lines []LineBatch
	FailUploads bool
}

func (self *Recorder) NewTexture(mask *image.Alpha) (gfx.Texture, error) {
	if self.FailUploads { return nil, ErrUpload }
	bounds := mask.Bounds()
	texture := &Texture{
		ID: len(self.Textures) + 1,
		Width: bounds.Dx(),
		Height: bounds.Dy(),
	}
	self.Textures = append(self.Textures, texture)
	return texture, nil
}

func (self *Recorder) Begin(projection mgl32.Mat4, color mgl32.Vec3) {
	self.Passes = append(self.Passes, Pass{ Projection: projection, Color: color })
}

func (self *Recorder) DrawQuad(texture gfx.Texture, quad *gfx.Quad) {
	if len(self.Passes) == 0 { panic("DrawQuad() called before Begin()") }
	pass := &self.Passes[len(self.Passes) - 1]
	if pass.Ended { panic("DrawQuad() called after End()") }
	recorded, _ := texture.(*Texture)
	pass.Draws = append(pass.Draws, Draw{ Texture: recorded, Quad: *quad })
}

func (self *Recorder) End() {
	if len(self.Passes) == 0 { panic("End() called before Begin()") }
	self.Passes[len(self.Passes) - 1].Ended = true
}

func (self *Recorder) DrawLines(projection mgl32.Mat4, lines []gfx.Line, color mgl32.Vec3) {
	copied := make([]gfx.Line, len(lines))
	copy(copied, lines)
	self.Lines = append(self.Lines, LineBatch{ Projection: projection, Lines: copied, Color: color })
}

// Returns the total number of recorded quad draws.
func (self *Recorder) DrawCount() int {
	var count int
	for _, pass := range self.Passes {
		count += len(pass.Draws)
	}
	return count
}

// Clears the recorded passes and lines, keeping the textures.
func (self *Recorder) Reset() {
	self.Passes = self.Passes[:0]
	self.Lines = self.Lines[:0]
}
