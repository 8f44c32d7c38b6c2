package main

import "image/color"

import "github.com/go-gl/mathgl/mgl32"
import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/inpututil"

import "github.com/tinne26/hexcave"
import "github.com/tinne26/hexcave/dialogue"
import "github.com/tinne26/hexcave/gfx/ebitengfx"

var background = color.RGBA{ 0x10, 0x10, 0x14, 0xFF }

// Adapts a [hexcave.Game] to the ebiten.Game interface.
type app struct {
	game *hexcave.Game
	pipeline *ebitengfx.Pipeline
	keys keymap

	cursorX, cursorY int
	wasCaptured bool
	windowHeight int
	input hexcave.Input
}

func (self *app) Layout(width, height int) (int, int) {
	if height != self.windowHeight {
		self.windowHeight = height
		self.game.SetAspect(width, height)
	}
	return width, height
}

func (self *app) Update() error {
	self.input.Choices = self.input.Choices[:0]
	for i, key := range self.keys.choices {
		if inpututil.IsKeyJustPressed(key) {
			self.input.Choices = append(self.input.Choices, dialogue.Slot(i))
		}
	}
	self.input.Move = self.keys.move()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
	// the first captured frame has no valid previous position
	x, y := ebiten.CursorPosition()
	captured := ebiten.CursorMode() == ebiten.CursorModeCaptured
	self.input.Captured = captured && self.wasCaptured
	self.wasCaptured = captured
	self.input.LookX = float32(x - self.cursorX)
	self.input.LookY = float32(y - self.cursorY)
	self.input.WindowHeight = float32(self.windowHeight)
	self.cursorX, self.cursorY = x, y

	self.game.HandleInput(self.input)
	self.game.Update(1.0/float32(ebiten.TPS()))
	return nil
}

func (self *app) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	self.pipeline.SetTarget(screen)
	self.game.DrawScene()
	self.game.DrawOverlay()
}

// Raw keys for the choice slots and camera movement.
type keymap struct {
	choices []ebiten.Key
	forward ebiten.Key
	back ebiten.Key
	left ebiten.Key
	right ebiten.Key
}

func (self *keymap) move() mgl32.Vec2 {
	var move mgl32.Vec2
	if ebiten.IsKeyPressed(self.right)   { move[0] += 1 }
	if ebiten.IsKeyPressed(self.left)    { move[0] -= 1 }
	if ebiten.IsKeyPressed(self.forward) { move[1] += 1 }
	if ebiten.IsKeyPressed(self.back)    { move[1] -= 1 }
	return move
}
