package hexcave

import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/hexcave/dialogue"

// Input is the per-frame input snapshot handed to [Game.HandleInput].
// Binaries translate raw keys and mouse motion into it.
type Input struct {
	// Choice slots pressed this frame, in press order.
	Choices []dialogue.Slot

	// Movement along the camera right (x) and forward (y) axes, with
	// components in [-1, 1]. It's held until the next input.
	Move mgl32.Vec2

	// Mouse motion since the previous frame, in window pixels, y-down.
	// Ignored unless Captured is true.
	LookX, LookY float32
	Captured bool

	// Window height in pixels, used to normalize the look motion.
	WindowHeight float32
}
