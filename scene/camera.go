package scene

import "github.com/go-gl/mathgl/mgl32"

// Camera movement speed, in units per second.
const MoveSpeed = 30.0

// A perspective camera looking down its local -Z axis.
type Camera struct {
	Transform *Transform
	FovY float32 // vertical field of view, in radians
	Aspect float32
	Near float32
	Far float32
}

// Returns the perspective projection matrix.
func (self *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(self.FovY, self.Aspect, self.Near, self.Far)
}

// Returns the matrix from world space to clip space.
func (self *Camera) WorldToClip() mgl32.Mat4 {
	return self.Projection().Mul4(self.Transform.LocalToWorld().Inv())
}

// Returns the camera right and forward directions in parent space.
func (self *Camera) Frame() (right, forward mgl32.Vec3) {
	rotation := self.Transform.Rotation
	right = rotation.Rotate(mgl32.Vec3{1, 0, 0})
	forward = rotation.Rotate(mgl32.Vec3{0, 0, -1})
	return right, forward
}

// Rotates the camera from a mouse motion in window pixels (y-down).
// The motion is normalized by the window height and scaled by the
// field of view, so a full-height drag turns the view by one fov.
func (self *Camera) Look(dx, dy, windowHeight float32) {
	if windowHeight <= 0 { return }
	motionX := dx/windowHeight
	motionY := -dy/windowHeight
	yaw := mgl32.QuatRotate(-motionX*self.FovY, mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(motionY*self.FovY, mgl32.Vec3{1, 0, 0})
	self.Transform.Rotation = self.Transform.Rotation.Mul(yaw).Mul(pitch).Normalize()
}

// Moves the camera along its right (x) and forward (y) directions.
// Diagonal moves are normalized so they aren't faster.
func (self *Camera) Move(move mgl32.Vec2, elapsed float32) {
	if move.Len() == 0 { return }
	move = move.Normalize().Mul(MoveSpeed*elapsed)
	right, forward := self.Frame()
	self.Transform.Position = self.Transform.Position.Add(right.Mul(move[0])).Add(forward.Mul(move[1]))
}

// A listener position and orientation for positional audio.
type Listener struct {
	Position mgl32.Vec3
	Right mgl32.Vec3
}

// Returns the listener matching the camera.
func (self *Camera) Listener() Listener {
	right, _ := self.Frame()
	return Listener{ Position: self.Transform.Position, Right: right }
}
