// The scene subpackage holds the 3D side of hexcave: a small transform
// hierarchy, the hexapod rig with its idle wobble animation, and a
// free-look camera. The rig is drawn as a projected wireframe.
package scene

import "github.com/go-gl/mathgl/mgl32"

// A node of the transform hierarchy.
type Transform struct {
	Name string
	Parent *Transform
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale mgl32.Vec3
}

// Creates a transform with identity rotation and unit scale.
func NewTransform(name string, parent *Transform, position mgl32.Vec3) *Transform {
	return &Transform{
		Name: name,
		Parent: parent,
		Position: position,
		Rotation: mgl32.QuatIdent(),
		Scale: mgl32.Vec3{1, 1, 1},
	}
}

// Returns the matrix from local space to parent space.
func (self *Transform) LocalToParent() mgl32.Mat4 {
	translation := mgl32.Translate3D(self.Position[0], self.Position[1], self.Position[2])
	scale := mgl32.Scale3D(self.Scale[0], self.Scale[1], self.Scale[2])
	return translation.Mul4(self.Rotation.Mat4()).Mul4(scale)
}

// Returns the matrix from local space to world space.
func (self *Transform) LocalToWorld() mgl32.Mat4 {
	matrix := self.LocalToParent()
	for parent := self.Parent; parent != nil; parent = parent.Parent {
		matrix = parent.LocalToParent().Mul4(matrix)
	}
	return matrix
}

// Transforms a local point to world space.
func (self *Transform) PointToWorld(point mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(point, self.LocalToWorld())
}
