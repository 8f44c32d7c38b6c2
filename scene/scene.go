package scene

import "errors"
import "fmt"

import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/hexcave/gfx"

var ErrTransformNotFound = errors.New("transform not found")

// A wireframe edge between two points in the local space of a
// transform.
type Edge struct {
	Transform *Transform
	From mgl32.Vec3
	To mgl32.Vec3
}

// A set of transforms, cameras and wireframe edges.
type Scene struct {
	Transforms []*Transform
	Cameras []*Camera
	Edges []Edge
	lines []gfx.Line
}

// Returns the transform with the given name. The returned error
// wraps [ErrTransformNotFound].
func (self *Scene) Lookup(name string) (*Transform, error) {
	for _, transform := range self.Transforms {
		if transform.Name == name { return transform, nil }
	}
	return nil, fmt.Errorf("%w: %q", ErrTransformNotFound, name)
}

// Returns the only camera of the scene, or an error if the scene
// doesn't have exactly one.
func (self *Scene) Camera() (*Camera, error) {
	if len(self.Cameras) != 1 {
		return nil, fmt.Errorf("expecting scene to have exactly one camera, but it has %d", len(self.Cameras))
	}
	return self.Cameras[0], nil
}

// Projects the scene edges through the given camera into a y-up
// logical viewport of the given size. Edges with an endpoint behind
// the near plane are skipped. The returned slice is reused between
// calls.
func (self *Scene) Wireframe(camera *Camera, width, height float32) []gfx.Line {
	worldToClip := camera.WorldToClip()
	self.lines = self.lines[:0]
	for _, edge := range self.Edges {
		localToClip := worldToClip.Mul4(edge.Transform.LocalToWorld())
		from, okFrom := Project(localToClip, edge.From, width, height)
		to, okTo := Project(localToClip, edge.To, width, height)
		if !okFrom || !okTo { continue }
		self.lines = append(self.lines, gfx.Line{ From: from, To: to })
	}
	return self.lines
}

// Projects a point to a y-up logical viewport with the origin at
// the bottom-left corner. Returns false if the point is behind the
// camera.
func Project(toClip mgl32.Mat4, point mgl32.Vec3, width, height float32) (mgl32.Vec2, bool) {
	clip := toClip.Mul4x1(point.Vec4(1))
	if clip[3] <= 0 { return mgl32.Vec2{}, false }
	ndcX, ndcY := clip[0]/clip[3], clip[1]/clip[3]
	return mgl32.Vec2{(ndcX + 1)/2*width, (ndcY + 1)/2*height}, true
}
