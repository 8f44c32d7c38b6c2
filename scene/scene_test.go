package scene

import "math"
import "errors"
import "testing"

import "github.com/go-gl/mathgl/mgl32"

func TestHexapodLookup(t *testing.T) {
	scene := NewHexapod()
	for _, name := range []string{HipName, UpperLegName, LowerLegName, "Hip.BR", "LowerLeg.ML"} {
		if _, err := scene.Lookup(name); err != nil {
			t.Fatalf("lookup %q: %v", name, err)
		}
	}
	_, err := scene.Lookup("Tail")
	if !errors.Is(err, ErrTransformNotFound) {
		t.Fatalf("expected ErrTransformNotFound, got %v", err)
	}

	camera, err := scene.Camera()
	if err != nil { t.Fatal(err) }
	if camera.FovY <= 0 { t.Fatal("expected a positive fov") }

	scene.Cameras = append(scene.Cameras, camera)
	if _, err := scene.Camera(); err == nil {
		t.Fatal("expected error with two cameras")
	}
}

func TestNewWobbleMissing(t *testing.T) {
	scene := NewHexapod()
	for i, transform := range scene.Transforms {
		if transform.Name == UpperLegName {
			scene.Transforms = append(scene.Transforms[:i], scene.Transforms[i + 1:]...)
			break
		}
	}
	_, err := NewWobble(scene)
	if !errors.Is(err, ErrTransformNotFound) {
		t.Fatalf("expected ErrTransformNotFound, got %v", err)
	}
}

func TestWobble(t *testing.T) {
	scene := NewHexapod()
	wobble, err := NewWobble(scene)
	if err != nil { t.Fatal(err) }
	hip, _ := scene.Lookup(HipName)
	base := hip.Rotation

	// a quarter cycle puts the hip at its maximum angle
	wobble.Update(2.5)
	if !mgl32.FloatEqualThreshold(wobble.Phase(), 0.25, 1e-6) {
		t.Fatalf("expected phase 0.25, got %v", wobble.Phase())
	}
	want := base.Mul(mgl32.QuatRotate(mgl32.DegToRad(5), mgl32.Vec3{0, 1, 0}))
	if !hip.Rotation.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("expected %v, got %v", want, hip.Rotation)
	}

	// the phase wraps around
	wobble.Update(8)
	if !mgl32.FloatEqualThreshold(wobble.Phase(), 0.05, 1e-5) {
		t.Fatalf("expected phase 0.05, got %v", wobble.Phase())
	}

	// a full cycle from zero goes back to the base rotations
	wobble.Update(9.5)
	if wobble.Phase() > 1e-5 && wobble.Phase() < 1 - 1e-5 {
		t.Fatalf("expected phase near 0, got %v", wobble.Phase())
	}
	if !hip.Rotation.ApproxEqualThreshold(base, 1e-4) {
		t.Fatalf("expected base rotation, got %v", hip.Rotation)
	}
}

func TestLegTip(t *testing.T) {
	scene := NewHexapod()
	wobble, err := NewWobble(scene)
	if err != nil { t.Fatal(err) }
	lower, _ := scene.Lookup(LowerLegName)

	tip := wobble.LegTip()
	want := mgl32.TransformCoordinate(LegTipLocal, lower.LocalToWorld())
	if !tip.ApproxEqualThreshold(want, 1e-4) {
		t.Fatalf("expected %v, got %v", want, tip)
	}
	// the leg hangs below the body
	body, _ := scene.Lookup("Body")
	if tip[2] >= body.Position[2] {
		t.Fatalf("expected the tip below the body, got z = %v", tip[2])
	}

	before := wobble.LegTip()
	wobble.Update(1.3)
	if wobble.LegTip().ApproxEqualThreshold(before, 1e-4) {
		t.Fatal("expected the tip to move with the wobble")
	}
}

func TestTransformHierarchy(t *testing.T) {
	root := NewTransform("root", nil, mgl32.Vec3{10, 0, 0})
	root.Rotation = mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 0, 1})
	child := NewTransform("child", root, mgl32.Vec3{1, 0, 0})

	got := child.PointToWorld(mgl32.Vec3{})
	want := mgl32.Vec3{10, 1, 0}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCameraMove(t *testing.T) {
	transform := NewTransform("Camera", nil, mgl32.Vec3{})
	camera := &Camera{ Transform: transform, FovY: 1, Aspect: 1, Near: 0.1, Far: 100 }

	camera.Move(mgl32.Vec2{0, 1}, 0.5)
	want := mgl32.Vec3{0, 0, -15}
	if !transform.Position.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("expected %v, got %v", want, transform.Position)
	}

	// diagonal moves are normalized
	transform.Position = mgl32.Vec3{}
	camera.Move(mgl32.Vec2{1, 1}, 1)
	if !mgl32.FloatEqualThreshold(transform.Position.Len(), MoveSpeed, 1e-4) {
		t.Fatalf("expected distance %v, got %v", MoveSpeed, transform.Position.Len())
	}

	transform.Position = mgl32.Vec3{}
	camera.Move(mgl32.Vec2{}, 1)
	if transform.Position != (mgl32.Vec3{}) { t.Fatal("zero move must not move") }

	listener := camera.Listener()
	if listener.Position != transform.Position || !listener.Right.ApproxEqual(mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("unexpected listener %+v", listener)
	}
}

func TestCameraLook(t *testing.T) {
	transform := NewTransform("Camera", nil, mgl32.Vec3{})
	camera := &Camera{ Transform: transform, FovY: mgl32.DegToRad(60) }

	// dragging right by the full window height turns right by one fov
	camera.Look(720, 0, 720)
	_, forward := camera.Frame()
	want := mgl32.Vec3{float32(math.Sin(math.Pi/3)), 0, -float32(math.Cos(math.Pi/3))}
	if !forward.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("expected forward %v, got %v", want, forward)
	}

	// dragging up looks up
	transform.Rotation = mgl32.QuatIdent()
	camera.Look(0, -72, 720)
	_, forward = camera.Frame()
	if forward[1] <= 0 {
		t.Fatalf("expected to look up, got forward %v", forward)
	}
	if !mgl32.FloatEqualThreshold(transform.Rotation.Len(), 1, 1e-5) {
		t.Fatal("rotation must stay normalized")
	}
}

func TestWireframe(t *testing.T) {
	scene := NewHexapod()
	camera, _ := scene.Camera()
	lines := scene.Wireframe(camera, 1280, 720)
	if len(lines) != len(scene.Edges) {
		t.Fatalf("expected all %d edges visible, got %d", len(scene.Edges), len(lines))
	}

	// the body center projects close to the viewport center
	body, _ := scene.Lookup("Body")
	center, ok := Project(camera.WorldToClip(), body.Position, 1280, 720)
	if !ok { t.Fatal("body behind the camera") }
	if center[0] < 540 || center[0] > 740 {
		t.Fatalf("expected the body near the horizontal center, got %v", center)
	}

	// points behind the camera are rejected
	_, forward := camera.Frame()
	behind := camera.Transform.Position.Sub(forward.Mul(10))
	if _, ok := Project(camera.WorldToClip(), behind, 1280, 720); ok {
		t.Fatal("expected point behind the camera to be rejected")
	}
}

func TestLookRotation(t *testing.T) {
	rotation := lookRotation(mgl32.Vec3{0, -10, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 0, 1})
	forward := rotation.Rotate(mgl32.Vec3{0, 0, -1})
	if !forward.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5) {
		t.Fatalf("expected to look along +y, got %v", forward)
	}
	up := rotation.Rotate(mgl32.Vec3{0, 1, 0})
	if !up.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-5) {
		t.Fatalf("expected +z up, got %v", up)
	}
}
