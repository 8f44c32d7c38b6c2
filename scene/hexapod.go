package scene

import "github.com/go-gl/mathgl/mgl32"

// Local position of the lower leg tip, in lower leg space.
var LegTipLocal = mgl32.Vec3{-1.26137, -11.861, 0}

var legNames = [6]string{"FL", "ML", "BL", "FR", "MR", "BR"}

// Builds the hexapod rig: a body with six legs, each made of a hip,
// an upper leg and a lower leg (named like "Hip.FL", "UpperLeg.FL" and
// "LowerLeg.FL"), plus a camera looking at it. The scene is z-up.
func NewHexapod() *Scene {
	scene := &Scene{}
	body := NewTransform("Body", nil, mgl32.Vec3{0, 0, 12})
	scene.Transforms = append(scene.Transforms, body)

	// body outline: an elongated hexagon
	const bodyHalfLength, bodyHalfWidth = 6.0, 3.5
	outline := []mgl32.Vec3{
		{0, bodyHalfLength + 2, 0},
		{bodyHalfWidth, bodyHalfLength, 0},
		{bodyHalfWidth, -bodyHalfLength, 0},
		{0, -bodyHalfLength - 2, 0},
		{-bodyHalfWidth, -bodyHalfLength, 0},
		{-bodyHalfWidth, bodyHalfLength, 0},
	}
	for i := range outline {
		scene.Edges = append(scene.Edges, Edge{ body, outline[i], outline[(i + 1) % len(outline)] })
	}

	for i, name := range legNames {
		side := float32(-1) // left
		if i >= 3 { side = 1 }
		row := float32(1 - i % 3) // front, middle, back
		hipPosition := mgl32.Vec3{side*bodyHalfWidth, row*bodyHalfLength*0.8, 0}

		hip := NewTransform("Hip." + name, body, hipPosition)
		// legs point outwards along the local +x of the hip
		if side < 0 {
			hip.Rotation = mgl32.QuatRotate(mgl32.DegToRad(180), mgl32.Vec3{0, 0, 1})
		}
		upper := NewTransform("UpperLeg." + name, hip, mgl32.Vec3{1.5, 0, 0})
		upper.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{1, 0, 0})
		lower := NewTransform("LowerLeg." + name, upper, mgl32.Vec3{7, 0, 0})
		lower.Rotation = mgl32.QuatRotate(mgl32.DegToRad(-30), mgl32.Vec3{0, 0, 1})

		scene.Transforms = append(scene.Transforms, hip, upper, lower)
		scene.Edges = append(scene.Edges,
			Edge{ hip, mgl32.Vec3{}, upper.Position },
			Edge{ upper, mgl32.Vec3{}, lower.Position },
			Edge{ lower, mgl32.Vec3{}, LegTipLocal },
		)
	}

	eye := mgl32.Vec3{0, -40, 30}
	cameraTransform := NewTransform("Camera", nil, eye)
	cameraTransform.Rotation = lookRotation(eye, mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 1})
	scene.Transforms = append(scene.Transforms, cameraTransform)
	scene.Cameras = append(scene.Cameras, &Camera{
		Transform: cameraTransform,
		FovY: mgl32.DegToRad(60),
		Aspect: 16.0/9.0,
		Near: 0.1,
		Far: 1000,
	})
	return scene
}

// Returns the orientation of a camera at eye looking at center. It's
// the rotation part of the inverse view matrix.
func lookRotation(eye, center, up mgl32.Vec3) mgl32.Quat {
	view := mgl32.LookAtV(eye, center, up)
	return mgl32.Mat4ToQuat(view.Inv()).Normalize()
}
