package scene

import "math"

import "github.com/go-gl/mathgl/mgl32"

// Names of the animated front-left leg transforms.
const (
	HipName      = "Hip.FL"
	UpperLegName = "UpperLeg.FL"
	LowerLegName = "LowerLeg.FL"
)

// Wobble animates the front-left leg of the hexapod with a slow idle
// motion. Each joint oscillates on top of its base rotation.
type Wobble struct {
	hip *Transform
	upperLeg *Transform
	lowerLeg *Transform
	hipBase mgl32.Quat
	upperLegBase mgl32.Quat
	lowerLegBase mgl32.Quat
	phase float32 // in [0, 1)
}

// Looks up the leg transforms and records their base rotations.
// Fails if any of them is missing.
func NewWobble(scene *Scene) (*Wobble, error) {
	hip, err := scene.Lookup(HipName)
	if err != nil { return nil, err }
	upperLeg, err := scene.Lookup(UpperLegName)
	if err != nil { return nil, err }
	lowerLeg, err := scene.Lookup(LowerLegName)
	if err != nil { return nil, err }

	return &Wobble{
		hip: hip,
		upperLeg: upperLeg,
		lowerLeg: lowerLeg,
		hipBase: hip.Rotation,
		upperLegBase: upperLeg.Rotation,
		lowerLegBase: lowerLeg.Rotation,
	}, nil
}

// Returns the animation phase, in [0, 1).
func (self *Wobble) Phase() float32 { return self.phase }

// Advances the phase (a full cycle takes ten seconds) and updates
// the joint rotations.
func (self *Wobble) Update(elapsed float32) {
	self.phase += elapsed/10
	self.phase -= float32(math.Floor(float64(self.phase)))
	if self.phase >= 1 { self.phase = 0 } // float rounding on tiny negatives

	self.hip.Rotation = self.hipBase.Mul(jointRotation(5, 1, self.phase, mgl32.Vec3{0, 1, 0}))
	self.upperLeg.Rotation = self.upperLegBase.Mul(jointRotation(7, 2, self.phase, mgl32.Vec3{0, 0, 1}))
	self.lowerLeg.Rotation = self.lowerLegBase.Mul(jointRotation(10, 3, self.phase, mgl32.Vec3{0, 0, 1}))
}

// Returns the world position of the animated leg tip.
func (self *Wobble) LegTip() mgl32.Vec3 {
	return self.lowerLeg.PointToWorld(LegTipLocal)
}

// Rotation of amplitude degrees times sin(2π·frequency·phase).
func jointRotation(amplitude, frequency, phase float32, axis mgl32.Vec3) mgl32.Quat {
	angle := amplitude*float32(math.Sin(float64(phase*frequency*2*math.Pi)))
	return mgl32.QuatRotate(mgl32.DegToRad(angle), axis)
}
