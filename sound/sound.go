// The sound subpackage defines the audio contracts used by hexcave:
// cues, the [Player] interface and the keystroke [Palette]. It also
// synthesizes fallback clips, so no audio files are required.
//
// Playback itself lives in sound/ebitenaudio.
package sound

import "strconv"
import "math/rand"

// An audio cue.
type Cue int
const (
	Key1 Cue = iota
	Key2
	Key3
	Ambient
)

// Number of cues.
const NumCues = 4

func (self Cue) String() string {
	switch self {
	case Key1   : return "key1"
	case Key2   : return "key2"
	case Key3   : return "key3"
	case Ambient: return "ambient"
	default:
		return "Cue(" + strconv.Itoa(int(self)) + ")"
	}
}

// A Player plays cues fire-and-forget. Gain 1 is the clip volume.
type Player interface {
	Play(cue Cue, gain float32)
}

// A Player that plays nothing.
type Silent struct {}

func (Silent) Play(Cue, float32) {}

// Gain used for keystroke cues.
const KeystrokeGain = 1.0

// Palette picks one of the three keystroke cues at random, with
// thresholds 0.3 and 0.6 over a uniform value in [0, 1).
type Palette struct {
	rng func() float32
}

// Creates a palette with the given random source. A nil source uses
// a time-independent seeded generator, so runs are reproducible.
func NewPalette(rng func() float32) *Palette {
	if rng == nil {
		source := rand.New(rand.NewSource(0x4E7C_A4E0))
		rng = source.Float32
	}
	return &Palette{ rng: rng }
}

// Returns the next keystroke cue.
func (self *Palette) Pick() Cue {
	value := self.rng()
	if value < 0.3 { return Key1 }
	if value < 0.6 { return Key2 }
	return Key3
}

// Returns a function that plays a picked keystroke cue on each call,
// meant to be used as the dialogue keystroke callback.
func KeystrokeFunc(player Player, palette *Palette) func() {
	return func() {
		player.Play(palette.Pick(), KeystrokeGain)
	}
}
