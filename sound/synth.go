package sound

import "math"
import "math/rand"
import "encoding/binary"

// Audio format shared by every clip: 16-bit little endian stereo.
const (
	SampleRate = 44100
	BytesPerFrame = 4
)

// Creates a short keystroke click: filtered noise with a fast decay,
// with a pitch depending on the cue. Non keystroke cues produce the
// ambient drone instead.
func Synthesize(cue Cue) []byte {
	switch cue {
	case Key1: return synthClick(1, 1800)
	case Key2: return synthClick(2, 1400)
	case Key3: return synthClick(3, 2200)
	default:
		return synthDrone(4.0)
	}
}

func synthClick(seed int64, tone float64) []byte {
	var duration = 0.045
	rng := rand.New(rand.NewSource(seed))
	frames := int(duration*SampleRate)
	samples := make([]float64, frames)
	var filtered float64
	for i := range samples {
		t := float64(i)/SampleRate
		envelope := math.Exp(-t*90)
		noise := rng.Float64()*2 - 1
		filtered += (noise - filtered)*0.35 // one pole low-pass
		body := math.Sin(2*math.Pi*tone*t)*math.Exp(-t*160)
		samples[i] = (filtered*0.6 + body*0.4)*envelope*0.5
	}
	return encodePCM16(samples)
}

// A seamless low drone of the given length in seconds. Frequencies
// are whole multiples of 1/seconds so the loop has no seam.
func synthDrone(seconds float64) []byte {
	frames := int(seconds*SampleRate)
	samples := make([]float64, frames)
	base := 55.0
	for i := range samples {
		t := float64(i)/SampleRate
		wobble := 0.5 + 0.5*math.Sin(2*math.Pi*t/seconds)
		value := math.Sin(2*math.Pi*base*t)*0.6
		value += math.Sin(2*math.Pi*base*1.5*t)*0.25*wobble
		value += math.Sin(2*math.Pi*base*2*t)*0.15
		samples[i] = value*0.12
	}
	return encodePCM16(samples)
}

// Encodes mono samples in [-1, 1] as 16-bit little endian stereo.
func encodePCM16(samples []float64) []byte {
	data := make([]byte, len(samples)*BytesPerFrame)
	for i, sample := range samples {
		if sample > 1 { sample = 1 }
		if sample < -1 { sample = -1 }
		value := uint16(int16(math.Round(sample*math.MaxInt16)))
		binary.LittleEndian.PutUint16(data[i*4 + 0:], value)
		binary.LittleEndian.PutUint16(data[i*4 + 2:], value)
	}
	return data
}
