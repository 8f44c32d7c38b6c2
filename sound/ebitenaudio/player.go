// The ebitenaudio subpackage plays hexcave sound cues through the
// Ebitengine audio context.
package ebitenaudio

import "os"
import "io"
import "fmt"
import "bytes"
import "strings"
import "path/filepath"

import "github.com/hajimehoshi/ebiten/v2/audio"
import "github.com/hajimehoshi/ebiten/v2/audio/wav"
import "github.com/hajimehoshi/ebiten/v2/audio/vorbis"

import "github.com/tinne26/hexcave/sound"
import "github.com/tinne26/hexcave/internal/logger"

var _ sound.Player = (*Player)(nil)

// Player keeps one decoded clip per cue and creates a new audio
// player for every Play() call. The ambient cue is played as an
// infinite loop instead, see [Player.StartAmbient]().
type Player struct {
	context *audio.Context
	clips [sound.NumCues][]byte
	ambient *audio.Player
}

// Creates a player with synthesized clips for every cue. Only one
// audio context may exist per process.
func New() *Player {
	self := &Player{ context: audio.NewContext(sound.SampleRate) }
	for cue := sound.Cue(0); cue < sound.NumCues; cue++ {
		self.clips[cue] = sound.Synthesize(cue)
	}
	return self
}

// Replaces the clip for the given cue with the contents of a .wav or
// .ogg file.
func (self *Player) LoadClip(cue sound.Cue, path string) error {
	file, err := os.Open(path)
	if err != nil { return fmt.Errorf("load %v clip: %w", cue, err) }
	defer file.Close()

	data, err := decode(file, filepath.Ext(path))
	if err != nil { return fmt.Errorf("load %v clip %s: %w", cue, path, err) }
	self.clips[cue] = data
	return nil
}

// Satisfies the [sound.Player] interface.
func (self *Player) Play(cue sound.Cue, gain float32) {
	if cue < 0 || cue >= sound.NumCues { return }
	player := self.context.NewPlayerFromBytes(self.clips[cue])
	player.SetVolume(float64(gain))
	player.Play()
}

// Starts looping the ambient clip at the given gain. Calling it again
// only updates the gain.
func (self *Player) StartAmbient(gain float32) error {
	if self.ambient != nil {
		self.ambient.SetVolume(float64(gain))
		return nil
	}
	clip := self.clips[sound.Ambient]
	loop := audio.NewInfiniteLoop(bytes.NewReader(clip), int64(len(clip)))
	player, err := self.context.NewPlayer(loop)
	if err != nil { return fmt.Errorf("ambient loop: %w", err) }
	player.SetVolume(float64(gain))
	player.Play()
	self.ambient = player
	logger.Get().Debug("ambient loop started", "bytes", len(clip))
	return nil
}

// Stops the ambient loop, if playing.
func (self *Player) StopAmbient() {
	if self.ambient == nil { return }
	if err := self.ambient.Close(); err != nil {
		logger.Get().Warn("failed to close ambient loop", "err", err)
	}
	self.ambient = nil
}

func decode(src io.ReadSeeker, ext string) ([]byte, error) {
	var stream io.Reader
	var err error
	switch strings.ToLower(ext) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sound.SampleRate, src)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sound.SampleRate, src)
	default:
		return nil, fmt.Errorf("unsupported audio format %q", ext)
	}
	if err != nil { return nil, err }
	return io.ReadAll(stream)
}
