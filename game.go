package hexcave

import "errors"
import "fmt"
import "image/color"
import "strings"

import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/hexcave/gfx"
import "github.com/tinne26/hexcave/font"
import "github.com/tinne26/hexcave/mask"
import "github.com/tinne26/hexcave/text"
import "github.com/tinne26/hexcave/cache"
import "github.com/tinne26/hexcave/shape"
import "github.com/tinne26/hexcave/scene"
import "github.com/tinne26/hexcave/sound"
import "github.com/tinne26/hexcave/dialogue"

// Positions of the overlay elements, in logical pixels (y-up).
const (
	MessageX = 100
	MessageY = 600
	OptionsX = 100
	OptionsY = 300
	OptionsStep = 100
)

// Default wireframe color.
var WireColor = color.RGBA{ 0x80, 0x90, 0xA0, 0xFF }

// Options configure a [Game]. Only Face and Pipeline are required;
// zero values get sensible defaults.
type Options struct {
	Face *font.Face
	Pipeline gfx.Pipeline
	Lines gfx.LineDrawer       // nil skips the wireframe
	Rasterizer mask.Rasterizer // nil uses mask.DefaultRasterizer
	Player sound.Player        // nil uses sound.Silent
	Palette *sound.Palette     // nil uses sound.NewPalette(nil)
	Graph *dialogue.Graph      // nil uses dialogue.Story()

	CacheCapacity int      // 0 is unbounded
	TypeSpeed float64      // seconds per rune, 0 is dialogue.DefaultTypeSpeed
	LineStep float32       // 0 is text.DefaultLineStep
	TextScale float32      // 0 is 1
	TextColor color.Color  // nil is white
	ViewportWidth float32  // 0 is gfx.DefaultWidth
	ViewportHeight float32 // 0 is gfx.DefaultHeight

	// Names shown before each option label, indexed by slot. Missing
	// entries use the slot name.
	SlotNames []string
}

// Game is the scene controller. It owns the hexapod scene, the camera,
// the dialogue state and the text renderer, and drives them frame by
// frame:
//  - [Game.HandleInput]() applies choices, camera moves and look.
//  - [Game.Update]() advances the wobble, the camera and the typewriter.
//  - [Game.DrawScene]() and [Game.DrawOverlay]() draw.
//
// Games are not safe for concurrent use.
type Game struct {
	scene *scene.Scene
	camera *scene.Camera
	wobble *scene.Wobble
	dialogue *dialogue.State
	renderer *text.Renderer
	lines gfx.LineDrawer
	listener scene.Listener

	move mgl32.Vec2
	width float32
	height float32
	textScale float32
	textColor color.Color
	slotNames []string
}

// Creates a new game. Errors are returned for missing rig transforms
// or an invalid scene camera.
func New(opts Options) (*Game, error) {
	if opts.Face == nil { return nil, errors.New("hexcave: missing font face") }
	if opts.Pipeline == nil { return nil, errors.New("hexcave: missing pipeline") }
	if opts.Rasterizer == nil { opts.Rasterizer = &mask.DefaultRasterizer{} }
	if opts.Player == nil { opts.Player = sound.Silent{} }
	if opts.Palette == nil { opts.Palette = sound.NewPalette(nil) }
	if opts.Graph == nil { opts.Graph = dialogue.Story() }
	if opts.TextScale == 0 { opts.TextScale = 1 }
	if opts.TextColor == nil { opts.TextColor = color.White }
	if opts.ViewportWidth == 0 { opts.ViewportWidth = gfx.DefaultWidth }
	if opts.ViewportHeight == 0 { opts.ViewportHeight = gfx.DefaultHeight }
	if opts.CacheCapacity < 0 {
		return nil, fmt.Errorf("hexcave: negative cache capacity %d", opts.CacheCapacity)
	}

	hexapod := scene.NewHexapod()
	wobble, err := scene.NewWobble(hexapod)
	if err != nil { return nil, fmt.Errorf("hexcave: animating rig: %w", err) }
	camera, err := hexapod.Camera()
	if err != nil { return nil, fmt.Errorf("hexcave: %w", err) }

	state := dialogue.NewState(opts.Graph)
	if opts.TypeSpeed != 0 { state.SetTypeSpeed(opts.TypeSpeed) }
	state.SetKeystrokeFunc(sound.KeystrokeFunc(opts.Player, opts.Palette))

	glyphs := cache.New(opts.Face, opts.Rasterizer, opts.Pipeline, opts.CacheCapacity)
	renderer := text.New(opts.Pipeline, shape.New(opts.Face), glyphs)
	renderer.SetViewport(opts.ViewportWidth, opts.ViewportHeight)
	if opts.LineStep != 0 { renderer.SetLineStep(opts.LineStep) }

	self := &Game{
		scene: hexapod,
		camera: camera,
		wobble: wobble,
		dialogue: state,
		renderer: renderer,
		lines: opts.Lines,
		listener: camera.Listener(),
		width: opts.ViewportWidth,
		height: opts.ViewportHeight,
		textScale: opts.TextScale,
		textColor: opts.TextColor,
		slotNames: opts.SlotNames,
	}
	self.warnMissingRunes(opts.Face, opts.Graph)
	return self, nil
}

func (self *Game) warnMissingRunes(face *font.Face, graph *dialogue.Graph) {
	missing, err := face.MissingRunes(strings.Join(graph.Texts(), "\n"))
	if err != nil {
		Logger().Warn("can't check font coverage", "font", face.Name(), "err", err)
		return
	}
	if len(missing) == 0 { return }
	Logger().Warn("font is missing runes used by the dialogue",
		"font", face.Name(), "runes", string(missing))
}

// Applies the input of the current frame.
func (self *Game) HandleInput(input Input) {
	for _, slot := range input.Choices {
		from := self.dialogue.Current()
		if self.dialogue.Choose(slot) {
			Logger().Debug("dialogue transition", "from", from, "to", self.dialogue.Current(), "slot", slot.String())
		}
	}
	self.move = input.Move
	if input.Captured && (input.LookX != 0 || input.LookY != 0) {
		self.camera.Look(input.LookX, input.LookY, input.WindowHeight)
	}
}

// Advances the game by the given time, in seconds.
func (self *Game) Update(elapsed float32) {
	if elapsed <= 0 { return }
	self.wobble.Update(elapsed)
	self.camera.Move(self.move, elapsed)
	self.listener = self.camera.Listener()
	self.dialogue.Update(elapsed)
}

// Draws the hexapod wireframe, if a line drawer was given.
func (self *Game) DrawScene() {
	if self.lines == nil { return }
	lines := self.scene.Wireframe(self.camera, self.width, self.height)
	if len(lines) == 0 { return }
	self.lines.DrawLines(self.renderer.Projection(), lines, gfx.ColorVec(WireColor))
}

// Draws the revealed message and, once it's complete, the options
// of the current node.
func (self *Game) DrawOverlay() {
	revealed := self.dialogue.Revealed()
	if revealed != "" {
		self.renderer.Draw(revealed, MessageX, MessageY, self.textScale, self.textColor)
	}

	y := float32(OptionsY)
	for i, label := range self.dialogue.Options() {
		if i >= dialogue.NumSlots { break }
		option := "[" + self.slotName(dialogue.Slot(i)) + "] " + label
		self.renderer.Draw(option, OptionsX, y, self.textScale, self.textColor)
		y -= OptionsStep
	}
}

func (self *Game) slotName(slot dialogue.Slot) string {
	if int(slot) < len(self.slotNames) && self.slotNames[slot] != "" {
		return self.slotNames[slot]
	}
	return slot.String()
}

// Updates the camera aspect ratio from the window size in pixels.
func (self *Game) SetAspect(width, height int) {
	if width <= 0 || height <= 0 { return }
	self.camera.Aspect = float32(width)/float32(height)
}

// Returns the hexapod scene.
func (self *Game) Scene() *scene.Scene { return self.scene }

// Returns the scene camera.
func (self *Game) Camera() *scene.Camera { return self.camera }

// Returns the leg animation.
func (self *Game) Wobble() *scene.Wobble { return self.wobble }

// Returns the dialogue state.
func (self *Game) Dialogue() *dialogue.State { return self.dialogue }

// Returns the text renderer.
func (self *Game) Renderer() *text.Renderer { return self.renderer }

// Returns the audio listener, which follows the camera.
func (self *Game) Listener() scene.Listener { return self.listener }
