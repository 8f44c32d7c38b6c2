// Command hexcave-gl runs the hexcave scene on GLFW and an OpenGL 3.3
// core context, without audio.
//
// It takes the same flags and config file as the hexcave command.
package main

import "os"
import "fmt"
import "time"
import "runtime"

import "github.com/go-gl/gl/v3.3-core/gl"
import "github.com/go-gl/glfw/v3.3/glfw"

import "github.com/tinne26/hexcave"
import "github.com/tinne26/hexcave/sound"
import "github.com/tinne26/hexcave/config"
import "github.com/tinne26/hexcave/internal/setup"
import "github.com/tinne26/hexcave/gfx/glgfx"

// GLFW event handling and GL calls must stay on the main thread.
func init() { runtime.LockOSThread() }

func main() {
	flags, err := setup.ParseFlags("hexcave-gl", os.Args[1:], os.Stderr)
	if err != nil { os.Exit(2) }
	if flags.Version {
		fmt.Println("hexcave-gl " + setup.Version)
		return
	}

	err = run(flags)
	if err != nil {
		hexcave.Logger().Error("hexcave-gl failed", "err", err)
		fmt.Fprintf(os.Stderr, "hexcave-gl: %v\n", err)
		os.Exit(1)
	}
}

func run(flags setup.Flags) error {
	cfg, err := setup.LoadConfig(flags)
	if err != nil { return err }
	setup.InstallLogger(&cfg)
	keys, err := newKeymap(&cfg.Keys)
	if err != nil { return err }
	opts, err := setup.Prepare(&cfg)
	if err != nil { return err }

	window, err := openWindow(&cfg.Window)
	if err != nil { return err }
	defer glfw.Terminate()
	defer window.Destroy()

	pipeline, err := glgfx.New()
	if err != nil { return err }
	defer pipeline.Release()
	opts.Pipeline = pipeline
	opts.Lines = pipeline
	opts.Player = sound.Silent{}
	if cfg.Audio.Enabled {
		hexcave.Logger().Info("audio is not available on the GL backend")
	}

	game, err := hexcave.New(opts)
	if err != nil { return err }
	loop := newLoop(window, game, keys)
	loop.run()
	return nil
}

func openWindow(cfg *config.Window) (*glfw.Window, error) {
	err := glfw.Init()
	if err != nil { return nil, fmt.Errorf("glfw init: %w", err) }

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("creating window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	err = gl.Init()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	hexcave.Logger().Debug("opengl context ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))
	return window, nil
}

// The frame loop. Events are gathered through GLFW callbacks between
// frames and flushed into a [hexcave.Input] once per frame.
type loop struct {
	window *glfw.Window
	game *hexcave.Game
	keys keymap

	input hexcave.Input
	cursorX, cursorY float64
	cursorKnown bool
}

func newLoop(window *glfw.Window, game *hexcave.Game, keys keymap) *loop {
	self := &loop{ window: window, game: game, keys: keys }
	window.SetKeyCallback(self.onKey)
	window.SetMouseButtonCallback(self.onMouseButton)
	window.SetCursorPosCallback(self.onCursorPos)
	window.SetFramebufferSizeCallback(self.onResize)

	width, height := window.GetFramebufferSize()
	self.onResize(window, width, height)
	return self
}

func (self *loop) run() {
	previous := time.Now()
	for !self.window.ShouldClose() {
		glfw.PollEvents()
		now := time.Now()
		elapsed := float32(now.Sub(previous).Seconds())
		previous = now

		_, height := self.window.GetSize()
		self.input.Move = self.keys.move(self.window)
		self.input.Captured = self.window.GetInputMode(glfw.CursorMode) == glfw.CursorDisabled
		self.input.WindowHeight = float32(height)
		self.game.HandleInput(self.input)
		self.game.Update(elapsed)
		self.input.Choices = self.input.Choices[:0]
		self.input.LookX, self.input.LookY = 0, 0

		gl.ClearColor(0.06, 0.06, 0.08, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		self.game.DrawScene()
		self.game.DrawOverlay()
		self.window.SwapBuffers()
	}
}

func (self *loop) onKey(window *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press { return }
	if key == glfw.KeyEscape {
		window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		return
	}
	if slot, ok := self.keys.slot(key); ok {
		self.input.Choices = append(self.input.Choices, slot)
	}
}

func (self *loop) onMouseButton(window *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft || action != glfw.Press { return }
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	self.cursorKnown = false
}

func (self *loop) onCursorPos(_ *glfw.Window, x, y float64) {
	if self.cursorKnown {
		self.input.LookX += float32(x - self.cursorX)
		self.input.LookY += float32(y - self.cursorY)
	}
	self.cursorX, self.cursorY = x, y
	self.cursorKnown = true
}

func (self *loop) onResize(window *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	self.game.SetAspect(width, height)
}
