package hexcave

import "bytes"
import "log/slog"
import "strings"
import "testing"

import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/hexcave/font"
import "github.com/tinne26/hexcave/scene"
import "github.com/tinne26/hexcave/sound"
import "github.com/tinne26/hexcave/dialogue"
import "github.com/tinne26/hexcave/gfx/gfxtest"

type recordingPlayer struct{ cues []sound.Cue }
func (self *recordingPlayer) Play(cue sound.Cue, gain float32) {
	self.cues = append(self.cues, cue)
}

func testGraph(t *testing.T) *dialogue.Graph {
	t.Helper()
	graph, err := dialogue.NewGraph([]dialogue.Node{
		{
			Message: "HI\nYO",
			Choices: []dialogue.Choice{
				{ Label: "ENTER", Target: 1 },
				{ Label: "STAY", Target: 0 },
			},
		},
		{ Message: "END" },
	})
	if err != nil { t.Fatal(err) }
	return graph
}

func newTestGame(t *testing.T) (*Game, *gfxtest.Recorder, *recordingPlayer) {
	t.Helper()
	face, err := font.Default(font.Px(24))
	if err != nil { t.Fatal(err) }
	recorder := &gfxtest.Recorder{}
	player := &recordingPlayer{}
	game, err := New(Options{
		Face: face,
		Pipeline: recorder,
		Lines: recorder,
		Player: player,
		Graph: testGraph(t),
	})
	if err != nil { t.Fatal(err) }
	return game, recorder, player
}

func TestNewMissingOptions(t *testing.T) {
	face, err := font.Default(font.Px(24))
	if err != nil { t.Fatal(err) }
	if _, err := New(Options{ Pipeline: &gfxtest.Recorder{} }); err == nil {
		t.Fatal("expected error for missing face")
	}
	if _, err := New(Options{ Face: face }); err == nil {
		t.Fatal("expected error for missing pipeline")
	}
	if _, err := New(Options{ Face: face, Pipeline: &gfxtest.Recorder{}, CacheCapacity: -1 }); err == nil {
		t.Fatal("expected error for negative cache capacity")
	}
}

func TestGameDialogueFlow(t *testing.T) {
	game, recorder, player := newTestGame(t)

	// nothing revealed yet, nothing drawn
	game.DrawOverlay()
	if len(recorder.Passes) != 0 {
		t.Fatalf("expected no passes before reveal, got %d", len(recorder.Passes))
	}

	game.Update(1)
	if game.Dialogue().Revealed() != "HI\nYO" {
		t.Fatalf("unexpected revealed text %q", game.Dialogue().Revealed())
	}
	if len(player.cues) != 5 {
		t.Fatalf("expected one keystroke per rune (5), got %d", len(player.cues))
	}

	// message has two lines, plus two options
	game.DrawOverlay()
	if len(recorder.Passes) != 4 {
		t.Fatalf("expected 4 passes, got %d", len(recorder.Passes))
	}
	_, firstMin, _, _ := recorder.Passes[0].Draws[0].Quad.Bounds()
	_, _, _, optionMax := recorder.Passes[2].Draws[0].Quad.Bounds()
	_, _, _, secondOptionMax := recorder.Passes[3].Draws[0].Quad.Bounds()
	if optionMax >= firstMin || secondOptionMax >= optionMax {
		t.Fatal("expected options below the message, stepping down")
	}

	// slot out of range doesn't transition
	game.HandleInput(Input{ Choices: []dialogue.Slot{ dialogue.SlotLeft } })
	if game.Dialogue().Current() != 0 { t.Fatal("unexpected transition") }

	game.HandleInput(Input{ Choices: []dialogue.Slot{ dialogue.SlotUp } })
	if game.Dialogue().Current() != 1 {
		t.Fatalf("expected node 1, got %d", game.Dialogue().Current())
	}
	if game.Dialogue().Reveal() != 0 { t.Fatal("expected reveal reset") }

	recorder.Reset()
	game.DrawOverlay()
	if len(recorder.Passes) != 0 {
		t.Fatalf("expected no passes after transition, got %d", len(recorder.Passes))
	}
}

func TestGameSlotNames(t *testing.T) {
	game, _, _ := newTestGame(t)
	if game.slotName(dialogue.SlotUp) != "Up" { t.Fatal("expected slot name fallback") }
	game.slotNames = []string{"I", ""}
	if game.slotName(dialogue.SlotUp) != "I" { t.Fatal("expected custom slot name") }
	if game.slotName(dialogue.SlotDown) != "Down" { t.Fatal("expected fallback for empty name") }
}

func TestGameSceneUpdate(t *testing.T) {
	game, recorder, _ := newTestGame(t)

	start := game.Camera().Transform.Position
	_, forward := game.Camera().Frame()
	game.HandleInput(Input{ Move: mgl32.Vec2{0, 1} })
	game.Update(0.5)

	expected := start.Add(forward.Mul(scene.MoveSpeed*0.5))
	if !game.Camera().Transform.Position.ApproxEqualThreshold(expected, 1e-3) {
		t.Fatalf("expected camera at %v, got %v", expected, game.Camera().Transform.Position)
	}
	if game.Listener().Position != game.Camera().Transform.Position {
		t.Fatal("listener must follow the camera")
	}
	if !mgl32.FloatEqualThreshold(game.Wobble().Phase(), 0.05, 1e-5) {
		t.Fatalf("expected phase 0.05, got %f", game.Wobble().Phase())
	}

	// the move is held until the next input
	game.Update(0.5)
	game.HandleInput(Input{})
	moved := game.Camera().Transform.Position
	game.Update(0.5)
	if game.Camera().Transform.Position != moved { t.Fatal("camera kept moving") }

	game.DrawScene()
	if len(recorder.Lines) != 1 || len(recorder.Lines[0].Lines) == 0 {
		t.Fatal("expected one wireframe batch")
	}
}

func TestGameLook(t *testing.T) {
	game, _, _ := newTestGame(t)
	rotation := game.Camera().Transform.Rotation

	game.HandleInput(Input{ LookX: 100, LookY: 0, WindowHeight: 720 })
	if game.Camera().Transform.Rotation != rotation {
		t.Fatal("look must be ignored while the mouse isn't captured")
	}
	game.HandleInput(Input{ LookX: 100, LookY: 0, WindowHeight: 720, Captured: true })
	if game.Camera().Transform.Rotation == rotation {
		t.Fatal("expected the camera to rotate")
	}
}

func TestGameSetAspect(t *testing.T) {
	game, _, _ := newTestGame(t)
	game.SetAspect(1920, 1080)
	if !mgl32.FloatEqual(game.Camera().Aspect, 16.0/9.0) {
		t.Fatalf("unexpected aspect %f", game.Camera().Aspect)
	}
	game.SetAspect(0, 0)
	if !mgl32.FloatEqual(game.Camera().Aspect, 16.0/9.0) {
		t.Fatal("zero size must be ignored")
	}
}

func TestGameWarnsMissingRunes(t *testing.T) {
	var buffer bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buffer, nil)))
	defer SetLogger(nil)

	face, err := font.Default(font.Px(24))
	if err != nil { t.Fatal(err) }
	graph, err := dialogue.NewGraph([]dialogue.Node{{ Message: "A\uE000" }})
	if err != nil { t.Fatal(err) }
	_, err = New(Options{ Face: face, Pipeline: &gfxtest.Recorder{}, Graph: graph })
	if err != nil { t.Fatal(err) }

	if !strings.Contains(buffer.String(), "missing runes") {
		t.Fatalf("expected a missing runes warning, got %q", buffer.String())
	}
}
