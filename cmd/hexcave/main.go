// Command hexcave runs the hexcave scene on Ebitengine.
//
// Usage:
//   hexcave [-config hexcave.yaml] [-font path.ttf] [-log-level debug]
//
// Choice slots are bound to the arrow keys and the camera moves with
// WASD by default. Click to capture the mouse for free look, press
// Escape to release it.
package main

import "os"
import "fmt"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/hexcave"
import "github.com/tinne26/hexcave/sound"
import "github.com/tinne26/hexcave/config"
import "github.com/tinne26/hexcave/internal/setup"
import "github.com/tinne26/hexcave/gfx/ebitengfx"
import "github.com/tinne26/hexcave/sound/ebitenaudio"

func main() {
	flags, err := setup.ParseFlags("hexcave", os.Args[1:], os.Stderr)
	if err != nil { os.Exit(2) }
	if flags.Version {
		fmt.Println("hexcave " + setup.Version)
		return
	}

	err = run(flags)
	if err != nil {
		hexcave.Logger().Error("hexcave failed", "err", err)
		fmt.Fprintf(os.Stderr, "hexcave: %v\n", err)
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
	pipeline, err := ebitengfx.New()
	if err != nil { return err }
	opts.Pipeline = pipeline
	opts.Lines = pipeline
	opts.Player, err = newPlayer(&cfg.Audio)
	if err != nil { return err }

	game, err := hexcave.New(opts)
	if err != nil { return err }

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&app{ game: game, pipeline: pipeline, keys: keys })
}

func newPlayer(cfg *config.Audio) (sound.Player, error) {
	if !cfg.Enabled { return sound.Silent{}, nil }

	player := ebitenaudio.New()
	for name, path := range cfg.Clips {
		cue, err := setup.ParseCue(name)
		if err != nil { return nil, err }
		err = player.LoadClip(cue, path)
		if err != nil { return nil, err }
	}
	if cfg.AmbientGain > 0 {
		err := player.StartAmbient(cfg.AmbientGain)
		if err != nil { return nil, err }
	}
	return player, nil
}
