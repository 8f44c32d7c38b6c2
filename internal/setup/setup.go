// Package setup holds the startup steps shared by the hexcave
// binaries: flags, config, logging, font, dialogue and game options.
package setup

import "io"
import "os"
import "fmt"
import "flag"
import "log/slog"

import "github.com/tinne26/hexcave"
import "github.com/tinne26/hexcave/font"
import "github.com/tinne26/hexcave/mask"
import "github.com/tinne26/hexcave/sound"
import "github.com/tinne26/hexcave/config"
import "github.com/tinne26/hexcave/dialogue"

const Version = "0.1.0"

// Command line flags. Empty strings leave the config values alone.
type Flags struct {
	ConfigPath string
	FontPath string
	LogLevel string
	Version bool
}

// Parses the command line arguments (without the program name).
func ParseFlags(name string, args []string, output io.Writer) (Flags, error) {
	var flags Flags
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	set.SetOutput(output)
	set.StringVar(&flags.ConfigPath, "config", "", "path to a YAML config file")
	set.StringVar(&flags.FontPath, "font", "", "path to a .ttf or .otf font, overrides font.path")
	set.StringVar(&flags.LogLevel, "log-level", "", "debug, info, warn or error, overrides log.level")
	set.BoolVar(&flags.Version, "version", false, "print the version and exit")
	err := set.Parse(args)
	if err == nil && set.NArg() > 0 {
		err = fmt.Errorf("unexpected arguments: %v", set.Args())
	}
	return flags, err
}

// Loads the config file and applies the flag overrides on top.
func LoadConfig(flags Flags) (config.Config, error) {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil { return cfg, err }
	if flags.FontPath != "" { cfg.Font.Path = flags.FontPath }
	if flags.LogLevel != "" { cfg.Log.Level = flags.LogLevel }
	return cfg, cfg.Validate()
}

// Installs a text logger on stderr at the configured level.
func InstallLogger(cfg *config.Config) {
	level, _ := cfg.LogLevel()
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: level })
	hexcave.SetLogger(slog.New(handler))
}

// Loads the configured font, or Go Regular if no path is set.
func LoadFace(cfg *config.Config) (*font.Face, error) {
	size, err := cfg.FontSize()
	if err != nil { return nil, err }
	if cfg.Font.Path == "" { return font.Default(size) }
	return font.Load(cfg.Font.Path, size)
}

// Loads the configured dialogue file, or the built-in story.
func LoadGraph(cfg *config.Config) (*dialogue.Graph, error) {
	if cfg.Dialogue.Path == "" { return dialogue.Story(), nil }
	return dialogue.LoadFile(cfg.Dialogue.Path)
}

// Returns the cue with the given name, as in the audio.clips config
// section.
func ParseCue(name string) (sound.Cue, error) {
	for cue := sound.Cue(0); cue < sound.NumCues; cue++ {
		if cue.String() == name { return cue, nil }
	}
	return 0, fmt.Errorf("unknown cue %q", name)
}

// Builds the game options from the config. Pipeline, Lines and Player
// are left for the caller to fill.
func GameOptions(cfg *config.Config, face *font.Face, graph *dialogue.Graph) (hexcave.Options, error) {
	rasterizer, err := mask.New(cfg.Font.Rasterizer)
	if err != nil { return hexcave.Options{}, err }

	typeSpeed := cfg.Dialogue.TypeSpeed
	if typeSpeed == 0 { typeSpeed = -1 } // reveal at once
	return hexcave.Options{
		Face: face,
		Rasterizer: rasterizer,
		Graph: graph,
		CacheCapacity: cfg.Text.CacheCapacity,
		TypeSpeed: typeSpeed,
		LineStep: cfg.Text.LineStep,
		TextScale: cfg.Text.Scale,
		TextColor: cfg.TextColor(),
		ViewportWidth: cfg.Viewport.Width,
		ViewportHeight: cfg.Viewport.Height,
		SlotNames: cfg.Keys.Choices,
	}, nil
}

// Loads the face and the dialogue and builds the game options.
func Prepare(cfg *config.Config) (hexcave.Options, error) {
	face, err := LoadFace(cfg)
	if err != nil { return hexcave.Options{}, fmt.Errorf("loading font: %w", err) }
	graph, err := LoadGraph(cfg)
	if err != nil { return hexcave.Options{}, fmt.Errorf("loading dialogue: %w", err) }
	hexcave.Logger().Info("assets loaded", "font", face.Name(), "px", face.PixelSize().ToFloat64(), "nodes", graph.Len())
	return GameOptions(cfg, face, graph)
}
