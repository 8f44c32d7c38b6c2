// Package config loads the hexcave YAML configuration file. Every
// field has a default, so an empty (or missing) file is valid.
package config

import "os"
import "fmt"
import "errors"
import "strings"
import "strconv"
import "log/slog"
import "image/color"

import "gopkg.in/yaml.v3"
import "golang.org/x/image/colornames"

import "github.com/tinne26/hexcave/font"

var ErrInvalid = errors.New("invalid config")

// Prevents loading unreasonably large files by mistake.
const maxFileSize = 1024*1024

type Config struct {
	Window Window       `yaml:"window"`
	Viewport Viewport   `yaml:"viewport"`
	Font Font           `yaml:"font"`
	Text Text           `yaml:"text"`
	Dialogue Dialogue   `yaml:"dialogue"`
	Keys Keys           `yaml:"keys"`
	Audio Audio         `yaml:"audio"`
	Log Log             `yaml:"log"`
}

type Window struct {
	Width int     `yaml:"width"`
	Height int    `yaml:"height"`
	Title string  `yaml:"title"`
}

// Logical drawing area, independent of the window size.
type Viewport struct {
	Width float32   `yaml:"width"`
	Height float32  `yaml:"height"`
}

type Font struct {
	Path string        `yaml:"path"` // empty for the embedded Go Regular font
	Size float64       `yaml:"size"`
	Unit string        `yaml:"unit"` // "px" or "pt"
	DPI float64        `yaml:"dpi"`
	Rasterizer string  `yaml:"rasterizer"` // "default" or "sharp"
}

type Text struct {
	LineStep float32    `yaml:"line_step"`
	Scale float32       `yaml:"scale"`
	Color string        `yaml:"color"` // "#rrggbb" or an SVG color name
	CacheCapacity int   `yaml:"cache_capacity"` // 0 for unbounded
}

type Dialogue struct {
	Path string         `yaml:"path"` // empty for the built-in story
	TypeSpeed float64   `yaml:"type_speed"` // seconds per rune
}

type Keys struct {
	Choices []string    `yaml:"choices"` // one key per choice slot
	Forward string      `yaml:"forward"`
	Back string         `yaml:"back"`
	Left string         `yaml:"left"`
	Right string        `yaml:"right"`
}

type Audio struct {
	Enabled bool           `yaml:"enabled"`
	AmbientGain float32    `yaml:"ambient_gain"`
	Clips map[string]string `yaml:"clips"` // cue name to .wav or .ogg path
}

type Log struct {
	Level string  `yaml:"level"` // debug, info, warn or error
}

// Returns the default configuration.
func Default() Config {
	return Config{
		Window: Window{ Width: 1280, Height: 720, Title: "hexcave" },
		Viewport: Viewport{ Width: 1280, Height: 720 },
		Font: Font{ Size: 24, Unit: "px", DPI: 72, Rasterizer: "default" },
		Text: Text{ LineStep: 50, Scale: 1, Color: "#ffffff" },
		Dialogue: Dialogue{ TypeSpeed: 0.01 },
		Keys: Keys{
			Choices: []string{"Up", "Down", "Left", "Right"},
			Forward: "W", Back: "S", Left: "A", Right: "D",
		},
		Audio: Audio{ Enabled: true, AmbientGain: 0.3 },
		Log: Log{ Level: "info" },
	}
}

// Parses the given YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	config := Default()
	err := yaml.Unmarshal(data, &config)
	if err != nil {
		return config, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return config, config.Validate()
}

// Loads the config file at the given path. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	if path == "" { return Default(), nil }

	info, err := os.Stat(path)
	if err != nil { return Default(), err }
	if info.Size() > maxFileSize {
		return Default(), fmt.Errorf("%w: %s is too large (%d bytes)", ErrInvalid, path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil { return Default(), err }

	config, err := Parse(data)
	if err != nil { return config, fmt.Errorf("%s: %w", path, err) }
	return config, nil
}

// Checks every field. The returned error wraps [ErrInvalid] and
// lists every problem found.
func (self *Config) Validate() error {
	var problems []string
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if self.Window.Width <= 0 || self.Window.Height <= 0 {
		fail("window size must be positive (got %dx%d)", self.Window.Width, self.Window.Height)
	}
	if self.Viewport.Width <= 0 || self.Viewport.Height <= 0 {
		fail("viewport size must be positive (got %vx%v)", self.Viewport.Width, self.Viewport.Height)
	}
	if _, err := self.FontSize(); err != nil {
		fail("font: %v", err)
	}
	switch self.Font.Rasterizer {
	case "", "default", "sharp":
	default:
		fail("font.rasterizer must be \"default\" or \"sharp\" (got %q)", self.Font.Rasterizer)
	}
	if self.Text.LineStep <= 0 { fail("text.line_step must be positive") }
	if self.Text.Scale <= 0 { fail("text.scale must be positive") }
	if _, err := ParseColor(self.Text.Color); err != nil {
		fail("text.color: %v", err)
	}
	if self.Text.CacheCapacity < 0 { fail("text.cache_capacity can't be negative") }
	if self.Dialogue.TypeSpeed < 0 { fail("dialogue.type_speed can't be negative") }
	if len(self.Keys.Choices) == 0 || len(self.Keys.Choices) > 4 {
		fail("keys.choices must have between 1 and 4 keys (got %d)", len(self.Keys.Choices))
	}
	seen := make(map[string]bool)
	for _, key := range self.keyNames() {
		if key == "" { fail("key names can't be empty"); continue }
		if seen[key] { fail("key %q is bound twice", key) }
		seen[key] = true
	}
	if self.Audio.AmbientGain < 0 { fail("audio.ambient_gain can't be negative") }
	for name := range self.Audio.Clips {
		switch name {
		case "key1", "key2", "key3", "ambient":
		default:
			fail("audio.clips: unknown cue %q", name)
		}
	}
	if _, err := self.LogLevel(); err != nil { fail("log.level: %v", err) }

	if len(problems) == 0 { return nil }
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
}

func (self *Config) keyNames() []string {
	names := append([]string(nil), self.Keys.Choices...)
	return append(names, self.Keys.Forward, self.Keys.Back, self.Keys.Left, self.Keys.Right)
}

// Returns the configured font size.
func (self *Config) FontSize() (font.Size, error) {
	unit, err := font.ParseUnit(self.Font.Unit)
	if err != nil { return font.Size{}, err }
	size := font.Size{ Value: self.Font.Size, Unit: unit, DPI: self.Font.DPI }
	if size.Pixels() <= 0 {
		return size, fmt.Errorf("%w (got %v%s)", font.ErrInvalidSize, self.Font.Size, unit)
	}
	return size, nil
}

// Returns the configured text color.
func (self *Config) TextColor() color.RGBA {
	clr, _ := ParseColor(self.Text.Color)
	return clr
}

// Returns the configured log level.
func (self *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(self.Log.Level))
	return level, err
}

// Parses "#rrggbb", "#rgb" or an SVG color name like "white".
func ParseColor(value string) (color.RGBA, error) {
	if strings.HasPrefix(value, "#") {
		hex := value[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", value)
		}
		rgb, err := strconv.ParseUint(hex, 16, 32)
		if err != nil { return color.RGBA{}, fmt.Errorf("invalid hex color %q", value) }
		return color.RGBA{ uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb), 255 }, nil
	}

	clr, found := colornames.Map[strings.ToLower(value)]
	if !found { return color.RGBA{}, fmt.Errorf("unknown color %q", value) }
	return clr, nil
}
