package config

import "os"
import "errors"
import "strings"
import "testing"
import "log/slog"
import "image/color"
import "path/filepath"

import "github.com/tinne26/hexcave/font"

func TestDefaultIsValid(t *testing.T) {
	config := Default()
	if err := config.Validate(); err != nil {
		t.Fatalf("default config must be valid: %v", err)
	}
	size, err := config.FontSize()
	if err != nil { t.Fatal(err) }
	if size.Pixels() != 24*64 { t.Fatalf("unexpected default font size %v", size) }
	if config.TextColor() != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("unexpected default color %v", config.TextColor())
	}
}

func TestParseOverrides(t *testing.T) {
	data := []byte(`
font:
  size: 18
  unit: pt
  dpi: 96
text:
  color: gold
  cache_capacity: 64
keys:
  choices: [I, K, J, L]
log:
  level: debug
`)
	config, err := Parse(data)
	if err != nil { t.Fatal(err) }

	size, _ := config.FontSize()
	if size.Unit != font.Points || size.Pixels() != 24*64 {
		t.Fatalf("expected 18pt at 96dpi = 24px, got %v", size)
	}
	if config.TextColor() != (color.RGBA{255, 215, 0, 255}) {
		t.Fatalf("unexpected color %v", config.TextColor())
	}
	if config.Text.CacheCapacity != 64 { t.Fatal("cache capacity not parsed") }
	if strings.Join(config.Keys.Choices, ",") != "I,K,J,L" {
		t.Fatalf("unexpected choice keys %v", config.Keys.Choices)
	}
	level, _ := config.LogLevel()
	if level != slog.LevelDebug { t.Fatalf("unexpected level %v", level) }

	// untouched fields keep their defaults
	if config.Window.Width != 1280 || config.Text.LineStep != 50 || config.Keys.Forward != "W" {
		t.Fatal("defaults lost")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		problem string
	}{
		{ "font size", "font: { size: 0 }", "font" },
		{ "font unit", "font: { unit: em }", "unit" },
		{ "rasterizer", "font: { rasterizer: blurry }", "rasterizer" },
		{ "color", "text: { color: '#12345' }", "color" },
		{ "named color", "text: { color: notacolor }", "color" },
		{ "capacity", "text: { cache_capacity: -1 }", "cache_capacity" },
		{ "too many keys", "keys: { choices: [A1, B1, C1, D1, E1] }", "choices" },
		{ "duplicate key", "keys: { choices: [W] }", "bound twice" },
		{ "clip", "audio: { clips: { key9: x.wav } }", "key9" },
		{ "level", "log: { level: loud }", "log.level" },
		{ "viewport", "viewport: { width: 0 }", "viewport" },
	}
	for _, test := range tests {
		_, err := Parse([]byte(test.yaml))
		if !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: expected ErrInvalid, got %v", test.name, err)
		}
		if !strings.Contains(err.Error(), test.problem) {
			t.Fatalf("%s: expected %q in %q", test.name, test.problem, err.Error())
		}
	}

	_, err := Parse([]byte("window: [1, 2]"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid on type mismatch, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	config, err := Load("")
	if err != nil || config.Window.Title != "hexcave" {
		t.Fatalf("expected defaults, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "hexcave.yaml")
	err = os.WriteFile(path, []byte("window: { title: cave }\n"), 0o644)
	if err != nil { t.Fatal(err) }
	config, err = Load(path)
	if err != nil { t.Fatal(err) }
	if config.Window.Title != "cave" { t.Fatalf("unexpected title %q", config.Window.Title) }

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct{ in string; want color.RGBA; ok bool }{
		{ "#ff8000", color.RGBA{255, 128, 0, 255}, true },
		{ "#f80", color.RGBA{255, 136, 0, 255}, true },
		{ "White", color.RGBA{255, 255, 255, 255}, true },
		{ "#gg0000", color.RGBA{}, false },
		{ "", color.RGBA{}, false },
	}
	for _, test := range tests {
		got, err := ParseColor(test.in)
		if (err == nil) != test.ok || got != test.want {
			t.Fatalf("%q: expected (%v, ok=%t), got (%v, %v)", test.in, test.want, test.ok, got, err)
		}
	}
}
