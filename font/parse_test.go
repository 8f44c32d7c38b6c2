package font

import "os"
import "errors"
import "testing"
import "io/fs"
import "path/filepath"

import "golang.org/x/image/font/gofont/goregular"

func TestIsFontFile(t *testing.T) {
	valid := []string{"a.ttf", "a.otf", "dir/Go-Regular.TTF", ".otf"}
	invalid := []string{"", "ttf", "a.tt", "a.ttx", "a.xttf", "a.woff", "a.ttf.gz"}
	for _, path := range valid {
		if !isFontFile(path) { t.Fatalf("expected %q to be accepted", path) }
	}
	for _, path := range invalid {
		if isFontFile(path) { t.Fatalf("expected %q to be rejected", path) }
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFromPath(filepath.Join(dir, "notes.txt"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	_, err = Load(filepath.Join(dir, "missing.otf"), Px(16))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}

	garbage := filepath.Join(dir, "garbage.ttf")
	err = os.WriteFile(garbage, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, 0o644)
	if err != nil { t.Fatal(err) }
	if _, err = Load(garbage, Px(16)); err == nil {
		t.Fatal("expected parse error")
	}

	regular := filepath.Join(dir, "regular.ttf")
	err = os.WriteFile(regular, goregular.TTF, 0o644)
	if err != nil { t.Fatal(err) }
	face, err := Load(regular, Px(16))
	if err != nil { t.Fatal(err) }
	if face.Name() != "Go Regular" {
		t.Fatalf("expected \"Go Regular\", got %q", face.Name())
	}
	if _, err = Load(regular, Px(0)); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}
