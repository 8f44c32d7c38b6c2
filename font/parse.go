package font

import "os"
import "fmt"
import "errors"
import "strings"
import "path/filepath"

var ErrUnsupportedFormat = errors.New("unsupported font format")

// Reads the font file at the given path. Only .ttf and .otf files are
// accepted, and the returned error wraps [ErrUnsupportedFormat] for
// anything else.
//
// The bytes can then be passed to [NewFace]().
func ReadFromPath(path string) ([]byte, error) {
	if !isFontFile(path) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	return os.ReadFile(path)
}

// Shorthand for [ReadFromPath]() + [NewFace]().
func Load(path string, size Size) (*Face, error) {
	data, err := ReadFromPath(path)
	if err != nil { return nil, err }
	face, err := NewFace(data, size)
	if err != nil { return nil, fmt.Errorf("%s: %w", path, err) }
	return face, nil
}

func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf": return true
	default:
		return false
	}
}
