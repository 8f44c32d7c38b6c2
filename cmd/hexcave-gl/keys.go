package main

import "fmt"
import "strings"

import "github.com/go-gl/glfw/v3.3/glfw"
import "github.com/go-gl/mathgl/mgl32"

import "github.com/tinne26/hexcave/config"
import "github.com/tinne26/hexcave/dialogue"

var namedKeys = map[string]glfw.Key{
	"up": glfw.KeyUp, "arrowup": glfw.KeyUp,
	"down": glfw.KeyDown, "arrowdown": glfw.KeyDown,
	"left": glfw.KeyLeft, "arrowleft": glfw.KeyLeft,
	"right": glfw.KeyRight, "arrowright": glfw.KeyRight,
	"space": glfw.KeySpace, "enter": glfw.KeyEnter, "tab": glfw.KeyTab,
	"shiftleft": glfw.KeyLeftShift, "shiftright": glfw.KeyRightShift,
}

// Parses key names like "Up", "ArrowLeft", "W" or "3", case
// insensitive. Only letters, digits, arrows and a few common keys
// are supported.
func parseKey(name string) (glfw.Key, error) {
	lower := strings.ToLower(name)
	if key, found := namedKeys[lower]; found { return key, nil }
	if len(lower) == 1 {
		char := lower[0]
		if char >= 'a' && char <= 'z' { return glfw.KeyA + glfw.Key(char - 'a'), nil }
		if char >= '0' && char <= '9' { return glfw.Key0 + glfw.Key(char - '0'), nil }
	}
	return glfw.KeyUnknown, fmt.Errorf("unsupported key %q", name)
}

type keymap struct {
	choices []glfw.Key
	forward glfw.Key
	back glfw.Key
	left glfw.Key
	right glfw.Key
}

func newKeymap(cfg *config.Keys) (keymap, error) {
	var keys keymap
	var err error
	for _, name := range cfg.Choices {
		key, err := parseKey(name)
		if err != nil { return keys, err }
		keys.choices = append(keys.choices, key)
	}
	if keys.forward, err = parseKey(cfg.Forward); err != nil { return keys, err }
	if keys.back,    err = parseKey(cfg.Back);    err != nil { return keys, err }
	if keys.left,    err = parseKey(cfg.Left);    err != nil { return keys, err }
	if keys.right,   err = parseKey(cfg.Right);   err != nil { return keys, err }
	return keys, nil
}

func (self *keymap) slot(key glfw.Key) (dialogue.Slot, bool) {
	for i, choice := range self.choices {
		if choice == key { return dialogue.Slot(i), true }
	}
	return 0, false
}

func (self *keymap) move(window *glfw.Window) mgl32.Vec2 {
	var move mgl32.Vec2
	if window.GetKey(self.right)   == glfw.Press { move[0] += 1 }
	if window.GetKey(self.left)    == glfw.Press { move[0] -= 1 }
	if window.GetKey(self.forward) == glfw.Press { move[1] += 1 }
	if window.GetKey(self.back)    == glfw.Press { move[1] -= 1 }
	return move
}
