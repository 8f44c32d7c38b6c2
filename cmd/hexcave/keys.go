package main

import "fmt"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/hexcave/config"

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

// Parses key names like "Up", "ArrowLeft" or "W", case insensitive.
func parseKey(name string) (ebiten.Key, error) {
	var key ebiten.Key
	err := key.UnmarshalText([]byte(name))
	if err != nil { return key, fmt.Errorf("key %q: %w", name, err) }
	return key, nil
}
