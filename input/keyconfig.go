package input

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// KeyMap binds terminal keys to logical buttons
type KeyMap struct {
	Runes   map[rune]Button
	Special map[tcell.Key]Button
}

// DefaultKeyMap returns arrows/hjkl for directions, space/enter for A and x/z/c
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Runes: map[rune]Button{
			'h': ButtonLeft,
			'j': ButtonDown,
			'k': ButtonUp,
			'l': ButtonRight,
			' ': ButtonA,
			'a': ButtonA,
			'b': ButtonB,
			'x': ButtonX,
			'z': ButtonZ,
			'c': ButtonC,
		},
		Special: map[tcell.Key]Button{
			tcell.KeyUp:    ButtonUp,
			tcell.KeyDown:  ButtonDown,
			tcell.KeyLeft:  ButtonLeft,
			tcell.KeyRight: ButtonRight,
			tcell.KeyEnter: ButtonA,
		},
	}
}

// Lookup returns the button bound to ev, ButtonNone if unbound
func (m *KeyMap) Lookup(ev *tcell.EventKey) Button {
	if ev == nil {
		return ButtonNone
	}
	if ev.Key() == tcell.KeyRune {
		return m.Runes[ev.Rune()]
	}
	return m.Special[ev.Key()]
}

// keyFile is the TOML shape: [keys] name = "button"
type keyFile struct {
	Keys map[string]string `toml:"keys"`
}

// LoadKeyMap parses TOML key bindings layered over DefaultKeyMap
// Binding a key to "none" removes it
func LoadKeyMap(r io.Reader) (*KeyMap, error) {
	var f keyFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	km := DefaultKeyMap()
	for keyName, buttonName := range f.Keys {
		var b Button
		if strings.ToLower(buttonName) != "none" {
			parsed, err := ParseButton(buttonName)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", keyName, err)
			}
			b = parsed
		}

		if r, ok := parseRune(keyName); ok {
			if b == ButtonNone {
				delete(km.Runes, r)
			} else {
				km.Runes[r] = b
			}
			continue
		}

		k, ok := specialKeys()[strings.ToLower(keyName)]
		if !ok {
			return nil, fmt.Errorf("unknown key name %q", keyName)
		}
		if b == ButtonNone {
			delete(km.Special, k)
		} else {
			km.Special[k] = b
		}
	}
	return km, nil
}

func parseRune(name string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		return r, true
	}
	runes := []rune(name)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// specialKeys indexes tcell key names in lower case ("up", "enter", "ctrl-a")
func specialKeys() map[string]tcell.Key {
	out := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		out[strings.ToLower(name)] = k
	}
	return out
}
