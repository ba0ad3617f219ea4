// Package movedata loads per-command tuning from TOML and builds commands by name
package movedata

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/action-command/command"
)

// DefaultPath is checked when no custom path is given
const DefaultPath = "./moves.toml"

//go:embed moves.toml
var embeddedMoves string

var (
	ErrUnknownKind    = errors.New("unknown command kind")
	ErrUnknownCommand = errors.New("unknown command")
)

// moveSpec is one [moves.<name>] table
type moveSpec struct {
	Kind         string         `toml:"kind"`
	AutoComplete bool           `toml:"auto_complete"`
	Detector     string         `toml:"detector"`
	Params       toml.Primitive `toml:"params"`
}

type file struct {
	Moves map[string]moveSpec `toml:"moves"`
}

// Move is a validated move ready to instantiate
type Move struct {
	Name         string
	Kind         string
	AutoComplete bool

	newGame func() command.Game
}

// NewGame returns a fresh game instance for the move
func (m Move) NewGame() command.Game { return m.newGame() }

// Set holds moves keyed by name
type Set struct {
	moves map[string]Move
}

// Load decodes and validates every move in r
func Load(r io.Reader) (*Set, error) {
	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("decode move data: %w", err)
	}

	set := &Set{moves: make(map[string]Move, len(f.Moves))}
	for name, spec := range f.Moves {
		kind := strings.ToLower(spec.Kind)
		b, ok := builders[kind]
		if !ok {
			return nil, fmt.Errorf("move %q: %w %q", name, ErrUnknownKind, spec.Kind)
		}
		hasParams := md.IsDefined("moves", name, "params")
		newGame, err := b(md, spec, hasParams)
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", name, err)
		}
		set.moves[name] = Move{Name: name, Kind: kind, AutoComplete: spec.AutoComplete, newGame: newGame}
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown move data keys: %s", strings.Join(keys, ", "))
	}
	return set, nil
}

// LoadFile loads move data from path
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open move data: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// LoadAuto loads with priority: customPath > DefaultPath > embedded defaults
func LoadAuto(customPath string) (*Set, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}
	if info, err := os.Stat(DefaultPath); err == nil && !info.IsDir() {
		return LoadFile(DefaultPath)
	}
	return Load(strings.NewReader(embeddedMoves))
}

// Names returns move names in sorted order
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.moves))
	for name := range s.moves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Set) Len() int { return len(s.moves) }

// Move looks up a move by name
func (s *Set) Move(name string) (Move, bool) {
	m, ok := s.moves[name]
	return m, ok
}

// Command builds an idle command for the named move
// The move's auto_complete is applied before opts, so opts can override it
func (s *Set) Command(name string, opts ...command.Option) (*command.Command, error) {
	m, ok := s.moves[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}
	all := append([]command.Option{command.WithAutoComplete(m.AutoComplete)}, opts...)
	return command.New(m.NewGame(), all...), nil
}
