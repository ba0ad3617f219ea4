package command

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"github.com/lixenwraith/action-command/engine"
	"github.com/lixenwraith/action-command/input"
	"github.com/lixenwraith/action-command/vmath"
)

// Clock supplies the two readings a run is timed against
type Clock interface {
	// Elapsed is the time since the previous tick
	Elapsed() time.Duration
	// Active is a monotonic clock that keeps running across runs
	Active() time.Duration
}

// Rand is the per-command random source
type Rand interface {
	Intn(n int) int
	IntRange(lo, hi int) int
	Float64() float64
}

// Game is the per-tick strategy plugged into a Command
type Game interface {
	Name() string

	// Start reinitializes all per-run state; an error keeps the command idle
	Start(c *Command, args []any) error

	// Tick advances one frame; only called while the command accepts input
	// After calling c.Complete the game must return without touching its state
	Tick(c *Command)

	// End releases transient per-run state; called on completion and on abort
	End()
}

// State is the lifecycle position of a command
type State uint8

const (
	StateIdle State = iota
	StateActive
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateActive:
		return "Active"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Command is the lifecycle state machine shared by every action command
type Command struct {
	game    Game
	handler Handler
	clock   Clock
	input   input.Source
	rng     Rand
	logger  *slog.Logger

	autoComplete bool

	state     State
	run       uint64
	result    Result
	hasResult bool
	rankSent  bool
}

// Option configures a Command at construction
type Option func(*Command)

// WithHandler attaches the owner notified of results
func WithHandler(h Handler) Option {
	return func(c *Command) { c.handler = h }
}

// WithClock sets the time source
func WithClock(clock Clock) Option {
	return func(c *Command) { c.clock = clock }
}

// WithInput sets the button source
func WithInput(src input.Source) Option {
	return func(c *Command) { c.input = src }
}

// WithRand sets the random source
func WithRand(r Rand) Option {
	return func(c *Command) { c.rng = r }
}

// WithSeed uses a FastRand seeded with seed
func WithSeed(seed uint64) Option {
	return func(c *Command) { c.rng = vmath.NewFastRand(seed) }
}

// WithLogger sets the diagnostics logger
func WithLogger(l *slog.Logger) Option {
	return func(c *Command) { c.logger = l }
}

// WithAutoComplete forces the success path without real input
func WithAutoComplete(auto bool) Option {
	return func(c *Command) { c.autoComplete = auto }
}

// New creates an idle command running game
func New(game Game, opts ...Option) *Command {
	c := &Command{game: game}
	for _, opt := range opts {
		opt(c)
	}

	if c.handler == nil {
		c.handler = NopHandler{}
	}
	if c.clock == nil {
		c.clock = engine.NewManualClock()
	}
	if c.input == nil {
		c.input = input.None{}
	}
	if c.rng == nil {
		c.rng = vmath.NewFastRand(newSeed())
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.logger = c.logger.With("command", game.Name())
	return c
}

// newSeed reads a seed from crypto/rand, falling back to a fixed value
func newSeed() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 1
	}
	return binary.LittleEndian.Uint64(b[:])
}

// SetHandler attaches or replaces the handler; nil detaches
func (c *Command) SetHandler(h Handler) {
	if h == nil {
		h = NopHandler{}
	}
	c.handler = h
}

// Handler returns the attached handler
func (c *Command) Handler() Handler { return c.handler }

// Name returns the game name
func (c *Command) Name() string { return c.game.Name() }

// Game returns the strategy driving this command
func (c *Command) Game() Game { return c.game }

// State returns the lifecycle position
func (c *Command) State() State { return c.state }

// AcceptingInput is true strictly between StartInput and completion or EndInput
func (c *Command) AcceptingInput() bool { return c.state == StateActive }

// AutoComplete reports whether the success path is forced
func (c *Command) AutoComplete() bool { return c.autoComplete }

// Result returns the verdict of the last run; false if it never completed
func (c *Command) Result() (Result, bool) { return c.result, c.hasResult }

// RankSent reports whether this run already graded itself
func (c *Command) RankSent() bool { return c.rankSent }

// Runs returns how many runs were started
func (c *Command) Runs() uint64 { return c.run }

// StartInput begins a run; args are game-specific
// Bad arguments return a ConfigurationError and leave the command not accepting input
func (c *Command) StartInput(args ...any) error {
	if c.state == StateActive {
		return &ConfigurationError{Command: c.Name(), Reason: "start while active", Err: ErrNotIdle}
	}

	c.run++
	c.hasResult = false
	c.rankSent = false

	if err := c.game.Start(c, args); err != nil {
		c.game.End()
		c.state = StateIdle

		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			cfgErr = &ConfigurationError{Reason: err.Error(), Err: err}
		}
		if cfgErr.Command == "" {
			cfgErr.Command = c.Name()
		}
		c.logger.Error("start rejected", "handler", c.handler.Name(), "error", cfgErr)
		return cfgErr
	}

	c.state = StateActive
	c.logger.Debug("input started", "handler", c.handler.Name(), "run", c.run, "auto", c.autoComplete)
	return nil
}

// Update runs one tick of the game; no-op unless accepting input
func (c *Command) Update() {
	if c.state != StateActive {
		return
	}
	c.game.Tick(c)
}

// Complete delivers the single terminal result then ends input
func (c *Command) Complete(result Result) {
	if c.state != StateActive {
		c.logger.Warn("complete ignored", "state", c.state, "result", result)
		return
	}

	c.result = result
	c.hasResult = true
	c.logger.Debug("input completed", "handler", c.handler.Name(), "result", result)

	if result == Success {
		c.handler.OnCommandSuccess()
	} else {
		c.handler.OnCommandFailed()
	}

	c.EndInput()
}

// EndInput stops accepting input and releases per-run state
// Called directly it aborts the run without notifying success or failure
func (c *Command) EndInput() {
	if c.state != StateActive {
		return
	}
	c.state = StateCompleted
	c.game.End()
	if !c.hasResult {
		c.logger.Debug("input aborted", "handler", c.handler.Name())
	}
}

// SendRank reports a grade, at most once per run
func (c *Command) SendRank(rank Rank) {
	if c.state != StateActive {
		c.logger.Warn("rank dropped outside run", "rank", rank)
		return
	}
	if c.rankSent {
		c.logger.Warn("rank already sent", "rank", rank)
		return
	}
	c.rankSent = true
	c.handler.OnCommandRankResult(rank)
}

// SendResponse forwards a game-specific payload
func (c *Command) SendResponse(response any) {
	if c.state != StateActive {
		c.logger.Warn("response dropped outside run")
		return
	}
	c.handler.OnCommandResponse(response)
}

// --- Tick context for games ---

// Elapsed returns the current tick delta
func (c *Command) Elapsed() time.Duration { return c.clock.Elapsed() }

// Now returns the monotonic run clock
func (c *Command) Now() time.Duration { return c.clock.Active() }

// Held reports b as held this tick
func (c *Command) Held(b input.Button) bool { return c.input.Held(b) }

// Pressed reports b went down this tick
func (c *Command) Pressed(b input.Button) bool { return c.input.Pressed(b) }

// Input returns the button source
func (c *Command) Input() input.Source { return c.input }

// Rand returns the per-command random source
func (c *Command) Rand() Rand { return c.rng }

// Logger returns the command logger
func (c *Command) Logger() *slog.Logger { return c.logger }
