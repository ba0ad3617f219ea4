package command

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingArgument indicates StartInput received fewer values than required
	ErrMissingArgument = errors.New("missing start argument")

	// ErrInvalidArgument indicates a start or config value of the wrong type or range
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotIdle indicates StartInput was called on a run already accepting input
	ErrNotIdle = errors.New("command already accepting input")
)

// ConfigurationError reports a command that cannot run as configured
type ConfigurationError struct {
	Command string
	Reason  string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("configuration: %s", e.Reason)
	}
	return fmt.Sprintf("%s: configuration: %s", e.Command, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Misconfigured builds a ConfigurationError wrapping ErrInvalidArgument
func Misconfigured(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...), Err: ErrInvalidArgument}
}
