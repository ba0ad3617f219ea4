package input

import (
	"fmt"
	"strings"
)

// Button is a logical input read by action commands
type Button uint8

const (
	ButtonNone Button = iota
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA // Confirm
	ButtonB
	ButtonX
	ButtonZ
	ButtonC

	ButtonCount
)

var buttonNames = [ButtonCount]string{
	ButtonNone:  "none",
	ButtonUp:    "up",
	ButtonDown:  "down",
	ButtonLeft:  "left",
	ButtonRight: "right",
	ButtonA:     "a",
	ButtonB:     "b",
	ButtonX:     "x",
	ButtonZ:     "z",
	ButtonC:     "c",
}

// ButtonConfirm is the button used to select and accept
const ButtonConfirm = ButtonA

// SequenceButtons is the default alphabet for sequence commands
var SequenceButtons = []Button{ButtonX, ButtonZ, ButtonC}

// Directions lists the directional buttons in a fixed order
var Directions = []Button{ButtonUp, ButtonDown, ButtonLeft, ButtonRight}

func (b Button) String() string {
	if b < ButtonCount {
		return buttonNames[b]
	}
	return fmt.Sprintf("button(%d)", uint8(b))
}

// Valid reports whether b is a real button
func (b Button) Valid() bool {
	return b > ButtonNone && b < ButtonCount
}

// ParseButton resolves a case-insensitive button name
func ParseButton(name string) (Button, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b := ButtonUp; b < ButtonCount; b++ {
		if buttonNames[b] == name {
			return b, nil
		}
	}
	return ButtonNone, fmt.Errorf("unknown button %q", name)
}

// UnmarshalText lets buttons decode from config strings
func (b *Button) UnmarshalText(text []byte) error {
	parsed, err := ParseButton(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalText encodes the button name
func (b Button) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}
