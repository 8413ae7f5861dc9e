// Package rps implements round resolution and match scorekeeping for
// rock-paper-scissors. It is pure logic: no timers, no drawing, no I/O.
package rps

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidChoice is returned for any value outside rock, paper, scissors.
var ErrInvalidChoice = errors.New("rps: invalid choice")

// Choice is one of the three weapons. The zero value is not a valid choice.
type Choice int

const (
	Rock Choice = iota + 1
	Paper
	Scissors
)

// Choices lists the valid weapons in display order.
var Choices = [...]Choice{Rock, Paper, Scissors}

var choiceNames = map[Choice]string{
	Rock:     "rock",
	Paper:    "paper",
	Scissors: "scissors",
}

// German names are what the image directory of the desktop game used.
var choiceAliases = map[Choice]string{
	Rock:     "stein",
	Paper:    "papier",
	Scissors: "schere",
}

// Valid reports whether c is one of the three weapons.
func (c Choice) Valid() bool {
	return c >= Rock && c <= Scissors
}

// String returns the lowercase English name, or "invalid".
func (c Choice) String() string {
	if name, ok := choiceNames[c]; ok {
		return name
	}
	return "invalid"
}

// Alias returns the alternative (German) name used for image files.
func (c Choice) Alias() string {
	return choiceAliases[c]
}

// Beats reports whether c defeats other under the standard dominance relation.
func (c Choice) Beats(other Choice) bool {
	switch c {
	case Rock:
		return other == Scissors
	case Scissors:
		return other == Paper
	case Paper:
		return other == Rock
	}
	return false
}

// ParseChoice converts a name (English or German, any case) into a Choice.
func ParseChoice(s string) (Choice, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Choices {
		if key == choiceNames[c] || key == choiceAliases[c] {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, s)
}
