package rps

import "fmt"

// Outcome is the result of a round from the player's point of view.
type Outcome int

const (
	Draw Outcome = iota
	Win
	Lose
)

// String returns "win", "lose" or "draw".
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "draw"
	}
}

// Resolve decides a round. Both choices must be valid; otherwise
// ErrInvalidChoice is returned and the outcome is meaningless.
func Resolve(player, computer Choice) (Outcome, error) {
	if !player.Valid() {
		return Draw, fmt.Errorf("%w: player %d", ErrInvalidChoice, int(player))
	}
	if !computer.Valid() {
		return Draw, fmt.Errorf("%w: computer %d", ErrInvalidChoice, int(computer))
	}

	switch {
	case player == computer:
		return Draw, nil
	case player.Beats(computer):
		return Win, nil
	default:
		return Lose, nil
	}
}

// Round is one resolved round.
type Round struct {
	Player   Choice
	Computer Choice
	Outcome  Outcome
}

// Rand is the randomness the resolver needs. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Resolver draws the computer's choice and resolves rounds.
type Resolver struct {
	rng Rand
}

// NewResolver creates a resolver using rng for the computer's choices.
func NewResolver(rng Rand) *Resolver {
	return &Resolver{rng: rng}
}

// Play resolves a round for the player's choice against a uniformly
// drawn computer choice. An invalid player choice consumes no randomness.
func (r *Resolver) Play(player Choice) (Round, error) {
	if !player.Valid() {
		return Round{}, fmt.Errorf("%w: player %d", ErrInvalidChoice, int(player))
	}

	computer := Choices[r.rng.Intn(len(Choices))]
	outcome, err := Resolve(player, computer)
	if err != nil {
		return Round{}, err
	}
	return Round{Player: player, Computer: computer, Outcome: outcome}, nil
}
