// Package bot provides move selectors for the computer opponent.
package bot

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/rpsbomb/rps"
)

// Selector picks the bot's move for the current round. Implementations
// must honour the one-time bomb rule: never pick bomb once
// state.BotBombUsed is set.
type Selector interface {
	Pick(state rps.GameState) rps.Move
}

// available returns the moves the bot may legally play in this state.
func available(state rps.GameState) []rps.Move {
	if state.BotBombUsed {
		return rps.BaseMoves
	}
	return rps.AllMoves
}

// Random selects uniformly among the moves available to the bot.
type Random struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandom creates a Random selector. The RNG is injected so games can
// be made deterministic for tests and demos.
func NewRandom(rng *rand.Rand, logger *log.Logger) *Random {
	return &Random{rng: rng, logger: logger.WithPrefix("bot")}
}

func (r *Random) Pick(state rps.GameState) rps.Move {
	moves := available(state)
	move := moves[r.rng.IntN(len(moves))]
	r.logger.Debug("bot picked move", "move", move, "round", state.CurrentRound, "bombAvailable", !state.BotBombUsed)
	return move
}

// Cycle deterministically cycles through the available moves by round
// number. Useful for demos and regression fixtures where the bot's play
// must be predictable.
type Cycle struct {
	logger *log.Logger
}

// NewCycle creates a Cycle selector.
func NewCycle(logger *log.Logger) *Cycle {
	return &Cycle{logger: logger.WithPrefix("bot")}
}

func (c *Cycle) Pick(state rps.GameState) rps.Move {
	moves := available(state)
	move := moves[(state.CurrentRound-1)%len(moves)]
	c.logger.Debug("bot cycled move", "move", move, "round", state.CurrentRound)
	return move
}

// FromName builds a selector by its config name.
func FromName(name string, rng *rand.Rand, logger *log.Logger) (Selector, error) {
	switch name {
	case "random":
		return NewRandom(rng, logger), nil
	case "cycle":
		return NewCycle(logger), nil
	default:
		return nil, fmt.Errorf("unknown bot strategy %q", name)
	}
}
