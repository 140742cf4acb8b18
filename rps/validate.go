package rps

import "fmt"

// Validation is the structured result of ValidateMove. When IsValid is
// false, Reason explains the rejection and Move is empty.
type Validation struct {
	IsValid bool
	Move    Move
	Reason  string
}

// ValidateMove checks a normalized move token against the rules: the token
// must be canonical, and a bomb is only legal while the player's one-time
// flag is unset. It reads state but never writes it. Normalization
// (case, whitespace, synonyms) happens upstream in the intent parser.
func ValidateMove(move string, player Player, state GameState) Validation {
	m, ok := MoveFromString(move)
	if !ok {
		return Validation{
			IsValid: false,
			Reason:  fmt.Sprintf("unrecognized move %q: must be one of rock, paper, scissors, bomb", move),
		}
	}

	if m == MoveBomb && state.BombUsed(player) {
		return Validation{
			IsValid: false,
			Reason:  "bomb already used: each player may use bomb once per game",
		}
	}

	return Validation{IsValid: true, Move: m}
}
