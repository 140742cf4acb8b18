package rps

import (
	"errors"
	"fmt"
)

// ErrGameOver is returned when Update is called on a finished game. The
// orchestrator must stop calling Update once GameOver is set; this error
// marks the contract violation instead of silently mutating further.
var ErrGameOver = errors.New("game is already over")

// RoundOutcome is the input to Update: either a resolved round (moves,
// winner, explanation) or a wasted one (Wasted set, everything else empty).
type RoundOutcome struct {
	UserMove    Move
	BotMove     Move
	Winner      Player
	Explanation string
	Wasted      bool
}

// Update applies one consumed round to the state and returns the next
// state. It is the sole mutation point in the engine: scores, bomb flags,
// the round counter, history, and the game-over verdict change here and
// nowhere else. The input state is untouched; history is copied, not
// shared.
//
// A wasted round advances the counter and records itself but changes no
// scores and spends no bombs. A resolved round credits the winner (draws
// credit nobody) and marks any bomb played as spent.
//
// Termination happens exactly when the counter would pass MaxRounds:
// GameOver is set and FinalWinner computed once from the final scores.
func Update(state GameState, outcome RoundOutcome) (GameState, error) {
	if state.GameOver {
		return state, fmt.Errorf("%w: update rejected in round %d", ErrGameOver, state.CurrentRound)
	}

	next := state
	next.RoundHistory = make([]RoundRecord, len(state.RoundHistory), len(state.RoundHistory)+1)
	copy(next.RoundHistory, state.RoundHistory)

	record := RoundRecord{Round: state.CurrentRound, Wasted: outcome.Wasted}

	if !outcome.Wasted {
		if !outcome.UserMove.IsCanonical() {
			return state, fmt.Errorf("%w: user move %q", ErrNonCanonicalMove, outcome.UserMove)
		}
		if !outcome.BotMove.IsCanonical() {
			return state, fmt.Errorf("%w: bot move %q", ErrNonCanonicalMove, outcome.BotMove)
		}

		record.UserMove = outcome.UserMove
		record.BotMove = outcome.BotMove
		record.Winner = outcome.Winner
		record.Explanation = outcome.Explanation

		switch outcome.Winner {
		case PlayerUser:
			next.UserScore++
		case PlayerBot:
			next.BotScore++
		case PlayerDraw:
			// no score change
		default:
			return state, fmt.Errorf("invalid round winner %q", outcome.Winner)
		}

		if outcome.UserMove == MoveBomb {
			next.UserBombUsed = true
		}
		if outcome.BotMove == MoveBomb {
			next.BotBombUsed = true
		}
	}

	next.RoundHistory = append(next.RoundHistory, record)
	next.CurrentRound++

	if next.CurrentRound > MaxRounds {
		next.GameOver = true
		next.FinalWinner = compareScores(next.UserScore, next.BotScore)
	}

	return next, nil
}

// compareScores runs exactly once, at the terminal transition.
func compareScores(userScore, botScore int) Player {
	switch {
	case userScore > botScore:
		return PlayerUser
	case botScore > userScore:
		return PlayerBot
	default:
		return PlayerDraw
	}
}
