package rps

import "fmt"

// ErrNonCanonicalMove is returned when ResolveRound or Update receives a
// move outside the canonical set. Moves must pass ValidateMove first, so
// hitting this is a caller bug, not user error.
var ErrNonCanonicalMove = fmt.Errorf("non-canonical move passed to rules engine")

// Resolution is the outcome of comparing two moves.
type Resolution struct {
	Winner      Player
	Explanation string
}

// verbs describes how a winning move defeats a losing one. Used only for
// the human-readable explanation, never for the beats relation itself.
var verbs = map[Move]string{
	MoveRock:     "crushes",
	MovePaper:    "wraps",
	MoveScissors: "cut",
	MoveBomb:     "destroys",
}

// ResolveRound determines the winner of a single round from two canonical
// moves. Rock beats scissors, scissors beats paper, paper beats rock, and
// bomb beats all three; identical moves draw, bomb against bomb included.
// Pure function: no state is read or written.
func ResolveRound(userMove, botMove Move) (Resolution, error) {
	if !userMove.IsCanonical() {
		return Resolution{}, fmt.Errorf("%w: user played %q", ErrNonCanonicalMove, userMove)
	}
	if !botMove.IsCanonical() {
		return Resolution{}, fmt.Errorf("%w: bot played %q", ErrNonCanonicalMove, botMove)
	}

	if userMove == botMove {
		expl := fmt.Sprintf("both chose %s — draw", userMove)
		return Resolution{Winner: PlayerDraw, Explanation: expl}, nil
	}

	if userMove.Beats(botMove) {
		return Resolution{
			Winner:      PlayerUser,
			Explanation: fmt.Sprintf("your %s %s the bot's %s", userMove, verbs[userMove], botMove),
		}, nil
	}

	return Resolution{
		Winner:      PlayerBot,
		Explanation: fmt.Sprintf("the bot's %s %s your %s", botMove, verbs[botMove], userMove),
	}, nil
}
