package rps

// Move is a canonical move token.
type Move string

const (
	MoveRock     Move = "rock"
	MovePaper    Move = "paper"
	MoveScissors Move = "scissors"
	MoveBomb     Move = "bomb"
)

// BaseMoves are the moves that are always available.
var BaseMoves = []Move{MoveRock, MovePaper, MoveScissors}

// AllMoves includes the one-time bomb.
var AllMoves = []Move{MoveRock, MovePaper, MoveScissors, MoveBomb}

// IsCanonical reports whether m is one of the four recognised moves.
func (m Move) IsCanonical() bool {
	switch m {
	case MoveRock, MovePaper, MoveScissors, MoveBomb:
		return true
	}
	return false
}

// String returns the move token.
func (m Move) String() string {
	return string(m)
}

// MoveFromString converts a normalized token to a Move. The boolean is
// false for anything outside the canonical set.
func MoveFromString(s string) (Move, bool) {
	m := Move(s)
	return m, m.IsCanonical()
}

// Player identifies a side of the game, or "draw" in winner positions.
type Player string

const (
	PlayerUser Player = "user"
	PlayerBot  Player = "bot"
	// PlayerDraw is only valid as a round or game winner, never as an actor.
	PlayerDraw Player = "draw"
)

// String returns the player token.
func (p Player) String() string {
	return string(p)
}

// beats maps each move to the set of moves it defeats. Bomb defeats every
// non-bomb move; nothing defeats bomb except nothing (bomb vs bomb draws).
var beats = map[Move]map[Move]bool{
	MoveRock:     {MoveScissors: true},
	MovePaper:    {MoveRock: true},
	MoveScissors: {MovePaper: true},
	MoveBomb:     {MoveRock: true, MovePaper: true, MoveScissors: true},
}

// Beats reports whether m defeats other.
func (m Move) Beats(other Move) bool {
	return beats[m][other]
}
