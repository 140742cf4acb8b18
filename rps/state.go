package rps

import (
	"encoding/json"
	"fmt"
)

// MaxRounds is the fixed length of a game. Every game consumes exactly
// three rounds, wasted or resolved.
const MaxRounds = 3

// RoundRecord captures one consumed round. Wasted rounds carry no moves
// and no winner.
type RoundRecord struct {
	Round       int    `json:"round"`
	UserMove    Move   `json:"user_move,omitempty"`
	BotMove     Move   `json:"bot_move,omitempty"`
	Winner      Player `json:"winner,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Wasted      bool   `json:"wasted"`
}

// GameState is the complete state of one game. It is owned by the caller
// and passed by value into every engine operation; only Update returns a
// modified copy.
type GameState struct {
	CurrentRound int           `json:"current_round"`
	UserScore    int           `json:"user_score"`
	BotScore     int           `json:"bot_score"`
	UserBombUsed bool          `json:"user_bomb_used"`
	BotBombUsed  bool          `json:"bot_bomb_used"`
	RoundHistory []RoundRecord `json:"round_history"`
	GameOver     bool          `json:"game_over"`
	FinalWinner  Player        `json:"final_winner,omitempty"`
}

// NewGame returns a fresh state: round 1, zero scores, bombs unspent,
// empty history.
func NewGame() GameState {
	return GameState{
		CurrentRound: 1,
		RoundHistory: []RoundRecord{},
	}
}

// BombUsed reports whether the given player has spent their bomb.
func (s GameState) BombUsed(p Player) bool {
	switch p {
	case PlayerUser:
		return s.UserBombUsed
	case PlayerBot:
		return s.BotBombUsed
	}
	return false
}

// RoundsPlayed returns the number of rounds consumed so far, wasted
// rounds included.
func (s GameState) RoundsPlayed() int {
	return len(s.RoundHistory)
}

// ToJSON serializes the state for logging and auditing. The snake_case
// key names are part of the audit format and are pinned by tests.
func (s GameState) ToJSON() ([]byte, error) {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal game state: %w", err)
	}
	return b, nil
}

// FromJSON reconstructs a GameState from its serialized form.
func FromJSON(data []byte) (GameState, error) {
	var s GameState
	if err := json.Unmarshal(data, &s); err != nil {
		return GameState{}, fmt.Errorf("unmarshal game state: %w", err)
	}
	if s.RoundHistory == nil {
		s.RoundHistory = []RoundRecord{}
	}
	return s, nil
}
